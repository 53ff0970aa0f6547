package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cardbox.log")
	require.NoError(t, Setup(Config{File: path}))
	t.Cleanup(func() { Close() })

	assert.True(t, IsInitialized())
	assert.Equal(t, path, FilePath())

	LogInfo("sold %d x %s", 2, "Mantle")
	LogWarn("row %d skipped", 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "[INFO]")
	assert.Contains(t, content, "logger_test.go")
	assert.Contains(t, content, "sold 2 x Mantle")
	assert.Contains(t, content, "[WARN]")
	assert.Contains(t, content, "row 3 skipped")
}

func TestSetupTwice(t *testing.T) {
	require.NoError(t, Setup(Config{File: "-"}))
	t.Cleanup(func() { Close() })

	assert.Error(t, Setup(Config{File: "-"}))
	assert.Equal(t, "", FilePath())
}

func TestCloseAllowsSetupAgain(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Setup(Config{File: filepath.Join(dir, "a.log")}))
	require.NoError(t, Close())
	assert.False(t, IsInitialized())

	require.NoError(t, Setup(Config{File: filepath.Join(dir, "b.log")}))
	require.NoError(t, Close())
}
