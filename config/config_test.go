package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvDB, EnvCurrency, EnvLogFile, EnvImportFile} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	s, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, Settings{
		DB:         DefaultDB,
		Currency:   DefaultCurrency,
		LogFile:    DefaultLogFile,
		ImportFile: DefaultImportFile,
	}, s)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("CARDBOX_DB=/data/cards.db\nCARDBOX_CURRENCY=eur\n"), 0644))

	s, err := LoadFrom(envFile)
	require.NoError(t, err)

	assert.Equal(t, "/data/cards.db", s.DB)
	assert.Equal(t, "EUR", s.Currency)
	assert.Equal(t, "/data/cardbox.log", s.LogPath())
}

func TestEnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("CARDBOX_CURRENCY=EUR\n"), 0644))
	t.Setenv(EnvCurrency, "GBP")

	s, err := LoadFrom(envFile)
	require.NoError(t, err)
	assert.Equal(t, "GBP", s.Currency)
}

func TestLogPath(t *testing.T) {
	assert.Equal(t, "-", Settings{DB: "x/inventory.db", LogFile: "-"}.LogPath())
	assert.Equal(t, "/var/log/c.log", Settings{DB: "x/inventory.db", LogFile: "/var/log/c.log"}.LogPath())
	assert.Equal(t, filepath.Join("x", "c.log"), Settings{DB: "x/inventory.db", LogFile: "c.log"}.LogPath())
}
