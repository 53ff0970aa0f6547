// Package config loads cardbox settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvDB         = "CARDBOX_DB"
	EnvCurrency   = "CARDBOX_CURRENCY"
	EnvLogFile    = "CARDBOX_LOG_FILE"
	EnvImportFile = "CARDBOX_IMPORT_FILE"
)

// Defaults match the file names used by the original console application.
const (
	DefaultDB         = "inventory.db"
	DefaultCurrency   = "USD"
	DefaultLogFile    = "cardbox.log"
	DefaultImportFile = "import.csv"
)

// Settings is the resolved configuration.
type Settings struct {
	DB         string // Path to the SQLite database.
	Currency   string // Currency code used to display amounts.
	LogFile    string // Log file, "-" for stderr. Relative paths are next to DB.
	ImportFile string // Default CSV file for the import command.
}

// Load reads the .env file in the working directory, if any, and resolves the
// settings from the environment. Variables already set in the environment win
// over the .env file.
func Load() (Settings, error) {
	return LoadFrom(".env")
}

// LoadFrom is like Load with an explicit .env path.
func LoadFrom(envFile string) (Settings, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("cannot read %s: %w", envFile, err)
	}
	s := Settings{
		DB:         getenv(EnvDB, DefaultDB),
		Currency:   strings.ToUpper(getenv(EnvCurrency, DefaultCurrency)),
		LogFile:    getenv(EnvLogFile, DefaultLogFile),
		ImportFile: getenv(EnvImportFile, DefaultImportFile),
	}
	return s, nil
}

// LogPath resolves the log file against the database directory.
func (s Settings) LogPath() string {
	if s.LogFile == "-" || filepath.IsAbs(s.LogFile) {
		return s.LogFile
	}
	return filepath.Join(filepath.Dir(s.DB), s.LogFile)
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
