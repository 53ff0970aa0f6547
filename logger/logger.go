// Package logger writes leveled log lines to a file, keeping the terminal for
// command output.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Config of the logger.
type Config struct {
	// File is the log file, created if needed and appended to. "-" logs to stderr.
	File string
}

var (
	initialized int32 // 0 = not initialized, 1 = initialized
	logger      *log.Logger
	logFile     *os.File
	logFilePath string
	mu          sync.Mutex // protect against concurrent initialization
)

// Setup initializes the logger. Messages logged before Setup go to the standard log package.
func Setup(config Config) error {
	mu.Lock()
	defer mu.Unlock()

	if atomic.LoadInt32(&initialized) == 1 {
		return fmt.Errorf("logger already initialized")
	}

	var out io.Writer
	switch config.File {
	case "-", "":
		out = os.Stderr
		logFilePath = ""
	default:
		if dir := filepath.Dir(config.File); dir != "" {
			if err := os.MkdirAll(dir, 0775); err != nil {
				return fmt.Errorf("failed to create logs directory %q: %w", dir, err)
			}
		}
		f, err := os.OpenFile(config.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0664)
		if err != nil {
			return fmt.Errorf("failed to open log file %q: %w", config.File, err)
		}
		logFile = f
		logFilePath = config.File
		out = f
	}

	logger = log.New(out, "", 0)
	atomic.StoreInt32(&initialized, 1)
	return nil
}

// Close flushes and closes the log file. The logger can be set up again afterwards.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	atomic.StoreInt32(&initialized, 0)
	logger = nil
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// FilePath returns the path of the log file, "" when logging to stderr.
func FilePath() string {
	return logFilePath
}

func IsInitialized() bool {
	return atomic.LoadInt32(&initialized) == 1
}

func LogMessage(level string, message string, v ...interface{}) {
	if !IsInitialized() {
		log.Printf("[%s] %s", level, fmt.Sprintf(message, v...))
		return
	}

	_, file, line, _ := runtime.Caller(2)
	fileName := filepath.Base(file)
	formattedMsg := fmt.Sprintf(message, v...)
	timestamp := time.Now().Format("2006-01-02 15:04:05 MST")

	full := fmt.Sprintf("[%s] %s %s:%d - %s", level, timestamp, fileName, line, formattedMsg)
	logger.Println(full)
}

func LogInfo(message string, v ...interface{})  { LogMessage("INFO", message, v...) }
func LogWarn(message string, v ...interface{})  { LogMessage("WARN", message, v...) }
func LogError(message string, v ...interface{}) { LogMessage("ERROR", message, v...) }
