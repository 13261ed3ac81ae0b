// internal/logging/logging.go
// Package logging wires the stdlib logger to stdout plus an optional log
// file, so CI runs can keep a record of what each comparison produced.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
)

// Init points the stdlib logger at stdout, and additionally at logPath when
// one is configured. Calling Init again closes the previous file first.
func Init(logPath string) error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}

	var writers []io.Writer
	writers = append(writers, os.Stdout)

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		logFile = file
		writers = append(writers, logFile)
	}

	log.SetOutput(io.MultiWriter(writers...))
	return nil
}

// Close releases the log file, if any, and restores the default stderr output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

// LogEvent formats and logs a single message.
func LogEvent(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Println(msg)
}

// LogRun records one comparison run: which reports were read and how many
// keys changed.
func LogRun(mainPath, currentPath string, changed int) {
	log.Println(buildRunMessage(mainPath, currentPath, changed))
}

func buildRunMessage(mainPath, currentPath string, changed int) string {
	return fmt.Sprintf("[RUN] main=%s current=%s changed=%d", mainPath, currentPath, changed)
}
