package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	logDir      = "logs"
	logFileName = "fruitbox.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging points the global logger at logs/fruitbox.log when debug is set
// The terminal owns stdout, so without debug all log output is dropped
// Returns the open log file, or nil when logging is off
func setupLogging(debug bool) *os.File {
	if !debug {
		log.Logger = zerolog.Nop()
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		log.Logger = zerolog.Nop()
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)

	// Keep one previous file once the current one passes the size limit
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(logPath, logPath+".1"); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to rotate log file: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		log.Logger = zerolog.Nop()
		return nil
	}

	log.Logger = zerolog.New(f).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return f
}
