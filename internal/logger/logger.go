// Package logger is a thin wrapper over the standard log package. Output is
// discarded by default so stray logging cannot corrupt the TUI; set DEBUG
// (or call SetOutput with a file) to capture it.
package logger

import (
	"io"
	"log"
	"os"
)

var DebugMode bool

func Init() {
	if os.Getenv("DEBUG") == "true" {
		DebugMode = true
	} else {
		log.SetOutput(io.Discard)
	}
}

// SetOutput redirects the standard logger, typically to a debug file.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func Debug(format string, v ...interface{}) {
	if DebugMode {
		log.Printf("[DEBUG] "+format, v...)
	}
}

func Info(format string, v ...interface{}) {
	log.Printf("[INFO] "+format, v...)
}

func Error(format string, v ...interface{}) {
	log.Printf("[ERROR] "+format, v...)
}
