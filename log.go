package cellbloom

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[cellbloom] ", log.LstdFlags)

// SetLogger replaces the package logger. Passing nil restores the default
// stderr logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(os.Stderr, "[cellbloom] ", log.LstdFlags)
	}
	logger = l
}
