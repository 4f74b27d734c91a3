package internal

import (
	"log"
	"os"
)

// Logger receives the per-connection narration the serving loop emits.
// Both levels format in the manner of [log.Printf].
type Logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// DefaultLogger writes to standard error with the standard log flags.
var DefaultLogger Logger = stdLogger{log.New(os.Stderr, "", log.LstdFlags)}

type stdLogger struct{ l *log.Logger }

func (s stdLogger) Infof(format string, v ...interface{})  { s.l.Printf(format, v...) }
func (s stdLogger) Errorf(format string, v ...interface{}) { s.l.Printf(format, v...) }
