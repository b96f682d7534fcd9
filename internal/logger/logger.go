package logger

import (
	"fmt"
	"log"
)

type Logger struct {
	l       *log.Logger
	verbose bool
}

func New(l *log.Logger) *Logger {
	return &Logger{l: l}
}

// NewVerbose returns a logger that also emits debug lines.
func NewVerbose(l *log.Logger) *Logger {
	return &Logger{l: l, verbose: true}
}

func (l *Logger) LogErrorf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	l.l.Printf("[Error]: %s\n", msg)
}

func (l *Logger) LogInfo(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	l.l.Printf("[Info]: %s\n", msg)
}

func (l *Logger) LogDebug(format string, v ...any) {
	if !l.verbose {
		return
	}

	msg := fmt.Sprintf(format, v...)
	l.l.Printf("[Debug]: %s\n", msg)
}
