// Package logger provides leveled logging to the console and an optional file.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Level represents the logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes messages at or above minLevel to the console, and every
// message to the log file when one is configured.
type Logger struct {
	consoleLogger *log.Logger
	fileLogger    *log.Logger
	logFile       *os.File
	minLevel      Level
}

var globalLogger *Logger

// Init initializes the global logger.
// console receives diagnostics (typically os.Stderr so stdout carries only rows).
// logFilePath is optional; when set, all levels are appended there with timestamps.
// verbose lowers the console threshold to DEBUG.
func Init(console io.Writer, logFilePath string, verbose bool) error {
	l := &Logger{
		consoleLogger: log.New(console, "", 0),
		minLevel:      LevelInfo,
	}
	if verbose {
		l.minLevel = LevelDebug
	}

	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		l.logFile = f
		l.fileLogger = log.New(f, "", log.LstdFlags)
	}

	Close()
	globalLogger = l
	return nil
}

// Close closes the log file
func Close() {
	if globalLogger != nil && globalLogger.logFile != nil {
		globalLogger.logFile.Close()
		globalLogger.logFile = nil
		globalLogger.fileLogger = nil
	}
}

// Debug logs a debug message (console only when verbose)
func Debug(format string, args ...interface{}) {
	if globalLogger == nil {
		return
	}
	globalLogger.log(LevelDebug, format, args...)
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
		return
	}
	globalLogger.log(LevelInfo, format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Fprintf(os.Stderr, "WARN: "+format+"\n", args...)
		return
	}
	globalLogger.log(LevelWarn, format, args...)
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
		return
	}
	globalLogger.log(LevelError, format, args...)
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	if l.fileLogger != nil {
		l.fileLogger.Printf("[%s] %s", level, message)
	}

	if level < l.minLevel {
		return
	}

	switch level {
	case LevelInfo:
		l.consoleLogger.Printf("%s", message)
	default:
		l.consoleLogger.Printf("[%s] %s", level, message)
	}
}
