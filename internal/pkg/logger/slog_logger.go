package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
)

// slogLogger adapts a *slog.Logger to the Logger interface.
// Console and file loggers differ only in handler and sink.
type slogLogger struct {
	logger *slog.Logger
	exit   func(code int)
}

// ConsoleLogger logs human readable text to stdout.
type ConsoleLogger struct {
	slogLogger
}

// FileLogger logs JSON records to a size-rotated file.
type FileLogger struct {
	slogLogger
}

// NewConsoleLogger creates a new console logger with the specified log level.
func NewConsoleLogger(level string) Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level)})
	return &ConsoleLogger{slogLogger{logger: slog.New(handler), exit: os.Exit}}
}

// NewFileLogger creates a new file logger with rotation settings.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(level)})
	return &FileLogger{slogLogger{logger: slog.New(handler), exit: os.Exit}}
}

func (l *slogLogger) log(level slog.Level, args ...interface{}) string {
	msg, attrs := splitArgs(args...)
	l.logger.Log(context.Background(), level, msg, attrs...)
	return msg
}

// Debug logs a debug message.
func (l *slogLogger) Debug(args ...interface{}) { l.log(slog.LevelDebug, args...) }

// Info logs an informational message.
func (l *slogLogger) Info(args ...interface{}) { l.log(slog.LevelInfo, args...) }

// Warn logs a warning message.
func (l *slogLogger) Warn(args ...interface{}) { l.log(slog.LevelWarn, args...) }

// Error logs an error message.
func (l *slogLogger) Error(args ...interface{}) { l.log(slog.LevelError, args...) }

// Fatal logs a critical message and exits.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.log(LevelCritical, args...)
	l.exit(1)
}

// Panic logs a critical message and panics.
func (l *slogLogger) Panic(args ...interface{}) {
	panic(l.log(LevelCritical, args...))
}
