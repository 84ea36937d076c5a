// Package logger файловый логгер с уровнями логирования
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger пишет в файл и stdout одновременно
type Logger struct {
	file  *os.File
	std   *log.Logger
	level Level
}

// New создает логгер, пишущий в указанный файл и stdout
// level: debug | info | warn | error (по умолчанию info)
func New(filePath, level string) (*Logger, error) {
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: failed to open log file %s: %w", filePath, err)
	}

	return &Logger{
		file:  file,
		std:   log.New(io.MultiWriter(os.Stdout, file), "", log.LstdFlags),
		level: parseLevel(level),
	}, nil
}

func parseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Debug пишет отладочное сообщение
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.level <= LevelDebug {
		l.std.Printf("[DEBUG] "+format, v...)
	}
}

// Info пишет информационное сообщение
func (l *Logger) Info(format string, v ...interface{}) {
	if l.level <= LevelInfo {
		l.std.Printf("[INFO] "+format, v...)
	}
}

// Warn пишет предупреждение
func (l *Logger) Warn(format string, v ...interface{}) {
	if l.level <= LevelWarn {
		l.std.Printf("[WARN] "+format, v...)
	}
}

// Error пишет сообщение об ошибке
func (l *Logger) Error(format string, v ...interface{}) {
	if l.level <= LevelError {
		l.std.Printf("[ERROR] "+format, v...)
	}
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.std.Printf("[FATAL] "+format, v...)
	l.Close()
	os.Exit(1)
}

// Close закрывает файл логов
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
