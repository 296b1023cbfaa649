package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Config — настройки логгера. Переменные: CALCULATOR_LOG_LEVEL, CALCULATOR_LOG_FILE, CALCULATOR_LOG_CONSOLE.
type Config struct {
	Level   string `envconfig:"LEVEL" default:"info"`
	File    string `envconfig:"FILE" default:"calculator.log"`
	Console bool   `envconfig:"CONSOLE" default:"false"`
}

var setupOnce sync.Once

// logWriter открывает файл логов и возвращает writer в файл (+ stderr, если включена консоль).
// При ошибке открытия файла возвращает stderr.
func logWriter(cfg Config) io.Writer {
	if cfg.File == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	if cfg.Console {
		return io.MultiWriter(f, os.Stderr)
	}
	return f
}

// ParseLevel переводит имя уровня (debug, info, warn, error) в slog.Level. Неизвестное имя — Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewWithWriter возвращает текстовый логгер с заданным уровнем в произвольный writer.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// New возвращает логгер по конфигу: текстовый вывод в файл (по умолчанию calculator.log).
func New(cfg Config) *slog.Logger {
	return NewWithWriter(logWriter(cfg), cfg.Level)
}

// Setup создаёт логгер и делает его slog.Default. Повторные вызовы ничего не меняют
// и возвращают текущий slog.Default.
func Setup(cfg Config) *slog.Logger {
	setupOnce.Do(func() {
		slog.SetDefault(New(cfg))
	})
	return slog.Default()
}
