package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger define a interface para logging estruturado.
// A aplicação (Handler, Service, Repositório) deve depender apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// SlogLogger é a implementação concreta da interface Logger.
// Escreve uma linha JSON por entrada usando o log/slog da biblioteca padrão.
type SlogLogger struct {
	base *slog.Logger
	exit func(int)
}

// NewLogger cria um Logger JSON em stdout com o nível informado ("debug", "info", "warn", "error").
// Níveis desconhecidos caem para "info".
func NewLogger(level string) Logger {
	return NewLoggerWithWriter(level, os.Stdout)
}

// NewLoggerWithWriter permite redirecionar a saída (útil em testes).
func NewLoggerWithWriter(level string, w io.Writer) Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &SlogLogger{base: slog.New(handler), exit: os.Exit}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "fatal":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *SlogLogger) log(level slog.Level, msg string, fields map[string]interface{}, err error) {
	if !l.base.Enabled(context.Background(), level) {
		return
	}
	attrs := make([]slog.Attr, 0, len(fields)+1)
	if len(fields) > 0 {
		group := make([]any, 0, len(fields))
		for k, v := range fields {
			group = append(group, slog.Any(k, v))
		}
		attrs = append(attrs, slog.Group("fields", group...))
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.base.LogAttrs(context.Background(), level, msg, attrs...)
}

func (l *SlogLogger) Debug(msg string, fields map[string]interface{}) {
	l.log(slog.LevelDebug, msg, fields, nil)
}

func (l *SlogLogger) Info(msg string, fields map[string]interface{}) {
	l.log(slog.LevelInfo, msg, fields, nil)
}

func (l *SlogLogger) Warn(msg string, fields map[string]interface{}) {
	l.log(slog.LevelWarn, msg, fields, nil)
}

func (l *SlogLogger) Error(msg string, err error) {
	l.log(slog.LevelError, msg, nil, err)
}

// Fatal registra o erro e encerra o processo.
func (l *SlogLogger) Fatal(msg string, err error) {
	l.log(slog.LevelError+4, msg, nil, err)
	l.exit(1)
}
