// internal/logging/logging.go
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel переводит строку из настроек в уровень zerolog. Неизвестные значения дают info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// New создаёт человекочитаемый логгер для консоли.
func New(level string, w io.Writer) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// For возвращает дочерний логгер с полем system.
func For(parent zerolog.Logger, system string) zerolog.Logger {
	return parent.With().Str("system", system).Logger()
}
