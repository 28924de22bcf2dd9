package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

var (
	// ErrInvalidLogLevel is returned by SlogLevel for an unknown level name.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrNotAllowed is returned by OneOf for a value outside the allowed set.
	ErrNotAllowed = errors.New("value not allowed")
)

func parseBool(value string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(value))
}

func parseInt(value string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(value))
}

func parseSlogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}

// parseList splits on commas, trimming blanks and dropping empty entries.
func parseList(value string) ([]string, error) {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out, nil
}
