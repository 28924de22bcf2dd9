package logger

import (
	"context"
	"log/slog"
	"time"
)

// AnnotateError attaches slog key-value pairs to err. When the result is
// logged through a handler installed by ConfigureLoggingWithOptions, the
// pairs appear as top-level attributes next to the error. Annotations survive
// wrapping with %w. Returns nil if err is nil.
//
//	return logger.AnnotateError(err, "section", "bst")
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	var errAttrs []slog.Attr

	r.Attrs(func(attr slog.Attr) bool {
		errAttrs = append(errAttrs, attr)

		return true
	})

	return &slogError{
		err:   err,
		attrs: errAttrs,
	}
}

type slogError struct {
	err   error
	attrs []slog.Attr
}

func (s *slogError) Error() string {
	return s.err.Error()
}

func (s *slogError) Unwrap() error {
	return s.err
}

var _ error = (*slogError)(nil)

// slogErrorLogger expands annotated errors into attributes before
// delegating to inner.
type slogErrorLogger struct {
	inner slog.Handler
}

var _ slog.Handler = (*slogErrorLogger)(nil)

func (s *slogErrorLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

func (s *slogErrorLogger) Handle(ctx context.Context, record slog.Record) error {
	var (
		baseAttrs []slog.Attr
		errAttrs  []slog.Attr
	)

	record.Attrs(func(attr slog.Attr) bool {
		v, ok := attr.Value.Any().(error)
		if !ok {
			baseAttrs = append(baseAttrs, attr)

			return true
		}

		// Only a bare annotation is replaced; anything wrapping it keeps its full message.
		if se, ok := v.(*slogError); ok {
			baseAttrs = append(baseAttrs, slog.Any(attr.Key, se.err))
		} else {
			baseAttrs = append(baseAttrs, attr)
		}

		errAttrs = append(errAttrs, annotations(v)...)

		return true
	})

	if len(errAttrs) == 0 {
		return s.inner.Handle(ctx, record)
	}

	r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	r.AddAttrs(baseAttrs...)
	r.AddAttrs(errAttrs...)

	return s.inner.Handle(ctx, r)
}

// annotations collects the attributes of every annotated error in the tree
// rooted at err, depth first.
func annotations(err error) []slog.Attr {
	var out []slog.Attr

	switch e := err.(type) { //nolint:errorlint // walking the tree by hand
	case *slogError:
		out = append(out, e.attrs...)
		out = append(out, annotations(e.err)...)
	case interface{ Unwrap() []error }:
		for _, inner := range e.Unwrap() {
			out = append(out, annotations(inner)...)
		}
	case interface{ Unwrap() error }:
		out = append(out, annotations(e.Unwrap())...)
	}

	return out
}

func (s *slogErrorLogger) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithAttrs(attrs)}
}

func (s *slogErrorLogger) WithGroup(name string) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithGroup(name)}
}
