package envutil

import (
	"context"
	"log/slog"
	"os"
)

// get looks the key up in ctx overrides first and then the process environment.
func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return Reader[string]{key: key, present: true, value: val}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

// String reads key as-is. An empty value counts as present.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool accepts the forms strconv.ParseBool does, ignoring surrounding spaces.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), parseBool), opts)
}

// Int reads a base-10 integer, ignoring surrounding spaces.
func Int(ctx context.Context, key string, opts ...Option[int]) Reader[int] {
	return apply(Map(get(ctx, key), parseInt), opts)
}

// SlogLevel accepts debug, info, warn (or warning) and error, case-insensitively.
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(ctx, key), parseSlogLevel), opts)
}

// StringList reads a comma separated list. Blank entries are dropped.
func StringList(ctx context.Context, key string, opts ...Option[[]string]) Reader[[]string] {
	return apply(Map(get(ctx, key), parseList), opts)
}
