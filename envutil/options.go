package envutil

import "fmt"

// Option adjusts a Reader after the raw value has been parsed.
type Option[T any] func(Reader[T]) Reader[T]

// Default supplies a value for when the variable is unset.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// Validate runs f on the value; a non-nil result becomes the Reader's error.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.Map(func(val T) (T, error) {
			return val, f(val)
		})
	}
}

// OneOf rejects values outside allowed.
func OneOf[T comparable](allowed ...T) Option[T] {
	return Validate(func(val T) error {
		for _, a := range allowed {
			if a == val {
				return nil
			}
		}

		return fmt.Errorf("%w: %v not in %v", ErrNotAllowed, val, allowed)
	})
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}
