// Package options implements generic functional options shared by the
// configurable entry points of the module (frame sealing, container writers
// and readers).
package options

// Option represents a functional option for configuring any type T.
type Option[T any] interface {
	apply(T) error
}

// funcOption wraps a plain function as an Option.
type funcOption[T any] struct {
	applyFunc func(T) error
}

func (f *funcOption[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may reject its input, for
// example a codec kind that is not supported by this build.
func New[T any](fn func(T) error) Option[T] {
	return &funcOption[T]{applyFunc: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) Option[T] {
	return &funcOption[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies options to a target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
