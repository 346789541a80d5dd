package utils

// Option is a value that is either present or absent
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns a present Option holding v
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent Option
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome returns true if the value is present
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone returns true if the value is absent
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// OrElse returns the value if present, otherwise the given default
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}

	return def
}
