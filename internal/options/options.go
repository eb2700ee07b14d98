// Package options implements generic functional options for configuration structs.
package options

import (
	"fmt"

	"github.com/arloliu/astdict/errs"
)

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Validator is implemented by configuration targets that check their final state
// once every option has been applied.
type Validator interface {
	Validate() error
}

// Func is a functional option backed by a function.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order, then calls Validate if target
// implements Validator.
//
// It stops at the first failure. Every returned error wraps errs.ErrInvalidOption
// so callers can tell configuration mistakes from decode failures.
func Apply[T any](target T, opts ...Option[T]) error {
	for i, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return fmt.Errorf("%w: option %d: %w", errs.ErrInvalidOption, i, err)
		}
	}

	if v, ok := any(target).(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("%w: %w", errs.ErrInvalidOption, err)
		}
	}

	return nil
}
