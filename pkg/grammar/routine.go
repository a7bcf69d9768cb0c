// SPDX-License-Identifier: MPL-2.0

package grammar

import (
	"context"

	"github.com/invowk/wca/pkg/value"
)

type (
	// Routine is the callable bound to a command. Invoke is used when no user
	// context is attached to the aggregator; InvokeWithContext when one is.
	// The user context is opaque to the aggregator and passed through untouched.
	Routine interface {
		Invoke(ctx context.Context, args value.Args, props value.Props) error
		InvokeWithContext(ctx context.Context, args value.Args, props value.Props, uctx any) error
	}

	// RoutineFunc adapts a function that does not need the user context.
	RoutineFunc func(ctx context.Context, args value.Args, props value.Props) error

	// ContextRoutineFunc adapts a function that receives the user context.
	// Invoked without one, it receives nil.
	ContextRoutineFunc func(ctx context.Context, args value.Args, props value.Props, uctx any) error
)

// Invoke calls f.
func (f RoutineFunc) Invoke(ctx context.Context, args value.Args, props value.Props) error {
	return f(ctx, args, props)
}

// InvokeWithContext calls f, ignoring the user context.
func (f RoutineFunc) InvokeWithContext(ctx context.Context, args value.Args, props value.Props, _ any) error {
	return f(ctx, args, props)
}

// Invoke calls f with a nil user context.
func (f ContextRoutineFunc) Invoke(ctx context.Context, args value.Args, props value.Props) error {
	return f(ctx, args, props, nil)
}

// InvokeWithContext calls f.
func (f ContextRoutineFunc) InvokeWithContext(ctx context.Context, args value.Args, props value.Props, uctx any) error {
	return f(ctx, args, props, uctx)
}

// Noop is a routine that does nothing and always succeeds.
var Noop Routine = RoutineFunc(func(context.Context, value.Args, value.Props) error { return nil })
