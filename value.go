package mule

import "context"

// DoValue runs fn until the stop condition is met and returns the successful
// attempt's value. On any terminal error the zero value of T is returned
// alongside the error.
func DoValue[T any](fn func() (T, error), opts ...Option) (T, error) {
	result, err := execute(context.Background(), func(context.Context) (any, error) {
		return fn()
	}, newConfig(opts))
	return valueOf[T](result), err
}

// DoValueContext runs fn until the stop condition is met, observing ctx
// cancellation at every suspension point, and returns the successful
// attempt's value.
func DoValueContext[T any](ctx context.Context, fn func(ctx context.Context) (T, error), opts ...Option) (T, error) {
	result, err := execute(ctx, func(ctx context.Context) (any, error) {
		return fn(ctx)
	}, newConfig(opts))
	return valueOf[T](result), err
}

// WrapValue binds fn to the given retry options and returns a function that
// runs the full retry loop on each call, returning the successful attempt's
// value.
func WrapValue[T any](fn func() (T, error), opts ...Option) func() (T, error) {
	return func() (T, error) {
		return DoValue(fn, opts...)
	}
}

func valueOf[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}
