package mule

import (
	"errors"
	"fmt"
	"time"
)

// StopCondition decides whether the retry loop should end.
//
// Met receives the most recently finalized attempt, or nil before the first
// attempt has run. Implementations must be pure functions of their input and
// their construction parameters, so a single condition is safe to share
// across concurrently running calls.
type StopCondition interface {
	Met(last *Attempt) bool
}

// StopFunc is an adapter that allows a function to be used as a StopCondition.
type StopFunc func(last *Attempt) bool

// Met implements StopCondition.
func (f StopFunc) Met(last *Attempt) bool {
	return f(last)
}

// Condition determines whether an error belongs to a class, typically the
// class of retryable errors.
type Condition func(error) bool

// Not inverts a condition.
func Not(cond Condition) Condition {
	return func(err error) bool {
		return !cond(err)
	}
}

// ErrorIs returns a Condition satisfied when the error matches any of the
// targets per errors.Is.
func ErrorIs(targets ...error) Condition {
	return func(err error) bool {
		for _, target := range targets {
			if errors.Is(err, target) {
				return true
			}
		}
		return false
	}
}

// AttemptsExhausted returns a condition that stops once n attempts have
// finalized. It panics if n is not positive.
func AttemptsExhausted(n int) StopCondition {
	if n <= 0 {
		panic(fmt.Sprintf("mule: AttemptsExhausted requires a positive limit, got %d", n))
	}
	return StopFunc(func(last *Attempt) bool {
		return last != nil && last.Number >= n
	})
}

// TimeExhausted returns a condition that stops once the time since the first
// attempt started exceeds limit. It panics if limit is negative.
func TimeExhausted(limit time.Duration) StopCondition {
	if limit < 0 {
		panic(fmt.Sprintf("mule: TimeExhausted requires a non-negative limit, got %v", limit))
	}
	return StopFunc(func(last *Attempt) bool {
		return last != nil && last.Elapsed > limit
	})
}

// Succeeded returns a condition that stops as soon as an attempt returns
// without error. The retry loop already stops on success on its own; the
// condition exists for explicit composition.
func Succeeded() StopCondition {
	return StopFunc(func(last *Attempt) bool {
		return last != nil && last.Succeeded()
	})
}

// NonRetryable returns a condition that stops when the last attempt failed
// with an error outside the retryable class, so such failures propagate
// after a single attempt instead of being retried.
func NonRetryable(retryable Condition) StopCondition {
	return StopFunc(func(last *Attempt) bool {
		return last != nil && last.Failed() && !retryable(last.Err)
	})
}

// Any combines conditions with logical OR, evaluated left to right with
// short-circuiting. It panics if no conditions are given.
func Any(conds ...StopCondition) StopCondition {
	if len(conds) == 0 {
		panic("mule: Any requires at least one condition")
	}
	return StopFunc(func(last *Attempt) bool {
		for _, cond := range conds {
			if cond.Met(last) {
				return true
			}
		}
		return false
	})
}

// All combines conditions with logical AND, evaluated left to right with
// short-circuiting. It panics if no conditions are given.
func All(conds ...StopCondition) StopCondition {
	if len(conds) == 0 {
		panic("mule: All requires at least one condition")
	}
	return StopFunc(func(last *Attempt) bool {
		for _, cond := range conds {
			if !cond.Met(last) {
				return false
			}
		}
		return true
	})
}

// Abort wraps an error to signal that it must not be retried. The retry loop
// immediately returns the unwrapped error, regardless of the stop condition.
func Abort(err error) error {
	if err == nil {
		return nil
	}
	return &abortError{err: err}
}

// abortError wraps an error that should not be retried.
type abortError struct {
	err error
}

func (e *abortError) Error() string {
	return e.err.Error()
}

func (e *abortError) Unwrap() error {
	return e.err
}
