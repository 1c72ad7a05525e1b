package mule

import (
	"context"
	"time"
)

// OnRetryFunc is called before each inter-attempt delay.
type OnRetryFunc func(ctx context.Context, attempt int, err error, delay time.Duration)

// OnSuccessFunc is called when an attempt succeeds.
type OnSuccessFunc func(ctx context.Context, attempts int)

// OnExhaustedFunc is called when the stop condition ends the loop after a
// failed attempt.
type OnExhaustedFunc func(ctx context.Context, attempts int, err error)

// config holds all retry configuration.
type config struct {
	// Policy-level options
	cond  StopCondition
	delay DelayPolicy
	clock Clock

	// Call-level options
	onRetry     OnRetryFunc
	onSuccess   OnSuccessFunc
	onExhausted OnExhaustedFunc
	allErrors   bool
}

// Option configures retry behavior.
type Option func(*config)

// Until sets the stop condition. Every call must carry one, either here or
// through its Policy; running without a condition is a configuration error.
func Until(cond StopCondition) Option {
	return func(c *config) {
		c.cond = cond
	}
}

// WithDelay sets the delay policy. When omitted, retries are immediate.
func WithDelay(p DelayPolicy) Option {
	return func(c *config) {
		c.delay = p
	}
}

// WithClock sets the clock for time operations. Useful for testing.
func WithClock(clock Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// OnRetry sets a hook that is called before each inter-attempt delay.
func OnRetry(fn OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = fn
	}
}

// OnSuccess sets a hook that is called when the operation succeeds.
func OnSuccess(fn OnSuccessFunc) Option {
	return func(c *config) {
		c.onSuccess = fn
	}
}

// OnExhausted sets a hook that is called when the stop condition ends the
// loop after a failed attempt.
func OnExhausted(fn OnExhaustedFunc) Option {
	return func(c *config) {
		c.onExhausted = fn
	}
}

// WithAllErrors configures the retry to collect the error from every attempt.
// When enabled, the final error is an errors.Join of all attempt errors.
// By default, only the last error is returned.
func WithAllErrors() Option {
	return func(c *config) {
		c.allErrors = true
	}
}
