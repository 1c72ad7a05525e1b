package mule

import (
	"context"
	"errors"
	"time"
)

// Func is the function signature for context-aware retryable operations.
type Func func(ctx context.Context) error

// Sentinel errors returned before any attempt runs.
var (
	// ErrNoStopCondition is returned when a retry is started without a stop
	// condition configured.
	ErrNoStopCondition = errors.New("mule: no stop condition configured")

	// ErrNeverAttempted is returned when the stop condition is already met
	// before the first attempt.
	ErrNeverAttempted = errors.New("mule: stop condition met before any attempt")
)

// package-level defaults to avoid allocation
var (
	zeroDelay    = NoDelay()
	defaultClock = realClock{}
)

// Policy binds a stop condition, delay policy, and clock for reuse across
// call sites. Safe for concurrent use.
type Policy struct {
	cond  StopCondition
	delay DelayPolicy
	clock Clock
}

// New creates a Policy with the given options. Call-level options passed to
// Do or DoContext are applied on top.
func New(opts ...Option) *Policy {
	cfg := config{
		delay: zeroDelay,
		clock: defaultClock,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Policy{
		cond:  cfg.cond,
		delay: cfg.delay,
		clock: cfg.clock,
	}
}

// Never returns a policy that does not retry.
func Never() *Policy {
	return New(Until(AttemptsExhausted(1)))
}

// Default returns a policy with sensible defaults: three attempts with
// capped, jittered exponential backoff.
func Default() *Policy {
	return New(
		Until(AttemptsExhausted(3)),
		WithDelay(WithJitter(0.2, WithCap(10*time.Second, Exponential(100*time.Millisecond, 2)))),
	)
}

// Do runs fn under this policy, blocking the calling goroutine.
func (p *Policy) Do(fn func() error, opts ...Option) error {
	_, err := execute(context.Background(), discardResult(fn), p.config(opts))
	return err
}

// DoContext runs fn under this policy, observing ctx cancellation at every
// suspension point.
func (p *Policy) DoContext(ctx context.Context, fn Func, opts ...Option) error {
	_, err := execute(ctx, func(ctx context.Context) (any, error) {
		return nil, fn(ctx)
	}, p.config(opts))
	return err
}

func (p *Policy) config(opts []Option) config {
	cfg := config{
		cond:  p.cond,
		delay: p.delay,
		clock: p.clock,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Do runs fn until the stop condition is met. Attempts and delays block the
// calling goroutine; the goroutine does no other work for the duration of
// the call.
//
// On eventual success Do returns nil. On exhaustion it returns the final
// attempt's error exactly as the operation produced it.
func Do(fn func() error, opts ...Option) error {
	_, err := execute(context.Background(), discardResult(fn), newConfig(opts))
	return err
}

// DoContext runs fn until the stop condition is met. The operation call and
// the inter-attempt delay are both suspension points: if ctx is cancelled at
// either, DoContext returns context.Cause(ctx) immediately without another
// attempt or delay. Cancellation always wins over retry logic.
func DoContext(ctx context.Context, fn Func, opts ...Option) error {
	_, err := execute(ctx, func(ctx context.Context) (any, error) {
		return nil, fn(ctx)
	}, newConfig(opts))
	return err
}

// Wrap binds fn to the given retry options and returns a function that runs
// the full retry loop on each call.
func Wrap(fn func() error, opts ...Option) func() error {
	return func() error {
		return Do(fn, opts...)
	}
}

// WrapContext binds fn to the given retry options and returns a
// context-aware function that runs the full retry loop on each call.
func WrapContext(fn Func, opts ...Option) Func {
	return func(ctx context.Context) error {
		return DoContext(ctx, fn, opts...)
	}
}

// operation is the internal shape of a wrapped operation: both the error-only
// and the value-returning public entry points funnel into it.
type operation func(ctx context.Context) (any, error)

func discardResult(fn func() error) operation {
	return func(context.Context) (any, error) {
		return nil, fn()
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		delay: zeroDelay,
		clock: defaultClock,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// execute drives the retry state machine. Each iteration consults the stop
// condition with the last finalized attempt (nil before the first), waits out
// the delay policy, then runs one attempt. Success returns immediately;
// exhaustion surfaces the last attempt's error unchanged. The attempt record
// is owned exclusively by this loop and discarded when the call returns.
func execute(ctx context.Context, op operation, cfg config) (any, error) {
	if cfg.cond == nil {
		return nil, ErrNoStopCondition
	}
	if cfg.delay == nil {
		cfg.delay = zeroDelay
	}
	if cfg.clock == nil {
		cfg.clock = defaultClock
	}

	var (
		last  *Attempt
		first time.Time
		errs  []error
	)

	for number := 1; ; number++ {
		if cfg.cond.Met(last) {
			if last == nil {
				return nil, ErrNeverAttempted
			}
			// Success returns from inside the loop, so the last attempt
			// here is always a failed one.
			if cfg.onExhausted != nil {
				cfg.onExhausted(ctx, last.Number, last.Err)
			}
			if cfg.allErrors {
				return nil, joinErrors(errs)
			}
			return nil, last.Err
		}

		if last != nil {
			delay := cfg.delay.Delay(*last)
			if delay < 0 {
				delay = 0
			}
			if cfg.onRetry != nil {
				cfg.onRetry(ctx, last.Number, last.Err, delay)
			}
			if err := cfg.clock.Sleep(ctx, delay); err != nil {
				if cause := context.Cause(ctx); cause != nil {
					return nil, cause
				}
				return nil, err
			}
		}

		started := cfg.clock.Now()
		if first.IsZero() {
			first = started
		}
		attempt := Attempt{Number: number, StartedAt: started, Phase: PhaseStarted}

		result, err := op(ctx)
		attempt.Elapsed = cfg.clock.Now().Sub(first)

		if err == nil {
			attempt.Phase = PhaseSucceeded
			attempt.Result = result
			if cfg.onSuccess != nil {
				cfg.onSuccess(ctx, attempt.Number)
			}
			return result, nil
		}

		// Cancellation wins over retry logic. A context error returned by
		// the operation while ctx is still live is an ordinary failure.
		if ctx.Err() != nil {
			return nil, context.Cause(ctx)
		}

		attempt.Phase = PhaseFailed
		attempt.Err = err

		var aborted *abortError
		if errors.As(err, &aborted) {
			return nil, aborted.Unwrap()
		}

		if cfg.allErrors {
			errs = append(errs, err)
		}
		last = &attempt
	}
}

func joinErrors(errs []error) error {
	if len(errs) == 1 {
		return errs[0]
	}
	return errors.Join(errs...)
}
