// Package mule retries a unit of work until it succeeds or a stop condition
// says otherwise.
//
// mule provides:
//
//   - Composable Stop Conditions: AttemptsExhausted, TimeExhausted, and
//     error classification, combined with Any and All
//   - Composable Delay Policies: Fixed, Linear, and Exponential, wrapped
//     with WithCap and WithJitter
//   - Blocking and Context-Aware Loops: Do for plain functions, DoContext
//     when cancellation must win over retry logic
//   - Injectable Clock: Control time in tests without real sleeps
//   - Lifecycle Hooks: OnRetry, OnSuccess, OnExhausted for observability
//   - Original Errors: exhaustion surfaces the last attempt's error
//     unchanged, never a synthetic wrapper
//
// # Quick Start
//
// Retry a function up to five times with a fixed delay:
//
//	err := mule.Do(fetch,
//	    mule.Until(mule.AttemptsExhausted(5)),
//	    mule.WithDelay(mule.Fixed(100*time.Millisecond)),
//	)
//
// Retry a value-returning function:
//
//	user, err := mule.DoValue(func() (*User, error) {
//	    return store.Lookup(id)
//	}, mule.Until(mule.AttemptsExhausted(3)))
//
// A stop condition is required: running without one returns
// ErrNoStopCondition before any attempt is made. The delay defaults to zero
// (immediate retry) when WithDelay is omitted.
//
// # Stop Conditions
//
// A StopCondition is a pure predicate over the most recently finalized
// attempt. Conditions compose with Any (OR) and All (AND):
//
//	mule.Until(mule.Any(
//	    mule.AttemptsExhausted(3),
//	    mule.TimeExhausted(60*time.Second),
//	))
//
// Success always ends the loop on its own; conditions only decide how long
// to keep retrying failures.
//
// # Error Classification
//
// Failures outside a retryable class should propagate after a single
// attempt. Classify them with NonRetryable:
//
//	mule.Until(mule.Any(
//	    mule.AttemptsExhausted(5),
//	    mule.NonRetryable(mule.ErrorIs(io.EOF, io.ErrUnexpectedEOF)),
//	))
//
// Alternatively, signal from inside the operation with Abort:
//
//	func fetchUser(id string) error {
//	    err := db.Get(id)
//	    if errors.Is(err, sql.ErrNoRows) {
//	        return mule.Abort(ErrNotFound) // don't retry "not found"
//	    }
//	    return err // other errors follow the stop condition
//	}
//
// # Delay Policies
//
// Three base policies:
//
//	mule.Fixed(100*time.Millisecond)            // always 100ms
//	mule.Linear(100*time.Millisecond)           // 100ms, 200ms, 300ms, ...
//	mule.Exponential(100*time.Millisecond, 2)   // 100ms, 200ms, 400ms, ...
//
// Policies compose with wrappers:
//
//	mule.WithJitter(0.2, mule.WithCap(10*time.Second,
//	    mule.Exponential(100*time.Millisecond, 2)))
//
// # Cancellation
//
// DoContext and DoValueContext observe ctx at both suspension points of each
// iteration: the operation call and the inter-attempt delay. A cancelled
// context ends the loop immediately with context.Cause(ctx) — no further
// condition evaluation, delay, or attempt. Do and DoValue block and cannot
// be cancelled.
//
// # Policies for Dependency Injection
//
// A Policy fixes the stop condition, delay, and clock at wire-up time;
// call sites add hooks or override as needed:
//
//	policy := mule.New(
//	    mule.Until(mule.AttemptsExhausted(5)),
//	    mule.WithDelay(mule.Exponential(100*time.Millisecond, 2)),
//	)
//
//	err := policy.Do(fetch, mule.OnRetry(logRetry))
//
// Stop conditions and delay policies are stateless and safe to share across
// concurrently running calls; each call owns its own attempt sequence.
//
// # Unbounded Retries
//
// The loop imposes no implicit attempt cap. A condition that never trips
// (for example NonRetryable alone, against an operation that only ever
// fails retryably) retries forever; that is the configured behavior, not an
// error.
package mule
