package mule

import "time"

// Phase identifies where an attempt is in its lifecycle.
type Phase int

const (
	// PhaseStarted means the operation has been invoked but has not yet
	// returned.
	PhaseStarted Phase = iota
	// PhaseSucceeded means the operation returned a value.
	PhaseSucceeded
	// PhaseFailed means the operation returned an error.
	PhaseFailed
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseStarted:
		return "started"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Attempt records one invocation of the wrapped operation. The retry loop
// creates a new Attempt before each invocation and finalizes it as soon as
// the operation returns; stop conditions and delay policies only ever see
// finalized attempts.
type Attempt struct {
	// Number is the 1-based position of this attempt within the call.
	// Numbers are strictly increasing with no gaps.
	Number int

	// StartedAt is when the operation was invoked.
	StartedAt time.Time

	// Elapsed is the time since the first attempt of this call started,
	// measured at the moment this attempt finalized.
	Elapsed time.Duration

	// Phase is the attempt's lifecycle phase.
	Phase Phase

	// Result holds the operation's return value. Set only when Phase is
	// PhaseSucceeded.
	Result any

	// Err holds the operation's error exactly as returned, so callers can
	// match it with errors.Is and errors.As after exhaustion. Set only when
	// Phase is PhaseFailed.
	Err error
}

// Succeeded reports whether the attempt finalized with a value.
func (a Attempt) Succeeded() bool {
	return a.Phase == PhaseSucceeded
}

// Failed reports whether the attempt finalized with an error.
func (a Attempt) Failed() bool {
	return a.Phase == PhaseFailed
}
