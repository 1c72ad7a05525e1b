package mule

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// DelayPolicy computes the wait before the next attempt.
//
// Delay receives the attempt that just finalized. The retry loop clamps a
// negative result to zero; zero means retry immediately.
type DelayPolicy interface {
	Delay(last Attempt) time.Duration
}

// DelayFunc is an adapter that allows a function to be used as a DelayPolicy.
type DelayFunc func(last Attempt) time.Duration

// Delay implements DelayPolicy.
func (f DelayFunc) Delay(last Attempt) time.Duration {
	return f(last)
}

// NoDelay returns a policy that retries immediately. It is the policy used
// when WithDelay is not supplied.
func NoDelay() DelayPolicy {
	return DelayFunc(func(Attempt) time.Duration {
		return 0
	})
}

// Fixed returns a policy that always waits the same duration.
// It panics if d is negative.
func Fixed(d time.Duration) DelayPolicy {
	if d < 0 {
		panic(fmt.Sprintf("mule: Fixed requires a non-negative delay, got %v", d))
	}
	return DelayFunc(func(Attempt) time.Duration {
		return d
	})
}

// Linear returns a policy whose delay grows linearly with the attempt number:
// base, 2*base, 3*base, and so on. It panics if base is negative.
func Linear(base time.Duration) DelayPolicy {
	if base < 0 {
		panic(fmt.Sprintf("mule: Linear requires a non-negative base delay, got %v", base))
	}
	return DelayFunc(func(last Attempt) time.Duration {
		return base * time.Duration(last.Number)
	})
}

// Exponential returns a policy whose delay grows geometrically: base after
// the first attempt, then base*multiplier, base*multiplier^2, and so on.
// It panics if base is negative or multiplier is less than 1.
func Exponential(base time.Duration, multiplier float64) DelayPolicy {
	if base < 0 {
		panic(fmt.Sprintf("mule: Exponential requires a non-negative base delay, got %v", base))
	}
	if multiplier < 1 {
		panic(fmt.Sprintf("mule: Exponential requires a multiplier of at least 1, got %v", multiplier))
	}
	return DelayFunc(func(last Attempt) time.Duration {
		d := float64(base) * math.Pow(multiplier, float64(last.Number-1))
		// Guard against float64 -> int64 overflow on deep attempt counts.
		if d >= float64(math.MaxInt64) {
			return time.Duration(math.MaxInt64)
		}
		return time.Duration(d)
	})
}

// WithCap wraps a policy and caps the delay at max.
// It panics if max is negative.
func WithCap(max time.Duration, p DelayPolicy) DelayPolicy {
	if max < 0 {
		panic(fmt.Sprintf("mule: WithCap requires a non-negative cap, got %v", max))
	}
	return DelayFunc(func(last Attempt) time.Duration {
		d := p.Delay(last)
		if d > max {
			return max
		}
		return d
	})
}

// WithJitter wraps a policy and perturbs each delay by a random amount within
// ±factor of the computed value, desynchronizing concurrent retriers. The
// factor must be in [0, 1]; zero leaves delays untouched. The result never
// goes below zero.
func WithJitter(factor float64, p DelayPolicy) DelayPolicy {
	if factor < 0 || factor > 1 {
		panic(fmt.Sprintf("mule: WithJitter requires a factor in [0, 1], got %v", factor))
	}
	return DelayFunc(func(last Attempt) time.Duration {
		d := p.Delay(last)
		if factor == 0 {
			return d
		}
		spread := float64(d) * factor
		jitter := (rand.Float64()*2 - 1) * spread
		result := time.Duration(float64(d) + jitter)
		if result < 0 {
			return 0
		}
		return result
	})
}
