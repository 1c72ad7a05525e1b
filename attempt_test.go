package mule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/desertaxle/mule"
)

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "started", mule.PhaseStarted.String())
	assert.Equal(t, "succeeded", mule.PhaseSucceeded.String())
	assert.Equal(t, "failed", mule.PhaseFailed.String())
	assert.Equal(t, "unknown", mule.Phase(42).String())
}

func TestAttemptPredicates(t *testing.T) {
	started := mule.Attempt{Number: 1, Phase: mule.PhaseStarted}
	assert.False(t, started.Succeeded())
	assert.False(t, started.Failed())

	succeeded := mule.Attempt{Number: 1, Phase: mule.PhaseSucceeded, Result: "ok"}
	assert.True(t, succeeded.Succeeded())
	assert.False(t, succeeded.Failed())

	failed := mule.Attempt{Number: 2, Phase: mule.PhaseFailed, Err: errTest}
	assert.False(t, failed.Succeeded())
	assert.True(t, failed.Failed())
}
