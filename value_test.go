package mule_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desertaxle/mule"
)

func TestDoValue(t *testing.T) {
	t.Run("returns the successful attempt's value", func(t *testing.T) {
		errBadValue := errors.New("bad value")
		attempts := 0
		result, err := mule.DoValue(func() (string, error) {
			attempts++
			if attempts <= 2 {
				return "", errBadValue
			}
			return "ok", nil
		},
			mule.Until(mule.AttemptsExhausted(5)),
			mule.WithDelay(mule.Fixed(0)),
			mule.WithClock(newFakeClock()),
		)

		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 3, attempts)
	})

	t.Run("returns the zero value on exhaustion", func(t *testing.T) {
		result, err := mule.DoValue(func() (int, error) {
			return 99, errTest
		},
			mule.Until(mule.AttemptsExhausted(2)),
			mule.WithClock(newFakeClock()),
		)

		require.ErrorIs(t, err, errTest)
		assert.Zero(t, result)
	})

	t.Run("pointer results survive the round trip", func(t *testing.T) {
		type record struct{ name string }
		want := &record{name: "a"}

		result, err := mule.DoValue(func() (*record, error) {
			return want, nil
		}, mule.Until(mule.AttemptsExhausted(1)))

		require.NoError(t, err)
		assert.Same(t, want, result)
	})
}

func TestDoValueContext(t *testing.T) {
	t.Run("returns the successful attempt's value", func(t *testing.T) {
		attempts := 0
		result, err := mule.DoValueContext(context.Background(), func(context.Context) (int, error) {
			attempts++
			if attempts < 2 {
				return 0, errTest
			}
			return 7, nil
		},
			mule.Until(mule.AttemptsExhausted(3)),
			mule.WithClock(newFakeClock()),
		)

		require.NoError(t, err)
		assert.Equal(t, 7, result)
	})

	t.Run("cancellation propagates with the zero value", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		result, err := mule.DoValueContext(ctx, func(context.Context) (string, error) {
			cancel()
			return "partial", errTest
		},
			mule.Until(mule.AttemptsExhausted(5)),
			mule.WithClock(newFakeClock()),
		)

		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, result)
	})
}

func TestWrapValue(t *testing.T) {
	attempts := 0
	fn := mule.WrapValue(func() (int, error) {
		attempts++
		if attempts%2 != 0 {
			return 0, errTest
		}
		return attempts, nil
	},
		mule.Until(mule.AttemptsExhausted(3)),
		mule.WithClock(newFakeClock()),
	)

	result, err := fn()
	require.NoError(t, err)
	assert.Equal(t, 2, result)

	result, err = fn()
	require.NoError(t, err)
	assert.Equal(t, 4, result)
}
