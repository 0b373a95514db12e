package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/lending-service/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	successfulService := func() error {
		return nil
	}
	failingService := func() error {
		return errors.New("service error")
	}

	cb := circuit_breaker.New(10, 50*time.Millisecond, 0.30, 3)

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Call(successfulService))
	}

	// 4 of the last 10 calls fail -> breaker opens
	for i := 0; i < 4; i++ {
		require.Error(t, cb.Call(failingService))
	}
	require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

	// after the timeout the breaker probes in half-open
	time.Sleep(60 * time.Millisecond)
	require.NoError(t, cb.Call(successfulService))

	// a failure in half-open snaps it back to open
	require.Error(t, cb.Call(failingService))
	require.ErrorIs(t, cb.Call(successfulService), circuit_breaker.ErrOpenCB)

	// recover: enough consecutive successes close the breaker
	time.Sleep(60 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, cb.Call(successfulService))
	}
	require.NoError(t, cb.Call(successfulService))
}

func Test_circuitBreaker_Reset(t *testing.T) {
	failingService := func() error {
		return errors.New("service error")
	}

	cb := circuit_breaker.New(5, time.Minute, 0.5, 1)
	for i := 0; i < 5; i++ {
		_ = cb.Call(failingService)
	}
	require.ErrorIs(t, cb.Call(func() error { return nil }), circuit_breaker.ErrOpenCB)

	cb.Reset()
	require.NoError(t, cb.Call(func() error { return nil }))
}
