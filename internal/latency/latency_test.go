package latency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoneReturnsImmediately(t *testing.T) {
	start := time.Now()
	err := None{}.Wait(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestFixedWaitsScaledDelay(t *testing.T) {
	start := time.Now()
	err := Fixed{Scale: 1}.Wait(context.Background(), 20*time.Millisecond)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestFixedZeroScaleSkipsDelay(t *testing.T) {
	start := time.Now()
	err := Fixed{Scale: 0}.Wait(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestFixedHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := Fixed{Scale: 1}.Wait(ctx, time.Hour)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestFromConfig(t *testing.T) {
	assert.Equal(t, None{}, FromConfig(false, 1))
	assert.Equal(t, Fixed{Scale: 0.5}, FromConfig(true, 0.5))
	// Non-positive scale falls back to 1.
	assert.Equal(t, Fixed{Scale: 1}, FromConfig(true, 0))
}
