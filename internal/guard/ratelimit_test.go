package guard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_AllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		d := rl.Check("1.2.3.4")
		assert.True(t, d.Allowed, "request %d", i+1)
		assert.Equal(t, 2-i, d.Remaining)
	}
}

func TestCheck_BlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	rl.Check("1.2.3.4")
	rl.Check("1.2.3.4")

	d := rl.Check("1.2.3.4")
	assert.False(t, d.Allowed)
	assert.Greater(t, d.RetryAfter, time.Duration(0))
	assert.LessOrEqual(t, d.RetryAfter, time.Minute)
}

func TestCheck_RetryAfterNeverGrows(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	rl.Check("1.2.3.4")

	first := rl.Check("1.2.3.4")
	require.False(t, first.Allowed)
	time.Sleep(10 * time.Millisecond)
	second := rl.Check("1.2.3.4")
	require.False(t, second.Allowed)

	assert.LessOrEqual(t, second.RetryAfter, first.RetryAfter)
}

func TestCheck_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()

	rl.Check("1.2.3.4")
	assert.False(t, rl.Check("1.2.3.4").Allowed)
	assert.True(t, rl.Check("5.6.7.8").Allowed)
}

func TestCheck_WindowResets(t *testing.T) {
	rl := NewRateLimiter(1, 20*time.Millisecond)
	defer rl.Stop()

	rl.Check("1.2.3.4")
	assert.False(t, rl.Check("1.2.3.4").Allowed)

	time.Sleep(30 * time.Millisecond)
	assert.True(t, rl.Check("1.2.3.4").Allowed)
}

func TestSweep_DropsExpiredWindows(t *testing.T) {
	rl := NewRateLimiter(5, 10*time.Millisecond)
	defer rl.Stop()

	rl.Check("a")
	rl.Check("b")
	require.Equal(t, 2, rl.Entries())

	assert.Eventually(t, func() bool { return rl.Entries() == 0 },
		500*time.Millisecond, 10*time.Millisecond)
}

func TestRetryAfterSeconds_RoundsUp(t *testing.T) {
	assert.Equal(t, 1, RetryAfterSeconds(100*time.Millisecond))
	assert.Equal(t, 1, RetryAfterSeconds(0))
	assert.Equal(t, 2, RetryAfterSeconds(1100*time.Millisecond))
	assert.Equal(t, 60, RetryAfterSeconds(time.Minute))
}
