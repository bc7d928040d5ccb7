package throttle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_BlocksAfterLimit(t *testing.T) {
	l := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("Mom@Example.com"))
		l.Fail("mom@example.com")
	}

	assert.False(t, l.Allow("mom@example.com"))
	assert.True(t, l.Allow("dad@example.com"))
}

func TestLimiter_Reset(t *testing.T) {
	l := New(1, time.Minute)

	l.Fail("mom@example.com")
	assert.False(t, l.Allow("mom@example.com"))

	l.Reset("mom@example.com")
	assert.True(t, l.Allow("mom@example.com"))
}

func TestLimiter_Expiry(t *testing.T) {
	l := New(1, 50*time.Millisecond)

	l.Fail("mom@example.com")
	assert.False(t, l.Allow("mom@example.com"))

	assert.Eventually(t, func() bool {
		return l.Allow("mom@example.com")
	}, time.Second, 10*time.Millisecond)
}

func TestLimiter_Disabled(t *testing.T) {
	l := New(0, time.Minute)

	l.Fail("mom@example.com")
	assert.True(t, l.Allow("mom@example.com"))
}

func TestLimiter_FailRecoversUnusableCounter(t *testing.T) {
	l := New(1, time.Minute)

	// neither Add nor IncrementInt can use this entry
	l.attempts.Set(normalize("mom@example.com"), "garbage", time.Minute)

	l.Fail("mom@example.com")

	n, ok := l.attempts.Get(normalize("mom@example.com"))
	assert.True(t, ok)
	assert.Equal(t, 1, n)
	assert.False(t, l.Allow("mom@example.com"))
}

func TestLimiter_FailCountsEveryAttempt(t *testing.T) {
	l := New(10, time.Minute)

	for i := 0; i < 4; i++ {
		l.Fail("mom@example.com")
	}

	n, ok := l.attempts.Get("mom@example.com")
	assert.True(t, ok)
	assert.Equal(t, 4, n)
}
