package throttle

import (
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const failRetries = 2

// Limiter counts failed attempts per key and blocks the key once the limit is
// reached. Counters expire window after the first failure.
type Limiter struct {
	attempts *cache.Cache
	limit    int
	window   time.Duration
}

func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		attempts: cache.New(window, 2*window),
		limit:    limit,
		window:   window,
	}
}

// Allow reports whether key may try again.
func (l *Limiter) Allow(key string) bool {
	if l.limit <= 0 {
		return true
	}

	n, ok := l.attempts.Get(normalize(key))
	if !ok {
		return true
	}

	return n.(int) < l.limit
}

// Fail records a failed attempt for key.
func (l *Limiter) Fail(key string) {
	key = normalize(key)

	for i := 0; i < failRetries; i++ {
		if err := l.attempts.Add(key, 1, l.window); err == nil {
			return
		}

		// key already present: keep its original expiry
		if _, err := l.attempts.IncrementInt(key, 1); err == nil {
			return
		}

		// the counter expired or was replaced between Add and IncrementInt
	}

	l.attempts.Set(key, 1, l.window)
}

// Reset forgets all failures of key, e.g. after a successful attempt.
func (l *Limiter) Reset(key string) {
	l.attempts.Delete(normalize(key))
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
