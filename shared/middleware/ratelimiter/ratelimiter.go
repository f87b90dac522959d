package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiter is one identity's token bucket plus the timer that forgets it.
type limiter struct {
	bucket *rate.Limiter
	timer  *time.Timer
}

// UserRateLimiter keeps a token bucket per identity. Buckets unused for
// expirationTime are dropped.
type UserRateLimiter struct {
	limiters       map[string]*limiter
	mu             sync.Mutex
	rate           rate.Limit
	capacity       int
	expirationTime time.Duration
}

// New creates a limiter that refills rps tokens per second up to capacity.
func New(rps float64, capacity int, expirationTime time.Duration) *UserRateLimiter {
	return &UserRateLimiter{
		limiters:       make(map[string]*limiter),
		rate:           rate.Limit(rps),
		capacity:       capacity,
		expirationTime: expirationTime,
	}
}

func (u *UserRateLimiter) getLimiter(identity string) *limiter {
	u.mu.Lock()
	defer u.mu.Unlock()

	l, exists := u.limiters[identity]
	if !exists {
		l = &limiter{bucket: rate.NewLimiter(u.rate, u.capacity)}
		u.limiters[identity] = l
	}

	if l.timer != nil {
		l.timer.Stop()
	}
	l.timer = u.expireAfter(identity, l)
	return l
}

// expireAfter arms a timer that forgets identity. Stop cannot cancel a timer
// that already fired, so the callback checks it still owns the entry.
func (u *UserRateLimiter) expireAfter(identity string, l *limiter) *time.Timer {
	var timer *time.Timer
	timer = time.AfterFunc(u.expirationTime, func() {
		u.mu.Lock()
		defer u.mu.Unlock()
		if cur, ok := u.limiters[identity]; ok && cur == l && cur.timer == timer {
			delete(u.limiters, identity)
		}
	})
	return timer
}

// Allow checks if a request should be allowed for a given identity
func (u *UserRateLimiter) Allow(identity string) bool {
	return u.getLimiter(identity).bucket.Allow()
}

// Len reports how many identities are currently tracked.
func (u *UserRateLimiter) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.limiters)
}

// Stop cleans up all timers
func (u *UserRateLimiter) Stop() {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, l := range u.limiters {
		if l.timer != nil {
			l.timer.Stop()
		}
	}
}
