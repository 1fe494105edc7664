// Package ratelimit throttles comment submissions per user session.
package ratelimit

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/nikol804/dotapost/internal/domain"
)

const (
	// DefaultWindow is how long an identity waits between comments.
	DefaultWindow = 10 * time.Second

	// DefaultCacheSize bounds the number of identities tracked at once.
	DefaultCacheSize = 10000

	keyPrefix = "comment_rate_limit:"
)

// Limiter remembers when each identity last commented. Entries expire on
// their own after the window; state is in-process and lost on restart.
type Limiter struct {
	mu     sync.Mutex
	window time.Duration
	cache  *expirable.LRU[string, time.Time]
	now    func() time.Time
}

// New creates a limiter. Non-positive arguments fall back to the defaults.
func New(window time.Duration, size int) *Limiter {
	if window <= 0 {
		window = DefaultWindow
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Limiter{
		window: window,
		cache:  expirable.NewLRU[string, time.Time](size, nil, window),
		now:    time.Now,
	}
}

// Key returns the throttle key for an identity.
func Key(id domain.Identity) string {
	return keyPrefix + id.UserID + ":" + id.Session()
}

// Allow reports whether id may submit a comment now.
func (l *Limiter) Allow(id domain.Identity) bool {
	_, throttled := l.cache.Get(Key(id))
	return !throttled
}

// RetryAfter returns how long id still has to wait; zero when allowed.
func (l *Limiter) RetryAfter(id domain.Identity) time.Duration {
	marked, ok := l.cache.Peek(Key(id))
	if !ok {
		return 0
	}
	left := l.window - l.now().Sub(marked)
	if left < 0 {
		return 0
	}
	return left
}

// Reserve starts the window for id unless it is already running, and reports
// whether it did. Of concurrent callers for one identity only one succeeds.
func (l *Limiter) Reserve(id domain.Identity) bool {
	key := Key(id)
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cache.Contains(key) {
		return false
	}
	l.cache.Add(key, l.now())
	return true
}

// Release ends a window started by Reserve, for a submission that was not
// stored after all.
func (l *Limiter) Release(id domain.Identity) {
	l.cache.Remove(Key(id))
}

// Window returns the configured throttle window.
func (l *Limiter) Window() time.Duration {
	return l.window
}
