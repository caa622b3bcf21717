package server

import (
	"sync"
	"time"
)

const (
	idleBucketTTL   = 1 * time.Hour
	cleanupInterval = 30 * time.Minute
)

// bucket is one client's token bucket. Tokens refill continuously at
// RateLimiter.rate and never exceed the burst size.
type bucket struct {
	tokens float64
	seen   time.Time
}

// RateLimiter allows each client burst requests at once and refills at
// burst per window. A limiter with burst <= 0 allows everything.
type RateLimiter struct {
	mu      sync.Mutex
	burst   float64
	rate    float64 // tokens per second
	buckets map[string]*bucket
	now     func() time.Time

	done     chan struct{}
	stopOnce sync.Once
}

func NewRateLimiter(burst int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		burst:   float64(burst),
		buckets: make(map[string]*bucket),
		now:     time.Now,
		done:    make(chan struct{}),
	}
	if burst > 0 && window > 0 {
		rl.rate = float64(burst) / window.Seconds()
	}
	go rl.sweep()
	return rl
}

// Enabled reports whether the limiter rejects anything at all.
func (r *RateLimiter) Enabled() bool { return r.burst > 0 }

func (r *RateLimiter) sweep() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.evictIdle()
		case <-r.done:
			return
		}
	}
}

func (r *RateLimiter) evictIdle() {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-idleBucketTTL)
	for client, b := range r.buckets {
		if b.seen.Before(cutoff) {
			delete(r.buckets, client)
		}
	}
}

// Stop ends the sweep goroutine. Safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.done) })
}

// Allow takes one token from client's bucket, refilling it first for the
// time elapsed since the client was last seen.
func (r *RateLimiter) Allow(client string) bool {
	if !r.Enabled() {
		return true
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	b, ok := r.buckets[client]
	if !ok {
		b = &bucket{tokens: r.burst, seen: now}
		r.buckets[client] = b
	} else {
		b.tokens += now.Sub(b.seen).Seconds() * r.rate
		if b.tokens > r.burst {
			b.tokens = r.burst
		}
		b.seen = now
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}
