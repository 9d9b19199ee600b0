package server

import (
	"fmt"
	"math"
	"sync"
	"time"
)

const (
	// bucketExpiry is how long a client's bucket may sit idle before it
	// is dropped from the tracking map.
	bucketExpiry = 10 * time.Minute

	// pruneInterval bounds how often the tracking map is scanned for
	// stale buckets.
	pruneInterval = time.Minute
)

// RateLimiter is a per-client token bucket. Each client starts with a
// full bucket of burst tokens; tokens refill continuously at the
// configured rate and every allowed request consumes one.
type RateLimiter struct {
	mu sync.Mutex

	rate  float64 // tokens added per second
	burst float64 // bucket capacity

	buckets   map[string]*bucket
	lastPrune time.Time
}

// bucket tracks the token balance for a single client.
type bucket struct {
	tokens float64
	last   time.Time
}

// NewRateLimiter creates a rate limiter allowing requestsPerSecond
// sustained throughput with bursts up to burst requests.
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		rate:      requestsPerSecond,
		burst:     float64(burst),
		buckets:   make(map[string]*bucket),
		lastPrune: time.Now(),
	}
}

// Allow reports whether a request from the given client may proceed,
// consuming one token on success.
func (rl *RateLimiter) Allow(clientID string) error {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	rl.pruneStale(now)

	b := rl.getOrCreateBucket(clientID, now)
	rl.refill(b, now)

	if b.tokens < 1 {
		wait := time.Duration((1 - b.tokens) / rl.rate * float64(time.Second))
		return &RateLimitError{Limit: rl.rate, RetryAfter: wait}
	}

	b.tokens--
	return nil
}

// Tokens returns the current token balance for a client, refilled to
// the present moment.
func (rl *RateLimiter) Tokens(clientID string) float64 {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, exists := rl.buckets[clientID]
	if !exists {
		return rl.burst
	}
	rl.refill(b, time.Now())
	return b.tokens
}

// refill credits a bucket with the tokens accrued since its last
// update, capped at the burst capacity.
func (rl *RateLimiter) refill(b *bucket, now time.Time) {
	elapsed := now.Sub(b.last).Seconds()
	b.tokens = math.Min(rl.burst, b.tokens+elapsed*rl.rate)
	b.last = now
}

// getOrCreateBucket gets or creates the bucket for a client. New
// clients start with a full bucket.
func (rl *RateLimiter) getOrCreateBucket(clientID string, now time.Time) *bucket {
	b, exists := rl.buckets[clientID]
	if !exists {
		b = &bucket{tokens: rl.burst, last: now}
		rl.buckets[clientID] = b
	}
	return b
}

// pruneStale drops buckets that have been idle past expiry, at most
// once per prune interval. Callers must hold the mutex.
func (rl *RateLimiter) pruneStale(now time.Time) {
	if now.Sub(rl.lastPrune) < pruneInterval {
		return
	}
	for id, b := range rl.buckets {
		if now.Sub(b.last) > bucketExpiry {
			delete(rl.buckets, id)
		}
	}
	rl.lastPrune = now
}

// RateLimitError reports a rejected request.
type RateLimitError struct {
	Limit      float64       // sustained requests per second
	RetryAfter time.Duration // how long until the next token accrues
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded (limit: %g req/s, retry after: %v)", e.Limit, e.RetryAfter)
}
