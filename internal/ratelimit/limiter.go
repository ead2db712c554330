// Package ratelimit throttles outgoing API requests with a token bucket.
package ratelimit

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Limiter is a token bucket refilled in full once per interval.
type Limiter struct {
	mu         sync.Mutex
	limit      int
	interval   time.Duration
	tokens     int
	lastRefill time.Time
}

// New creates a limiter allowing limit requests per interval.
func New(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:      limit,
		interval:   interval,
		tokens:     limit,
		lastRefill: time.Now(),
	}
}

// Wait blocks until a token is available or ctx is done.
// Waiters woken by the same refill compete for its tokens; the rest wait again.
func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for {
		next := l.refillLocked(time.Now())
		if l.tokens > 0 {
			l.tokens--
			return nil
		}

		timer := time.NewTimer(next)
		l.mu.Unlock()
		select {
		case <-timer.C:
			l.mu.Lock()
		case <-ctx.Done():
			timer.Stop()
			l.mu.Lock()
			return ctx.Err()
		}
	}
}

// refillLocked refills the bucket if a full interval has passed since the last
// refill and returns the time left until the next one. l.mu must be held.
func (l *Limiter) refillLocked(now time.Time) time.Duration {
	elapsed := now.Sub(l.lastRefill)
	if elapsed >= l.interval {
		l.tokens = l.limit
		l.lastRefill = now
		return l.interval
	}
	return l.interval - elapsed
}

// Observe adjusts the bucket from X-RateLimit-Remaining and X-RateLimit-Reset headers.
// Remaining only ever lowers the local count; a reset time moves the next refill.
func (l *Limiter) Observe(headers http.Header) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refillLocked(time.Now())

	if remaining := headers.Get("X-RateLimit-Remaining"); remaining != "" {
		if n, err := strconv.Atoi(remaining); err == nil && n >= 0 && n < l.tokens {
			l.tokens = n
		}
	}

	if reset := headers.Get("X-RateLimit-Reset"); reset != "" {
		if ts, err := strconv.ParseInt(reset, 10, 64); err == nil {
			if resetAt := time.Unix(ts, 0); resetAt.After(l.lastRefill) {
				l.lastRefill = resetAt.Add(-l.interval)
			}
		}
	}
}

// Tokens returns the number of requests left in the current interval.
func (l *Limiter) Tokens() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.tokens
}

// Doer sends HTTP requests, e.g. *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client waits on a Limiter before each request it forwards.
type Client struct {
	next    Doer
	limiter *Limiter
}

// Wrap returns next throttled by limiter.
func Wrap(next Doer, limiter *Limiter) *Client {
	return &Client{next: next, limiter: limiter}
}

// Do waits for a token, sends req and feeds the response headers back to the limiter.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	resp, err := c.next.Do(req)
	if err != nil {
		return nil, err
	}

	c.limiter.Observe(resp.Header)
	return resp, nil
}
