package server

import (
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/ChainBot_Go/internal/metrics"
)

// window is a fixed counting window for one client
type window struct {
	count int
	start time.Time
}

// RateLimiter counts requests and failed authentications per client IP in
// bounded caches. Idle clients age out after the window; when the cache is
// full the least recently seen client is evicted.
type RateLimiter struct {
	mu         sync.Mutex
	limit      int
	window     time.Duration
	requests   *expirable.LRU[string, window]
	failedAuth *expirable.LRU[string, window]
	now        func() time.Time
}

// NewRateLimiter allows limit requests per client per window
func NewRateLimiter(limit int, windowSize time.Duration, maxClients int) *RateLimiter {
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	if windowSize <= 0 {
		windowSize = DefaultRateLimitWindow
	}
	if maxClients <= 0 {
		maxClients = DefaultRateLimitClients
	}

	return &RateLimiter{
		limit:      limit,
		window:     windowSize,
		requests:   expirable.NewLRU[string, window](maxClients, nil, windowSize),
		failedAuth: expirable.NewLRU[string, window](maxClients, nil, windowSize),
		now:        time.Now,
	}
}

// increment bumps the count for ip, starting a new window when the old one
// has passed. Caller must hold the mutex.
func (l *RateLimiter) increment(cache *expirable.LRU[string, window], ip string) int {
	now := l.now()
	w, ok := cache.Get(ip)
	if !ok || now.Sub(w.start) >= l.window {
		w = window{start: now}
	}
	w.count++
	cache.Add(ip, w)
	return w.count
}

// RecordRequest counts a request and returns false once ip is over the limit
func (l *RateLimiter) RecordRequest(ip string) bool {
	l.mu.Lock()
	count := l.increment(l.requests, ip)
	l.mu.Unlock()

	if count <= l.limit {
		return true
	}

	metrics.RateLimitedTotal.WithLabelValues(metrics.ReasonRequests).Inc()
	if count%rateLimitLogEvery == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", count)
	}
	return false
}

// RecordFailedAuth counts a failed authentication and returns the count in
// the current window
func (l *RateLimiter) RecordFailedAuth(ip string) int {
	l.mu.Lock()
	count := l.increment(l.failedAuth, ip)
	l.mu.Unlock()

	if count >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
	return count
}

// AuthBlocked reports whether ip failed authentication too often this window
func (l *RateLimiter) AuthBlocked(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.failedAuth.Get(ip)
	if !ok || l.now().Sub(w.start) >= l.window {
		return false
	}
	return w.count > FailedAuthBlockThreshold
}
