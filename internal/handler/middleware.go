package handler

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// SecurityHeaders adds security response headers (CSP, X-Frame-Options, etc.)
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("X-XSS-Protection", "0")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		// img-src allows panelist photos served from an object store.
		h.Set("Content-Security-Policy", "default-src 'self'; script-src 'self'; img-src 'self' https: data:; frame-ancestors 'none'")
		h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

const rateWindow = time.Minute

// RateLimiter limits form submissions per client IP over a sliding one-minute window.
type RateLimiter struct {
	maxPerMinute      int
	trustedProxyCount int
	mu                sync.Mutex
	clients           map[string][]time.Time
	now               func() time.Time
}

// NewRateLimiter creates a rate limiter with the given requests-per-minute limit.
// trustedProxies is the number of reverse proxies that append to
// X-Forwarded-For; with 0 the header is ignored. Stale client windows are
// swept until ctx is cancelled.
func NewRateLimiter(ctx context.Context, maxPerMinute, trustedProxies int) *RateLimiter {
	rl := &RateLimiter{
		maxPerMinute:      maxPerMinute,
		trustedProxyCount: trustedProxies,
		clients:           make(map[string][]time.Time),
		now:               time.Now,
	}
	go rl.cleanupLoop(ctx, 5*time.Minute)
	return rl
}

func (rl *RateLimiter) cleanupLoop(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// sweep drops clients with no hits inside the current window.
func (rl *RateLimiter) sweep() {
	windowStart := rl.now().Add(-rateWindow)
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, hits := range rl.clients {
		if hits = prune(hits, windowStart); len(hits) == 0 {
			delete(rl.clients, ip)
		} else {
			rl.clients[ip] = hits
		}
	}
}

func prune(hits []time.Time, windowStart time.Time) []time.Time {
	valid := hits[:0]
	for _, ts := range hits {
		if ts.After(windowStart) {
			valid = append(valid, ts)
		}
	}
	return valid
}

// allow records a hit for ip. When the window is full it returns false and
// how long until the oldest hit expires.
func (rl *RateLimiter) allow(ip string) (bool, time.Duration) {
	now := rl.now()
	rl.mu.Lock()
	defer rl.mu.Unlock()

	hits := prune(rl.clients[ip], now.Add(-rateWindow))
	if len(hits) >= rl.maxPerMinute {
		rl.clients[ip] = hits
		return false, hits[0].Add(rateWindow).Sub(now)
	}
	rl.clients[ip] = append(hits, now)
	return true, 0
}

// Middleware returns an http.Handler that enforces rate limits.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, retryAfter := rl.allow(rl.clientIP(r))
		if !ok {
			w.Header().Set("Retry-After", retryAfterSeconds(retryAfter))
			writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(d time.Duration) string {
	secs := int(d.Seconds()) + 1
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// clientIP extracts the real client IP, reading from the rightmost trusted
// proxy position in X-Forwarded-For to prevent spoofing.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && rl.trustedProxyCount > 0 {
		parts := strings.Split(xff, ",")
		idx := len(parts) - rl.trustedProxyCount
		if idx >= 0 && idx < len(parts) {
			return strings.TrimSpace(parts[idx])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
