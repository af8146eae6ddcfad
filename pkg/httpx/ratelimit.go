package httpx

import (
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/taskboard/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines the rate limiting parameters.
type RateLimitConfig struct {
	// RequestsPerWindow is the number of requests allowed in the time window
	RequestsPerWindow int
	// Window is the time window for rate limiting
	Window time.Duration
	// Burst allows for temporary bursts above the rate limit
	Burst int
	// TrustedProxies are the peers whose forwarding headers are believed.
	// Empty means the client is always the TCP peer.
	TrustedProxies []netip.Prefix
}

// StrictLimit suits credential endpoints: 5 requests a minute per key.
var StrictLimit = RateLimitConfig{
	RequestsPerWindow: 5,
	Window:            time.Minute,
	Burst:             5,
}

// Enabled reports whether the config describes a usable limit.
func (c RateLimitConfig) Enabled() bool {
	return c.RequestsPerWindow > 0 && c.Window > 0 && c.Burst > 0
}

// KeyExtractor is a function that extracts a unique key from the request
// for rate limiting purposes.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor keys on the TCP peer address. Forwarding headers are
// ignored because any client can set them.
func IPKeyExtractor(r *http.Request) string {
	if ip, ok := peerIP(r); ok {
		return ip.String()
	}
	return r.RemoteAddr
}

// ProxyAwareKeyExtractor believes X-Forwarded-For and X-Real-IP only when
// the TCP peer is inside trusted. X-Forwarded-For is walked right to left
// and the first hop outside trusted is the client.
func ProxyAwareKeyExtractor(trusted []netip.Prefix) KeyExtractor {
	if len(trusted) == 0 {
		return IPKeyExtractor
	}

	isTrusted := func(ip netip.Addr) bool {
		for _, p := range trusted {
			if p.Contains(ip) {
				return true
			}
		}
		return false
	}

	return func(r *http.Request) string {
		peer, ok := peerIP(r)
		if !ok {
			return r.RemoteAddr
		}
		if !isTrusted(peer) {
			return peer.String()
		}

		if xff := r.Header.Values("X-Forwarded-For"); len(xff) > 0 {
			hops := strings.Split(strings.Join(xff, ","), ",")
			client := peer
			for i := len(hops) - 1; i >= 0; i-- {
				ip, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
				if err != nil {
					break
				}
				client = ip.Unmap()
				if !isTrusted(client) {
					break
				}
			}
			return client.String()
		}

		if ip, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
			return ip.Unmap().String()
		}
		return peer.String()
	}
}

// ParseTrustedProxies accepts CIDR prefixes and bare addresses.
func ParseTrustedProxies(entries []string) ([]netip.Prefix, error) {
	var out []netip.Prefix
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if strings.Contains(e, "/") {
			p, err := netip.ParsePrefix(e)
			if err != nil {
				return nil, fmt.Errorf("httpx: trusted proxy %q: %w", e, err)
			}
			out = append(out, p.Masked())
			continue
		}
		ip, err := netip.ParseAddr(e)
		if err != nil {
			return nil, fmt.Errorf("httpx: trusted proxy %q: %w", e, err)
		}
		ip = ip.Unmap()
		out = append(out, netip.PrefixFrom(ip, ip.BitLen()))
	}
	return out, nil
}

func peerIP(r *http.Request) (netip.Addr, bool) {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	ip, err := netip.ParseAddr(host)
	if err != nil {
		return netip.Addr{}, false
	}
	return ip.Unmap(), true
}

// idleAfter is how long a key may go unseen before its limiter is dropped.
const idleAfter = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// keyedLimiter holds one token bucket per key.
type keyedLimiter struct {
	mu          sync.Mutex
	entries     map[string]*limiterEntry
	limit       rate.Limit
	burst       int
	lastCleanup time.Time
}

func (kl *keyedLimiter) get(key string, now time.Time) *rate.Limiter {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	if now.Sub(kl.lastCleanup) > idleAfter {
		for k, e := range kl.entries {
			if now.Sub(e.lastSeen) > idleAfter {
				delete(kl.entries, k)
			}
		}
		kl.lastCleanup = now
	}

	e, ok := kl.entries[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(kl.limit, kl.burst)}
		kl.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

// RateLimitMiddleware creates a rate limiting middleware with the given
// configuration. The keyExtractor determines how requests are grouped.
func RateLimitMiddleware(config RateLimitConfig, keyExtractor KeyExtractor) Middleware {
	if !config.Enabled() {
		return func(next http.Handler) http.Handler { return next }
	}

	kl := &keyedLimiter{
		entries:     make(map[string]*limiterEntry),
		limit:       rate.Limit(float64(config.RequestsPerWindow) / config.Window.Seconds()),
		burst:       config.Burst,
		lastCleanup: time.Now(),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyExtractor(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			now := time.Now()
			res := kl.get(key, now).ReserveN(now, 1)
			if delay := res.DelayFrom(now); delay > 0 {
				res.CancelAt(now)

				retryAfter := max(int(delay.Seconds()), 1)
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(config.RequestsPerWindow))

				slogx.FromContext(r.Context()).Warn("rate limit exceeded",
					"key", key,
					"endpoint", r.URL.Path,
					"retry_after", retryAfter,
				)

				WriteMessage(w, http.StatusTooManyRequests, "Too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP limits per client IP, honouring forwarding headers only
// from config.TrustedProxies.
func RateLimitByIP(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, ProxyAwareKeyExtractor(config.TrustedProxies))
}
