package middleware

import (
	"net"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/zhuxinjianbtc-hue/codex-offerwall/utils"
)

// In-memory per-IP rate limiter with trusted-proxy support and a background
// cleanup loop. Good enough for a single instance.

// IPRateLimiter counts requests per client IP inside a sliding window of
// timestamps.
type IPRateLimiter struct {
	max         int
	window      time.Duration
	mu          sync.Mutex
	state       map[string][]int64
	trustedCIDR []string
}

// NewIPRateLimiter allows max requests per IP per window.
func NewIPRateLimiter(max int, window time.Duration) *IPRateLimiter {
	l := &IPRateLimiter{
		max:    max,
		window: window,
		state:  make(map[string][]int64),
	}
	if v := os.Getenv("TRUSTED_PROXIES"); v != "" {
		l.trustedCIDR = strings.Split(v, ",")
	}
	go l.cleanupLoop()
	return l
}

// clientIPGeneric returns the client IP string. X-Forwarded-For and
// X-Real-IP are honored only when the remote address is inside one of the
// trusted CIDRs or IPs.
func clientIPGeneric(r *http.Request, trustedCIDR []string) string {
	remoteHost, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteHost = r.RemoteAddr
	}

	trusted := false
	for _, c := range trustedCIDR {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if strings.Contains(c, "/") {
			if _, ipnet, err := net.ParseCIDR(c); err == nil {
				if ip := net.ParseIP(remoteHost); ip != nil && ipnet.Contains(ip) {
					trusted = true
					break
				}
			}
		} else if c == remoteHost {
			trusted = true
			break
		}
	}

	if trusted {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			parts := strings.Split(xff, ",")
			if ip := strings.TrimSpace(parts[0]); ip != "" {
				return ip
			}
		}
		if rip := strings.TrimSpace(r.Header.Get("X-Real-IP")); rip != "" {
			return rip
		}
	}
	return remoteHost
}

func (l *IPRateLimiter) allow(ip string, now int64) bool {
	cutoff := now - l.window.Nanoseconds()

	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.state[ip]
	kept := ts[:0]
	for _, t := range ts {
		if t > cutoff {
			kept = append(kept, t)
		}
	}
	if len(kept) >= l.max {
		l.state[ip] = kept
		return false
	}
	l.state[ip] = append(kept, now)
	return true
}

// Middleware rejects over-limit clients with 429.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIPGeneric(r, l.trustedCIDR)
		if !l.allow(ip, time.Now().UnixNano()) {
			utils.Fail(w, http.StatusTooManyRequests, "Too many requests", "rateLimited")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *IPRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().UnixNano() - l.window.Nanoseconds()
		l.mu.Lock()
		for ip, ts := range l.state {
			kept := ts[:0]
			for _, t := range ts {
				if t > cutoff {
					kept = append(kept, t)
				}
			}
			if len(kept) == 0 {
				delete(l.state, ip)
			} else {
				l.state[ip] = kept
			}
		}
		l.mu.Unlock()
	}
}
