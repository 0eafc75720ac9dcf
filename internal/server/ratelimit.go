package server

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/ryanrauch/restaurant-ai-landing/internal/apperror"
)

// maxTrackedClients bounds the limiter map.
const maxTrackedClients = 10000

// ClientRateLimiter keeps one token bucket per client address
type ClientRateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	capacity int
	// idleAfter is how long a bucket takes to refill completely. A client
	// idle that long is indistinguishable from a new one and may be dropped.
	idleAfter time.Duration
	now       func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClientRateLimiter allows reqPerMin requests per client with the given
// burst. It returns nil when reqPerMin is not positive, which disables
// limiting.
func NewClientRateLimiter(reqPerMin, burst int) *ClientRateLimiter {
	if reqPerMin <= 0 {
		return nil
	}
	interval := time.Minute / time.Duration(reqPerMin)
	burst = max(burst, 1)
	return &ClientRateLimiter{
		clients:   make(map[string]*clientLimiter),
		limit:     rate.Every(interval),
		burst:     burst,
		capacity:  maxTrackedClients,
		idleAfter: max(time.Minute, time.Duration(burst)*interval),
		now:       time.Now,
	}
}

// Allow reports whether client may make another request now
func (m *ClientRateLimiter) Allow(client string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	c, exists := m.clients[client]
	if !exists {
		if len(m.clients) >= m.capacity {
			m.evict(now)
		}
		c = &clientLimiter{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.clients[client] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// evict drops every idle client. When none is idle the least recently seen
// client goes, so active clients keep their buckets.
func (m *ClientRateLimiter) evict(now time.Time) {
	var (
		oldestKey string
		oldest    time.Time
	)
	for key, c := range m.clients {
		if now.Sub(c.lastSeen) >= m.idleAfter {
			delete(m.clients, key)
			continue
		}
		if oldestKey == "" || c.lastSeen.Before(oldest) {
			oldestKey, oldest = key, c.lastSeen
		}
	}
	if len(m.clients) >= m.capacity && oldestKey != "" {
		delete(m.clients, oldestKey)
	}
}

// Middleware rejects requests over the limit with a JSON 429. Probe and
// metrics paths are never limited. A nil limiter passes everything.
func (m *ClientRateLimiter) Middleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/health", "/healthz", "/metrics":
				next.ServeHTTP(w, r)
				return
			}

			if !m.Allow(clientKey(r)) {
				w.Header().Set("Retry-After", "60")
				apperror.Write(w, r, log, apperror.ErrTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientKey is the request's remote host. Mount after middleware.RealIP so
// proxied requests are keyed by the forwarded address.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
