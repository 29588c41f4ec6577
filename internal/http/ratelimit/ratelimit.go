// Package ratelimit throttles admin write routes per client IP. Limiting is
// in-process (token bucket per visitor); repeated rejections are recorded as
// strikes in Redis and tip the client into a temporary ban.
package ratelimit

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	strikeWindow    = 10 * time.Minute
	strikeThreshold = 10
	banDuration     = time.Hour
)

// StrikeTracker records rejected requests per client and keeps the ban state.
// The Redis service satisfies it in production.
type StrikeTracker interface {
	AddStrike(ctx context.Context, ip string, window time.Duration) (int64, error)
	Ban(ctx context.Context, ip string, d time.Duration) error
	IsBanned(ctx context.Context, ip string) (bool, error)
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	visitors = make(map[string]*clientLimiter)
	mu       sync.Mutex

	tracker StrikeTracker
)

func SetStrikeTracker(t StrikeTracker) {
	tracker = t
}

func getVisitor(ip string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()

	v, exists := visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(1, 3) // 1 request/sec, burst of 3
		visitors[ip] = &clientLimiter{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// StartVisitorCleanupLoop drops visitors idle for more than five minutes.
func StartVisitorCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		mu.Lock()
		for ip, v := range visitors {
			if time.Since(v.lastSeen) > 5*time.Minute {
				delete(visitors, ip)
			}
		}
		mu.Unlock()
	}
}

// CleanupAllVisitors resets the visitor table.
func CleanupAllVisitors() {
	mu.Lock()
	visitors = make(map[string]*clientLimiter)
	mu.Unlock()
}

// Middleware rejects over-limit requests with 429 and banned clients with
// 403. Without a strike tracker only the token bucket applies.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		if tracker != nil {
			banned, err := tracker.IsBanned(r.Context(), ip)
			if err != nil {
				log.Warn().Err(err).Msg("ban lookup failed, letting request through")
			} else if banned {
				http.Error(w, "too many requests, try again later", http.StatusForbidden)
				return
			}
		}

		if !getVisitor(ip).Allow() {
			if tracker != nil {
				strikes, err := tracker.AddStrike(r.Context(), ip, strikeWindow)
				if err != nil {
					log.Warn().Err(err).Msg("strike tracking failed")
				} else if strikes >= strikeThreshold {
					if err := tracker.Ban(r.Context(), ip, banDuration); err != nil {
						log.Warn().Err(err).Msg("ban write failed")
					} else {
						log.Warn().Str("ip", ip).Str("route", r.URL.Path).Int64("strikes", strikes).Msg("client banned")
					}
				}
			}
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
