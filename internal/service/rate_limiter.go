package service

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter limita solicitudes por clave (IP de cliente) dentro de una
// ventana corta. Se aplica en el borde HTTP, nunca dentro de los services.
type RateLimiter interface {
	Allow(key string) bool
}

type bucketEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

type memoryRateLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	buckets   map[string]*bucketEntry
	lastSweep time.Time
}

// NewMemoryRateLimiter crea un token bucket por clave en memoria.
func NewMemoryRateLimiter(perMinute, burst int) RateLimiter {
	if perMinute <= 0 {
		perMinute = 60
	}
	if burst <= 0 {
		burst = 1
	}
	return &memoryRateLimiter{
		limit:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:     burst,
		ttl:       5 * time.Minute,
		buckets:   make(map[string]*bucketEntry),
		lastSweep: time.Now().UTC(),
	}
}

func (l *memoryRateLimiter) Allow(key string) bool {
	key = strings.TrimSpace(key)
	if key == "" {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now().UTC()
	l.sweep(now)

	entry, ok := l.buckets[key]
	if !ok {
		entry = &bucketEntry{lim: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = entry
	}
	entry.lastSeen = now
	return entry.lim.Allow()
}

// sweep descarta buckets inactivos; corre dentro del lock y como mucho una
// vez por minuto, así no hace falta una goroutine de limpieza.
func (l *memoryRateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < time.Minute {
		return
	}
	l.lastSweep = now
	for key, entry := range l.buckets {
		if now.Sub(entry.lastSeen) > l.ttl {
			delete(l.buckets, key)
		}
	}
}
