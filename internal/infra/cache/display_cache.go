// Package cache memoizes rendered time strings.
package cache

import (
	"time"

	"github.com/maypok86/otter/v2"

	"server_event_timer/internal/domain/servertime"
)

const (
	defaultMaximumSize = 4_096
	defaultTTL         = 30 * time.Minute
)

// Templates show minutes at most, so one entry covers a whole minute.
type displayKey struct {
	minute      int64
	offsetHours int
	template    servertime.Template
}

// DisplayCache memoizes servertime.Format. Formatting is pure, so a hit
// returns exactly what a fresh call would.
type DisplayCache struct {
	cache *otter.Cache[displayKey, string]
}

// NewDisplayCache builds a cache; non-positive arguments select the defaults.
func NewDisplayCache(maximumSize int, ttl time.Duration) *DisplayCache {
	if maximumSize <= 0 {
		maximumSize = defaultMaximumSize
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &DisplayCache{
		cache: otter.Must(&otter.Options[displayKey, string]{
			MaximumSize:      maximumSize,
			ExpiryCalculator: otter.ExpiryWriting[displayKey, string](ttl),
		}),
	}
}

// Format returns the server time string of t, computing it on a miss.
func (c *DisplayCache) Format(t time.Time, offsetHours int, tpl servertime.Template) string {
	minute := t.Truncate(time.Minute)
	key := displayKey{minute: minute.Unix(), offsetHours: offsetHours, template: tpl}
	if s, ok := c.cache.GetIfPresent(key); ok {
		return s
	}

	s := servertime.Format(minute, offsetHours, tpl)
	c.cache.Set(key, s)
	return s
}

// Len returns the approximate number of cached strings.
func (c *DisplayCache) Len() int {
	return c.cache.EstimatedSize()
}
