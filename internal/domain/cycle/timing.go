// internal/domain/cycle/timing.go
package cycle

import "time"

// Durations of the reference build: 6h of event followed by 8h30m of waiting.
const (
	ActiveDuration = 6 * time.Hour
	WaitDuration   = 8*time.Hour + 30*time.Minute
	Length         = ActiveDuration + WaitDuration
)

// maxSpan bounds the gap handled by a single Duration subtraction and the cycle length.
const maxSpan = time.Duration(1 << 62)

// Timing holds the lengths of the two sub-intervals of a cycle.
type Timing struct {
	Active time.Duration
	Wait   time.Duration
}

// DefaultTiming is the cycle used when none is configured.
var DefaultTiming = Timing{Active: ActiveDuration, Wait: WaitDuration}

// Length is the full cycle length.
func (t Timing) Length() time.Duration {
	return t.Active + t.Wait
}

// Valid reports whether the timing describes a usable cycle.
func (t Timing) Valid() bool {
	return t.Active > 0 && t.Wait >= 0 && t.Active <= maxSpan && t.Wait <= maxSpan-t.Active
}

func (t Timing) orDefault() Timing {
	if !t.Valid() {
		return DefaultTiming
	}
	return t
}
