// internal/domain/cycle/upcoming.go
package cycle

import (
	"iter"
	"slices"
	"time"

	"server_event_timer/internal/domain/region"
)

// Occurrence is one active interval.
type Occurrence struct {
	Start time.Time
	End   time.Time
}

// Upcoming yields at most count active intervals starting strictly after now.
// The sequence is computed on every iteration and can be ranged over again.
func Upcoming(profile region.Profile, now time.Time, count int) iter.Seq[Occurrence] {
	return DefaultTiming.Upcoming(profile, now, count)
}

// ListUpcoming collects Upcoming into a slice.
func ListUpcoming(profile region.Profile, now time.Time, count int) []Occurrence {
	return DefaultTiming.ListUpcoming(profile, now, count)
}

func (t Timing) Upcoming(profile region.Profile, now time.Time, count int) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		if !profile.HasReference() || count <= 0 {
			return
		}

		t := t.orDefault()
		length := t.Length()
		cycleStart, _ := t.locate(profile.ReferenceInstant(), now)

		// cycleStart <= now, so the first strictly future start is one cycle later.
		start := cycleStart.Add(length)
		for i := 0; i < count; i++ {
			if !yield(Occurrence{Start: start, End: start.Add(t.Active)}) {
				return
			}
			start = start.Add(length)
		}
	}
}

func (t Timing) ListUpcoming(profile region.Profile, now time.Time, count int) []Occurrence {
	return slices.Collect(t.Upcoming(profile, now, count))
}
