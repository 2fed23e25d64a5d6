// internal/domain/cycle/state.go
package cycle

import (
	"time"

	"server_event_timer/internal/domain/region"
)

// Epoch is used for every instant of a State without a reference.
var Epoch = time.Unix(0, 0).UTC()

// State is the position of a region inside its cycle at one instant.
// While waiting, CurrentStart/CurrentEnd describe the upcoming active interval.
type State struct {
	HasReference bool
	Active       bool
	Remaining    time.Duration // Until CurrentEnd when active, until NextStart when waiting
	CurrentStart time.Time
	CurrentEnd   time.Time
	NextStart    time.Time
}

// ComputeState evaluates profile at now using DefaultTiming.
func ComputeState(profile region.Profile, now time.Time) State {
	return DefaultTiming.ComputeState(profile, now)
}

// ComputeState evaluates profile at now.
func (t Timing) ComputeState(profile region.Profile, now time.Time) State {
	if !profile.HasReference() {
		return State{
			CurrentStart: Epoch,
			CurrentEnd:   Epoch,
			NextStart:    Epoch,
		}
	}

	t = t.orDefault()
	length := t.Length()
	cycleStart, position := t.locate(profile.ReferenceInstant(), now)

	if position < t.Active {
		currentEnd := cycleStart.Add(t.Active)
		return State{
			HasReference: true,
			Active:       true,
			Remaining:    t.Active - position,
			CurrentStart: cycleStart,
			CurrentEnd:   currentEnd,
			NextStart:    currentEnd.Add(t.Wait),
		}
	}

	nextStart := cycleStart.Add(length)
	return State{
		HasReference: true,
		Active:       false,
		Remaining:    length - position,
		CurrentStart: nextStart,
		CurrentEnd:   nextStart.Add(t.Active),
		NextStart:    nextStart,
	}
}

// locate returns the start of the cycle containing now and the offset of now inside it.
// The offset is always in [0, length), also when now precedes the reference.
func (t Timing) locate(reference, now time.Time) (time.Time, time.Duration) {
	length := t.Length()

	// time.Time.Sub saturates after about 292 years, so far-away instants first
	// move the reference toward now by whole cycles.
	maxSeconds := int64(maxSpan / time.Second)
	if gap := now.Unix() - reference.Unix(); gap > maxSeconds || gap < -maxSeconds {
		hop := (maxSpan / length) * length
		reference = addTimes(reference, gap/int64(hop/time.Second), hop)
	}

	cycles, position := floorDivMod(now.Sub(reference), length)
	return reference.Add(time.Duration(cycles) * length), position
}

// addTimes returns t + n*d without overflowing a Duration.
func addTimes(t time.Time, n int64, d time.Duration) time.Time {
	sec := int64(d / time.Second)
	nsec := int64(d % time.Second)
	return time.Unix(t.Unix()+n*sec, int64(t.Nanosecond())+n*nsec).In(t.Location())
}

// floorDivMod divides rounding toward negative infinity; the remainder has the sign of d.
func floorDivMod(n, d time.Duration) (int64, time.Duration) {
	q := int64(n / d)
	r := n % d
	if r != 0 && (r < 0) != (d < 0) {
		q--
		r += d
	}
	return q, r
}
