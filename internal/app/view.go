// internal/app/view.go
package app

import (
	"fmt"
	"time"

	"server_event_timer/internal/domain/cycle"
	"server_event_timer/internal/domain/region"
)

// Status is the headline state of a region.
type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusWaiting    Status = "WAITING"
	StatusUnanchored Status = "NO SCHEDULE"
)

// TimeLabels is one instant rendered three ways.
type TimeLabels struct {
	Server string
	Local  string
	UTC    string
}

// OccurrenceView is an upcoming active interval with rendered bounds.
type OccurrenceView struct {
	Occurrence cycle.Occurrence
	Start      TimeLabels
	End        TimeLabels
}

// View is everything the presentation layer shows for one region on one tick.
type View struct {
	Region       region.Profile
	At           time.Time
	State        cycle.State
	Status       Status
	Countdown    string // Empty when the region has no reference
	ServerOffset string
	LocalOffset  string
	Now          TimeLabels
	CurrentStart TimeLabels
	CurrentEnd   TimeLabels
	NextStart    TimeLabels
	Upcoming     []OccurrenceView
}

// Headline summarizes the view in one line.
func (v *View) Headline() string {
	switch v.Status {
	case StatusActive:
		return fmt.Sprintf("%s: %s, ends in %s (%s server time)", v.Region.ID, v.Status, v.Countdown, v.CurrentEnd.Server)
	case StatusWaiting:
		return fmt.Sprintf("%s: %s, starts in %s (%s server time)", v.Region.ID, v.Status, v.Countdown, v.NextStart.Server)
	default:
		return fmt.Sprintf("%s: %s, no reference time configured", v.Region.ID, v.Status)
	}
}
