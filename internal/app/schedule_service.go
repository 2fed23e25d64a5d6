// internal/app/schedule_service.go
package app

import (
	"fmt"
	"time"

	"server_event_timer/internal/domain/cycle"
	"server_event_timer/internal/domain/region"
	"server_event_timer/internal/domain/servertime"

	"github.com/sirupsen/logrus"
)

// Formatter renders an instant as fixed-offset wall clock time.
type Formatter interface {
	Format(t time.Time, offsetHours int, tpl servertime.Template) string
}

// Options tune what a snapshot contains.
type Options struct {
	Timing           cycle.Timing
	Template         servertime.Template
	LocalOffsetHours int
	UpcomingCount    int
}

// ScheduleService turns the region table and the clock into views for the presentation layer.
type ScheduleService struct {
	regions   region.Repository
	clock     cycle.Clock
	formatter Formatter
	opts      Options
	logger    *logrus.Entry
}

func NewScheduleService(
	regions region.Repository,
	clock cycle.Clock,
	formatter Formatter, // nil selects servertime.Format
	opts Options,
	logger *logrus.Entry,
) *ScheduleService {
	if formatter == nil {
		formatter = servertime.FormatterFunc(servertime.Format)
	}
	if !opts.Timing.Valid() {
		opts.Timing = cycle.DefaultTiming
	}
	if opts.Template == "" {
		opts.Template = servertime.Template12h
	}
	return &ScheduleService{
		regions:   regions,
		clock:     clock,
		formatter: formatter,
		opts:      opts,
		logger:    logger,
	}
}

// Snapshot computes the view of one region at the current clock reading.
func (s *ScheduleService) Snapshot(id region.ID) (*View, error) {
	profile, err := s.regions.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get region: %w", err)
	}
	return s.build(profile, s.clock.Now()), nil
}

// SnapshotAll computes views of every region at one clock reading.
func (s *ScheduleService) SnapshotAll() []*View {
	now := s.clock.Now()
	profiles := s.regions.List()
	views := make([]*View, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, s.build(p, now))
	}
	return views
}

func (s *ScheduleService) build(profile region.Profile, now time.Time) *View {
	state := s.opts.Timing.ComputeState(profile, now)

	v := &View{
		Region:       profile,
		At:           now,
		State:        state,
		ServerOffset: servertime.OffsetLabel(profile.OffsetHours),
		LocalOffset:  servertime.OffsetLabel(s.opts.LocalOffsetHours),
		Now:          s.labels(now, profile.OffsetHours),
	}

	if !state.HasReference {
		v.Status = StatusUnanchored
		s.logger.WithField("region", profile.ID).Debug("Region has no reference instant")
		return v
	}

	v.Status = StatusWaiting
	if state.Active {
		v.Status = StatusActive
	}
	v.Countdown = servertime.Countdown(state.Remaining)
	v.CurrentStart = s.labels(state.CurrentStart, profile.OffsetHours)
	v.CurrentEnd = s.labels(state.CurrentEnd, profile.OffsetHours)
	v.NextStart = s.labels(state.NextStart, profile.OffsetHours)

	for o := range s.opts.Timing.Upcoming(profile, now, s.opts.UpcomingCount) {
		v.Upcoming = append(v.Upcoming, OccurrenceView{
			Occurrence: o,
			Start:      s.labels(o.Start, profile.OffsetHours),
			End:        s.labels(o.End, profile.OffsetHours),
		})
	}

	s.logger.WithFields(logrus.Fields{
		"region":    profile.ID,
		"status":    v.Status,
		"remaining": state.Remaining.Round(time.Second),
	}).Trace("Snapshot computed")
	return v
}

func (s *ScheduleService) labels(t time.Time, serverOffset int) TimeLabels {
	return TimeLabels{
		Server: s.formatter.Format(t, serverOffset, s.opts.Template),
		Local:  s.formatter.Format(t, s.opts.LocalOffsetHours, s.opts.Template),
		UTC:    s.formatter.Format(t, 0, s.opts.Template),
	}
}
