// Package selection tracks which region the user is looking at.
//
// It plays the role of an addressable location: the initial value comes from
// configuration, later values arrive as lines on an input stream, and the
// canonical identifier is stored back after every change.
package selection

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"

	"server_event_timer/internal/domain/region"

	"github.com/sirupsen/logrus"
)

// Selector holds the current region. It is safe for concurrent use.
type Selector struct {
	mu        sync.RWMutex
	regions   region.Repository
	current   region.ID
	listeners []func(region.ID)
	logger    *logrus.Entry
}

// NewSelector resolves initial against regions; unknown values select the fallback.
func NewSelector(regions region.Repository, initial string, logger *logrus.Entry) *Selector {
	s := &Selector{
		regions: regions,
		current: regions.Resolve(initial),
		logger:  logger,
	}
	if initial != "" && region.Normalize(initial) != s.current {
		logger.WithFields(logrus.Fields{
			"requested": initial,
			"selected":  s.current,
		}).Warn("Unknown region requested, using fallback")
	}
	return s
}

// Current returns the canonical ID of the selected region.
func (s *Selector) Current() region.ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// OnChange registers fn to be called with the new ID after every change.
func (s *Selector) OnChange(fn func(region.ID)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Set selects the region named by raw and returns the canonical ID now selected.
// Listeners run only when the selection actually changes.
func (s *Selector) Set(raw string) region.ID {
	id := s.regions.Resolve(raw)

	s.mu.Lock()
	changed := id != s.current
	s.current = id
	listeners := append([]func(region.ID){}, s.listeners...)
	s.mu.Unlock()

	logCtx := s.logger.WithFields(logrus.Fields{"requested": raw, "selected": id})
	if region.Normalize(raw) != id {
		logCtx.Warn("Unknown region requested, using fallback")
	}
	if !changed {
		logCtx.Debug("Region selection unchanged")
		return id
	}

	logCtx.Info("Region selection changed")
	for _, fn := range listeners {
		fn(id)
	}
	return id
}

// Watch reads one selection per line from r until EOF or until ctx is done.
// Blank lines are ignored.
func (s *Selector) Watch(ctx context.Context, r io.Reader) error {
	lines := make(chan string)
	errs := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errs <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errs:
					return err
				default:
					return nil
				}
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			s.Set(line)
		}
	}
}
