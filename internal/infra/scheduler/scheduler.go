package scheduler

import (
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// TickScheduler runs one job on a cron spec and on demand. Runs never overlap.
type TickScheduler struct {
	cronEngine *cron.Cron
	spec       string
	job        func()
	logger     *logrus.Entry
	runMu      sync.Mutex
	entryID    cron.EntryID
	started    bool
}

func NewTickScheduler(
	spec string, // e.g. "@every 1s"
	job func(),
	logger *logrus.Entry,
) *TickScheduler {
	return &TickScheduler{
		cronEngine: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.Recover(cronLogger{logger})),
		),
		spec:   spec,
		job:    job,
		logger: logger,
	}
}

// Start registers the job and starts the cron engine.
func (s *TickScheduler) Start() error {
	s.logger.WithField("spec", s.spec).Info("Starting tick scheduler...")

	id, err := s.cronEngine.AddFunc(s.spec, s.run)
	if err != nil {
		return fmt.Errorf("could not add tick job: %w", err)
	}
	s.entryID = id
	s.started = true

	s.cronEngine.Start()
	s.logger.Info("Tick scheduler started.")
	return nil
}

// Trigger runs the job now, in the caller's goroutine.
func (s *TickScheduler) Trigger() {
	s.run()
}

// Next returns when the next tick is due, or the zero time before Start.
func (s *TickScheduler) Next() time.Time {
	if !s.started {
		return time.Time{}
	}
	return s.cronEngine.Entry(s.entryID).Next
}

// run serializes jobs and recovers panics, whether the job came from a tick or from Trigger.
func (s *TickScheduler) run() {
	s.runMu.Lock()
	defer s.runMu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			s.logger.WithFields(logrus.Fields{
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("Tick job panicked")
		}
	}()
	s.job()
}

// Stop stops the cron engine and waits for a running job to finish.
func (s *TickScheduler) Stop() {
	s.logger.Info("Stopping tick scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()
	s.logger.Info("Tick scheduler gracefully stopped.")
}

// cronLogger routes cron's own messages to logrus.
type cronLogger struct {
	entry *logrus.Entry
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(fields(keysAndValues)).Debug(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.entry.WithFields(fields(keysAndValues)).WithError(err).Error(msg)
}

func fields(keysAndValues []interface{}) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		f[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return f
}
