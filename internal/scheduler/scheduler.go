// Package scheduler runs the periodic idle picker session sweep.
package scheduler

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// SessionSweeper disposes idle picker sessions and reports how many it removed.
type SessionSweeper interface {
	SweepIdle(ctx context.Context) int
}

// Config holds the scheduler configuration
type Config struct {
	// Schedule is a 5-field cron expression (e.g., "*/5 * * * *") or a descriptor such as "@every 1m"
	Schedule string
	// Timeout is the maximum duration of one sweep
	Timeout time.Duration
	// Enabled determines if the scheduler should run
	Enabled bool
}

// DefaultConfig returns the default scheduler configuration
func DefaultConfig() Config {
	return Config{
		Schedule: "*/5 * * * *", // Every five minutes
		Timeout:  30 * time.Second,
		Enabled:  true,
	}
}

// Scheduler manages the scheduled sweep job
type Scheduler struct {
	cron    *cron.Cron
	sweeper SessionSweeper
	config  Config
	logger  *slog.Logger
	entryID cron.EntryID
}

// New creates a new Scheduler instance
func New(cfg Config, sweeper SessionSweeper, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		sweeper: sweeper,
		config:  cfg,
		logger:  logger,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Enabled {
		s.logger.Info("Scheduler is disabled, skipping start")
		return nil
	}

	entryID, err := s.cron.AddFunc(withSeconds(s.config.Schedule), s.runSweepJob)
	if err != nil {
		return err
	}

	s.entryID = entryID
	s.cron.Start()

	s.logger.Info("Scheduler started",
		slog.String("schedule", s.config.Schedule),
		slog.Duration("timeout", s.config.Timeout),
	)

	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("Stopping scheduler...")
	return s.cron.Stop()
}

// RunNow triggers an immediate sweep
func (s *Scheduler) RunNow() {
	go s.runSweepJob()
}

// withSeconds converts a 5-field expression to the 6-field form the cron
// parser is configured with. Descriptors pass through unchanged.
func withSeconds(schedule string) string {
	schedule = strings.TrimSpace(schedule)
	if strings.HasPrefix(schedule, "@") {
		return schedule
	}
	return "0 " + schedule
}

func (s *Scheduler) runSweepJob() {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	startTime := time.Now()
	removed := s.sweeper.SweepIdle(ctx)

	s.logger.Debug("Sweep job completed",
		slog.Int("sessions_removed", removed),
		slog.Duration("duration", time.Since(startTime)),
	)
}

// GetNextRunTime returns the next scheduled run time
func (s *Scheduler) GetNextRunTime() time.Time {
	if s.entryID == 0 {
		return time.Time{}
	}
	entry := s.cron.Entry(s.entryID)
	return entry.Next
}

// IsRunning returns true if the scheduler is running
func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
