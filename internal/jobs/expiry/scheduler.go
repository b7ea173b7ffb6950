package expiry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// JobName identifies the scan in the scheduler and in logs.
const JobName = "policy_expiry_scan"

// Scheduler triggers a Scanner on a fixed interval. A run still in progress
// when the next tick fires causes that tick to be skipped.
type Scheduler struct {
	scheduler gocron.Scheduler
	logger    *slog.Logger
	onFailure func(error)
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithFailureHook registers fn to be called with the error of every failed run.
func WithFailureHook(fn func(error)) SchedulerOption {
	return func(s *Scheduler) { s.onFailure = fn }
}

// NewScheduler registers scanner to run every interval, starting immediately.
// ctx is handed to each run and should be cancelled on shutdown.
// Failed runs are reported to gocron and logged as job failures.
func NewScheduler(ctx context.Context, scanner *Scanner, interval time.Duration, logger *slog.Logger, opts ...SchedulerOption) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("expiry scan interval must be positive, got %s", interval)
	}
	if logger == nil {
		logger = slog.Default()
	}

	sched := &Scheduler{logger: logger}
	for _, opt := range opts {
		opt(sched)
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(scanner.location))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() error {
			_, err := scanner.Run(ctx)
			return err
		}),
		gocron.WithName(JobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithEventListeners(gocron.AfterJobRunsWithError(sched.runFailed)),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("failed to register %s job: %w", JobName, err)
	}

	sched.scheduler = s
	return sched, nil
}

// runFailed is called by gocron after a run that returned an error.
func (s *Scheduler) runFailed(jobID uuid.UUID, jobName string, err error) {
	s.logger.Error("Scheduled job run failed",
		slog.String("job", jobName),
		slog.String("job_id", jobID.String()),
		slog.String("error", err.Error()))
	if s.onFailure != nil {
		s.onFailure(err)
	}
}

// Start begins scheduling. It does not block.
func (s *Scheduler) Start() {
	s.logger.Info("Starting expiry scan scheduler", slog.String("job", JobName))
	s.scheduler.Start()
}

// Shutdown stops scheduling and waits for a running scan to return.
func (s *Scheduler) Shutdown() error {
	s.logger.Info("Stopping expiry scan scheduler", slog.String("job", JobName))
	return s.scheduler.Shutdown()
}
