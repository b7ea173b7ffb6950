// Package expiry runs the periodic policy expiry scan.
package expiry

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/apperrors"
	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	portssvc "github.com/SscSPs/car_insurance_app/internal/core/ports/services"
	"github.com/SscSPs/car_insurance_app/internal/platform/metrics"
)

// Retry defaults for a scan that fails on a transient store error.
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 30 * time.Second
)

// Scanner writes expiry log entries for policies that ended today. It only
// does work during the first hour of the day in its location, so it can be
// triggered far more often than daily.
type Scanner struct {
	detector   portssvc.ExpiryDetectorSvc
	logger     *slog.Logger
	clock      func() time.Time
	location   *time.Location
	maxRetries int
	retryDelay time.Duration
	metrics    *metrics.Metrics
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return func(s *Scanner) { s.clock = clock }
}

// WithLocation sets the timezone that defines the calendar day and the hour gate.
func WithLocation(loc *time.Location) Option {
	return func(s *Scanner) { s.location = loc }
}

// WithRetry sets how often and how long apart a transient failure is retried.
func WithRetry(maxRetries int, delay time.Duration) Option {
	return func(s *Scanner) {
		s.maxRetries = maxRetries
		s.retryDelay = delay
	}
}

// WithMetrics records scan outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Scanner) { s.metrics = m }
}

// NewScanner creates a Scanner around detector.
func NewScanner(detector portssvc.ExpiryDetectorSvc, logger *slog.Logger, opts ...Option) *Scanner {
	s := &Scanner{
		detector:   detector,
		logger:     logger,
		clock:      time.Now,
		location:   time.UTC,
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.metrics == nil {
		s.metrics = metrics.NewNop()
	}
	return s
}

// Eligible reports whether t falls in the 00:00-00:59 window.
func Eligible(t time.Time) bool {
	return t.Hour() == 0
}

// Run performs the scan for the current local date when inside the window
// and returns how many entries were written. Outside the window it returns 0
// without touching the store.
func (s *Scanner) Run(ctx context.Context) (int, error) {
	now := s.clock().In(s.location)
	if !Eligible(now) {
		s.metrics.ObserveExpiryScan(metrics.ScanOutcomeSkipped, 0, 0)
		s.logger.Debug("policy_expiry_scan_skipped", slog.Int("hour", now.Hour()))
		return 0, nil
	}
	return s.RunOn(ctx, domain.DateOf(now))
}

// RunOn performs the scan for runDate regardless of the hour.
func (s *Scanner) RunOn(ctx context.Context, runDate time.Time) (int, error) {
	started := s.clock()
	runDay := domain.FormatDate(runDate)

	total := 0
	var err error
	for attempt := 0; ; attempt++ {
		var created int
		created, err = s.detector.DetectAndLogExpired(ctx, runDate)
		total += created
		if err == nil || !errors.Is(err, apperrors.ErrTransient) || attempt >= s.maxRetries {
			break
		}

		s.logger.Warn("policy_expiry_scan_retry",
			slog.String("run_date", runDay),
			slog.Int("attempt", attempt+1),
			slog.Duration("delay", s.retryDelay),
			slog.String("error", err.Error()))

		timer := time.NewTimer(s.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			err = ctx.Err()
		case <-timer.C:
		}
		if ctx.Err() != nil {
			break
		}
	}

	finished := s.clock()
	elapsed := finished.Sub(started).Seconds()
	if err != nil {
		s.metrics.ObserveExpiryScan(metrics.ScanOutcomeFailed, elapsed, 0)
		s.logger.Error("policy_expiry_scan_failed",
			slog.String("run_date", runDay),
			slog.Int("created", total),
			slog.String("error", err.Error()))
		return total, err
	}

	s.metrics.ObserveExpiryScan(metrics.ScanOutcomeSuccess, elapsed, float64(finished.Unix()))
	s.logger.Info("policy_expiry_scan_done",
		slog.Int("created", total),
		slog.String("run_date", runDay))
	return total, nil
}
