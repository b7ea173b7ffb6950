package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	"github.com/SscSPs/car_insurance_app/internal/core/services"
	"github.com/SscSPs/car_insurance_app/internal/jobs/expiry"
	"github.com/spf13/cobra"
)

var scanDate string

var errBadScanDate = errors.New("--date must be a calendar date in YYYY-MM-DD form")

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Log expiries for one day immediately",
	Long: `Runs a single expiry scan for --date (default: today in TIMEZONE),
ignoring the midnight window the scheduled worker waits for. Safe to run
more than once; already logged policies are skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(cmd.Context())
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanDate, "date", "", "run date (YYYY-MM-DD)")
	rootCmd.AddCommand(scanCmd)
}

// resolveScanDate parses raw, falling back to today's date in loc.
func resolveScanDate(raw string, now time.Time, loc *time.Location) (time.Time, error) {
	if raw == "" {
		return domain.DateOf(now.In(loc)), nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return time.Time{}, errBadScanDate
	}
	return d, nil
}

func runScan(ctx context.Context) error {
	runDate, err := resolveScanDate(scanDate, time.Now(), cfg.Location)
	if err != nil {
		return err
	}

	repos, closeRepos, err := openRepositories(ctx, cfg, logger, false)
	if err != nil {
		return err
	}
	defer closeRepos()

	container := services.NewServiceContainer(cfg, repos)
	scanner := expiry.NewScanner(container.Expiry, logger,
		expiry.WithLocation(cfg.Location),
		expiry.WithRetry(cfg.ExpiryScanMaxRetries, cfg.ExpiryScanRetryDelay),
	)

	created, err := scanner.RunOn(ctx, runDate)
	if err != nil {
		return fmt.Errorf("expiry scan failed: %w", err)
	}
	logger.Info("Expiry scan finished", slog.String("run_date", domain.FormatDate(runDate)), slog.Int("created", created))
	return nil
}
