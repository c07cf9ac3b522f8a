// Command milestones prints the fun birthday milestones that fall tomorrow.
//
// It is meant to run once a day from cron or a systemd timer:
//
//	milestones --birthdays birthdays.json
//	milestones --today 1998-06-30          # pretend it is another day
//	milestones --db ./data/people.db       # keep people in SQLite
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/mmynk/milestones/internal/calendar"
	"github.com/mmynk/milestones/internal/config"
	"github.com/mmynk/milestones/internal/loader"
	"github.com/mmynk/milestones/internal/metrics"
	"github.com/mmynk/milestones/internal/report"
	"github.com/mmynk/milestones/internal/service"
	"github.com/mmynk/milestones/internal/storage/sqlite"
	"github.com/mmynk/milestones/pkg/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		slog.Error("Run failed", "error", err)
		os.Exit(1)
	}
}

type options struct {
	birthdays string
	today     string
	db        string
	metrics   string
}

func parseFlags(args []string, cfg *config.Config) (options, error) {
	fs := flag.NewFlagSet("milestones", flag.ContinueOnError)
	opts := options{}
	fs.StringVar(&opts.birthdays, "birthdays", cfg.BirthdaysPath, "Path to JSON file with birthdays")
	fs.StringVar(&opts.today, "today", "", "Override today's date (YYYY-MM-DD) for testing")
	fs.StringVar(&opts.db, "db", cfg.DBPath, "Optional SQLite database to keep people in")
	fs.StringVar(&opts.metrics, "metrics", cfg.MetricsPath, "Optional Prometheus textfile to write run metrics to")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level, _ := config.ParseLevel(cfg.LogLevel)
	logger := logging.Setup(level)

	opts, err := parseFlags(args, cfg)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	today, err := referenceDate(opts.today, time.Now())
	if err != nil {
		return fmt.Errorf("--today: %w", err)
	}

	var source service.PeopleSource = service.FileSource{Path: opts.birthdays}
	if opts.db != "" {
		store, err := sqlite.New(ctx, opts.db)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer store.Close()
		logger.Debug("Storage initialized", "database", opts.db)

		source = service.StoreSource{Store: store, ImportPath: opts.birthdays, Logger: logger}
	}

	var m *metrics.Metrics
	if opts.metrics != "" {
		m = metrics.New()
	}

	notifications, err := service.NewMilestoneService(source, m, logger).Tomorrow(ctx, today)
	if err != nil {
		return err
	}

	if err := report.Write(stdout, notifications); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if m != nil {
		if err := m.WriteTextfile(opts.metrics); err != nil {
			return err
		}
	}
	return nil
}

// referenceDate returns the parsed override, or the local calendar day of now.
func referenceDate(override string, now time.Time) (time.Time, error) {
	if override == "" {
		return calendar.Truncate(now), nil
	}
	return loader.ParseDate(override)
}
