// Package scheduler runs the periodic expiry sweep: overdue loans are
// force-returned, lapsed queue holds dropped and stale visit sessions
// closed, all against a single observation of the clock per tick.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"clubhub/internal/pkg/clock"
	"clubhub/internal/pkg/config"
	"clubhub/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

type Sweeper struct {
	lending commands.LendingCommands
	visits  commands.VisitCommands
	clock   clock.Clock
	cron    *cron.Cron
	cfg     config.SweepConfig
}

func NewSweeper(
	lending commands.LendingCommands,
	visits commands.VisitCommands,
	clk clock.Clock,
	cfg config.SweepConfig,
) *Sweeper {
	return &Sweeper{
		lending: lending,
		visits:  visits,
		clock:   clk,
		cfg:     cfg,
	}
}

func (s *Sweeper) Start() error {
	c := cron.New(cron.WithChain(
		// A slow tick must finish before the next one starts; overlapping
		// sweeps would race on the same overdue records.
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	spec := fmt.Sprintf("@every %s", s.cfg.Interval)
	if _, err := c.AddFunc(spec, func() {
		s.Sweep(context.Background())
	}); err != nil {
		return fmt.Errorf("failed to schedule sweep: %w", err)
	}

	c.Start()
	s.cron = c
	slog.Info("expiry sweeper started", "interval", s.cfg.Interval.String())
	return nil
}

func (s *Sweeper) Stop() {
	if s.cron == nil {
		return
	}
	ctx := s.cron.Stop()
	// Let an in-flight tick drain before shutdown proceeds.
	select {
	case <-ctx.Done():
	case <-time.After(10 * time.Second):
		slog.Warn("expiry sweeper stop timed out")
	}
}

// Sweep runs one pass. All three phases see the same now, so a loan and
// the hold it promotes are judged against a single instant. Failures are
// logged and left for the next tick.
func (s *Sweeper) Sweep(ctx context.Context) {
	now := s.clock.Now()

	returned, err := s.lending.AutoReturnOverdue(ctx, now)
	if err != nil {
		slog.Error("overdue loan sweep failed", "error", err.Error())
	} else if returned > 0 {
		slog.Info("overdue loans auto-returned", "count", returned)
	}

	expired, err := s.lending.ExpireLapsedHolds(ctx, now)
	if err != nil {
		slog.Error("lapsed hold sweep failed", "error", err.Error())
	} else if expired > 0 {
		slog.Info("lapsed holds expired", "count", expired)
	}

	closed, err := s.visits.ForceCloseStale(ctx, now)
	if err != nil {
		slog.Error("stale visit sweep failed", "error", err.Error())
	} else if closed > 0 {
		slog.Info("stale visit sessions closed", "count", closed)
	}
}
