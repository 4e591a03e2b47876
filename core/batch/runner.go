// Package batch - Concurrent batch conversion
// Lines are converted in parallel; reports keep input order.
package batch

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"unitconv/core/engine"
	"unitconv/core/output"
	"unitconv/internal/logging"
)

// DefaultWorkers is used when a non-positive worker count is given
const DefaultWorkers = 4

// Runner converts many expressions with a shared engine
type Runner struct {
	engine  *engine.Engine
	workers int
}

// Stats summarizes a batch run
type Stats struct {
	Total     int64
	Converted int64
	Failed    int64
	Skipped   int64
	Duration  time.Duration
}

// NewRunner creates a runner
func NewRunner(e *engine.Engine, workers int) *Runner {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Runner{
		engine:  e,
		workers: workers,
	}
}

// Run converts every non-blank line. Blank lines and lines starting with
// "#" are skipped. A conversion failure is recorded in its report and does
// not stop the batch; only cancellation of ctx does.
func (r *Runner) Run(ctx context.Context, lines []string) ([]*output.Report, Stats, error) {
	start := time.Now()
	var stats Stats

	type job struct {
		slot int
		line string
	}
	var jobs []job
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			stats.Skipped++
			continue
		}
		jobs = append(jobs, job{slot: len(jobs), line: trimmed})
	}
	stats.Total = int64(len(jobs))

	reports := make([]*output.Report, len(jobs))
	var converted, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for _, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		j := j
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report := r.convert(j.line)
			if report.Failed() {
				failed.Add(1)
			} else {
				converted.Add(1)
			}
			reports[j.slot] = report
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	stats.Converted = converted.Load()
	stats.Failed = failed.Load()
	stats.Duration = time.Since(start)

	logging.Named("batch").Debug("batch complete",
		zap.Int64("total", stats.Total),
		zap.Int64("converted", stats.Converted),
		zap.Int64("failed", stats.Failed),
		zap.Int("workers", r.workers),
		zap.Duration("duration", stats.Duration))

	if err != nil {
		return nil, stats, err
	}
	return reports, stats, nil
}

func (r *Runner) convert(line string) *output.Report {
	outcome, err := r.engine.ConvertExpression(line)
	if outcome == nil {
		return output.NewReport(line, nil, nil, err)
	}
	return output.NewReport(line, outcome.Results, outcome.Warnings, err)
}
