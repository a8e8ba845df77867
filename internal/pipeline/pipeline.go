// Package pipeline orchestrates the one-shot fetch → filter → flatten →
// export run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/couchcryptid/ransomwatch-pull/internal/domain"
	"github.com/couchcryptid/ransomwatch-pull/internal/observability"
	"github.com/jonboulle/clockwork"
)

// Fetcher retrieves the raw victim records from the upstream API.
type Fetcher interface {
	RecentVictims(ctx context.Context) ([]domain.Record, error)
}

// Exporter writes flattened rows to a CSV file at path.
type Exporter interface {
	WriteRows(path string, rows []domain.ExportRow) error
}

// Sink publishes flattened rows downstream after the CSV export.
type Sink interface {
	PublishRows(ctx context.Context, rows []domain.ExportRow) error
}

// Options are the per-run knobs supplied by the CLI.
type Options struct {
	Days    int    // lookback window in days from the current UTC instant
	OutDir  string // output directory, created if missing
	OutName string // explicit output filename; empty selects auto-naming
	Verbose bool   // print cutoff and fetch count to stdout
}

// Result summarizes a completed run.
type Result struct {
	Cutoff  time.Time
	Fetched int
	Written int
	Path    string
}

// Pipeline wires the fetch, filter, and export stages for a single run.
type Pipeline struct {
	fetcher  Fetcher
	exporter Exporter
	sink     Sink // nil when Kafka publishing is disabled
	logger   *slog.Logger
	metrics  *observability.Metrics
	clock    clockwork.Clock
	stdout   io.Writer
}

// New creates a Pipeline. Pass a nil sink to disable downstream publishing.
func New(f Fetcher, e Exporter, s Sink, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock, stdout io.Writer) *Pipeline {
	return &Pipeline{
		fetcher:  f,
		exporter: e,
		sink:     s,
		logger:   logger,
		metrics:  metrics,
		clock:    clock,
		stdout:   stdout,
	}
}

// Run executes one export. A fetch failure aborts before any file is
// created; record-level failures are absorbed into the filter statistics
// and never surfaced.
func (p *Pipeline) Run(ctx context.Context, opts Options) (Result, error) {
	now := p.clock.Now().UTC()
	cutoff := now.Add(-time.Duration(opts.Days) * 24 * time.Hour)

	if opts.Verbose {
		fmt.Fprintf(p.stdout, "Cutoff (UTC): %s\n", cutoff.Format(time.RFC3339))
	}

	records, err := p.fetcher.RecentVictims(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("fetch recent victims: %w", err)
	}
	if opts.Verbose {
		fmt.Fprintf(p.stdout, "Total records fetched: %d\n", len(records))
	}

	kept, stats := domain.FilterSortRecent(records, cutoff)
	p.metrics.RecordsExcluded.WithLabelValues(observability.ReasonNonUS).Add(float64(stats.NonUS))
	p.metrics.RecordsExcluded.WithLabelValues(observability.ReasonUnparsableDate).Add(float64(stats.UnparsableDate))
	p.metrics.RecordsExcluded.WithLabelValues(observability.ReasonBeforeCutoff).Add(float64(stats.BeforeCutoff))
	p.logger.Debug("filtered records",
		"fetched", len(records),
		"kept", len(kept),
		"non_us", stats.NonUS,
		"unparsable_date", stats.UnparsableDate,
		"before_cutoff", stats.BeforeCutoff,
	)

	rows := make([]domain.ExportRow, len(kept))
	for i := range kept {
		rows[i] = domain.Flatten(kept[i])
	}

	path := domain.OutputPath(opts.OutDir, opts.OutName, p.clock.Now())

	exportStart := time.Now()
	if err := p.exporter.WriteRows(path, rows); err != nil {
		return Result{}, fmt.Errorf("write export: %w", err)
	}
	p.metrics.ExportDuration.Observe(time.Since(exportStart).Seconds())
	p.metrics.RecordsExported.Add(float64(len(rows)))

	if p.sink != nil {
		if err := p.sink.PublishRows(ctx, rows); err != nil {
			return Result{}, fmt.Errorf("publish to sink: %w", err)
		}
		p.metrics.RecordsPublished.Add(float64(len(rows)))
	}

	fmt.Fprintf(p.stdout, "Wrote %d records to %s\n", len(rows), path)

	return Result{
		Cutoff:  cutoff,
		Fetched: len(records),
		Written: len(rows),
		Path:    path,
	}, nil
}
