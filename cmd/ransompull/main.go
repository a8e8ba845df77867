// Command ransompull fetches recent ransomware.live victim reports, filters
// them to US victims discovered within a trailing lookback window, and
// writes a flat CSV export.
//
// Usage:
//
//	ransompull                      # writes ransom_live_pull_YYYYMMDD.csv in cwd
//	ransompull --days 7             # last 7 days
//	ransompull --out-dir ./exports  # write into ./exports
//	ransompull --out custom.csv     # explicit filename
//
// Environment configuration (see internal/config) covers the API endpoint,
// HTTP timeout, logging, optional Kafka publishing, and the optional
// Prometheus textfile snapshot. A .env file in the working directory is
// loaded if present.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/ransomwatch-pull/internal/adapter/csvexport"
	kafkaadapter "github.com/couchcryptid/ransomwatch-pull/internal/adapter/kafka"
	"github.com/couchcryptid/ransomwatch-pull/internal/adapter/ransomwarelive"
	"github.com/couchcryptid/ransomwatch-pull/internal/config"
	"github.com/couchcryptid/ransomwatch-pull/internal/observability"
	"github.com/couchcryptid/ransomwatch-pull/internal/pipeline"
)

func main() {
	var opts pipeline.Options
	flag.IntVar(&opts.Days, "days", 14, "lookback window in days")
	flag.StringVar(&opts.OutDir, "out-dir", ".", "output directory (default cwd)")
	flag.StringVar(&opts.OutName, "out", "", "explicit output filename (overrides auto-name)")
	flag.BoolVar(&opts.Verbose, "verbose", false, "print cutoff and fetch count")
	flag.BoolVar(&opts.Verbose, "v", false, "shorthand for --verbose")
	flag.Parse()

	if code := run(opts); code != 0 {
		os.Exit(code)
	}
}

func run(opts pipeline.Options) int {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := ransomwarelive.NewClient(cfg.APIBaseURL, cfg.UserAgent, cfg.HTTPTimeout, logger, metrics)
	exporter := csvexport.NewWriter(logger)

	var sink pipeline.Sink
	if cfg.KafkaEnabled {
		writer := kafkaadapter.NewWriter(cfg, logger)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		sink = writer
		logger.Info("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	p := pipeline.New(client, exporter, sink, logger, metrics, clockwork.NewRealClock(), os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := p.Run(ctx, opts)
	if err != nil {
		logger.Error("export run failed", "error", err)
		return 1
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("metrics textfile write error", "error", err, "path", cfg.MetricsFile)
		}
	}

	logger.Debug("export complete",
		"fetched", result.Fetched,
		"written", result.Written,
		"path", result.Path,
	)
	return 0
}
