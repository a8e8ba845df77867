package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for one export run.
//
// The tool is a one-shot job, so metrics are not served over HTTP. Instead
// they can be snapshotted to a node-exporter textfile-collector file via
// WriteTextfile after the run completes.
type Metrics struct {
	registry *prometheus.Registry

	RecordsFetched   prometheus.Counter
	RecordsExported  prometheus.Counter
	RecordsExcluded  *prometheus.CounterVec // label: reason={non_us,unparsable_date,before_cutoff}
	RecordsPublished prometheus.Counter

	FetchDuration  prometheus.Histogram
	ExportDuration prometheus.Histogram
}

// Exclusion reason label values.
const (
	ReasonNonUS          = "non_us"
	ReasonUnparsableDate = "unparsable_date"
	ReasonBeforeCutoff   = "before_cutoff"
)

// NewMetrics creates all job metrics on a private registry. A private
// registry keeps repeated construction in tests collision-free and scopes
// the textfile snapshot to this job's metrics only.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RecordsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ransom_pull",
			Name:      "records_fetched_total",
			Help:      "Total raw records returned by the recent-victims endpoint.",
		}),
		RecordsExported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ransom_pull",
			Name:      "records_exported_total",
			Help:      "Total rows written to the CSV export.",
		}),
		RecordsExcluded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ransom_pull",
			Name:      "records_excluded_total",
			Help:      "Records excluded by the filter, by reason.",
		}, []string{"reason"}),
		RecordsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ransom_pull",
			Name:      "records_published_total",
			Help:      "Rows published to the Kafka sink topic.",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ransom_pull",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of the recent-victims API request.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		}),
		ExportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ransom_pull",
			Name:      "export_duration_seconds",
			Help:      "Duration of the CSV write.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
	}

	m.registry.MustRegister(
		m.RecordsFetched,
		m.RecordsExported,
		m.RecordsExcluded,
		m.RecordsPublished,
		m.FetchDuration,
		m.ExportDuration,
	)

	return m
}

// WriteTextfile snapshots the registry to path in the Prometheus text
// exposition format, atomically (write-then-rename), for pickup by the
// node-exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
