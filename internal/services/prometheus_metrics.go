package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	snapshotRuns          *prometheus.CounterVec
	snapshotRefused       *prometheus.CounterVec
	snapshotDuration      prometheus.Histogram
	snapshotRecordCount   prometheus.Gauge
	latestSnapshotVersion prometheus.Gauge
	aggregationRuns       *prometheus.CounterVec
	aggregationDuration   *prometheus.HistogramVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		snapshotRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "snapshot_runs_total",
				Help: "Total number of snapshot capture runs",
			},
			[]string{"status"},
		),
		snapshotRefused: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "snapshot_refused_total",
				Help: "Total number of refused snapshot runs",
			},
			[]string{"reason"},
		),
		snapshotDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "snapshot_capture_duration_milliseconds",
				Help:    "Snapshot capture duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		snapshotRecordCount: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "snapshot_record_count",
				Help: "Record count of the most recent snapshot version",
			},
		),
		latestSnapshotVersion: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "snapshot_latest_version",
				Help: "Currently active snapshot version",
			},
		),
		aggregationRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aggregation_runs_total",
				Help: "Total number of aggregation runs by stage",
			},
			[]string{"stage", "status"},
		),
		aggregationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aggregation_duration_milliseconds",
				Help:    "Aggregation duration in milliseconds by stage",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"stage"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "snapshot.runs":
		if status := tags["status"]; status != "" {
			m.snapshotRuns.WithLabelValues(status).Inc()
		}
	case "snapshot.refused":
		if reason := tags["reason"]; reason != "" {
			m.snapshotRefused.WithLabelValues(reason).Inc()
		}
	case "aggregation.runs":
		stage := tags["stage"]
		status := tags["status"]
		if stage != "" && status != "" {
			m.aggregationRuns.WithLabelValues(stage, status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "snapshot.capture":
		m.snapshotDuration.Observe(float64(duration.Milliseconds()))
	case "aggregation.monthly_summary", "aggregation.category_trends",
		"aggregation.person_analytics", "aggregation.payment_summary":
		m.aggregationDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "snapshot.latest_version":
		m.latestSnapshotVersion.Set(value)
	case "snapshot.record_count":
		m.snapshotRecordCount.Set(value)
	}
}
