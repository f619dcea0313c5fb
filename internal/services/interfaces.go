package services

import (
	"time"

	"spending-warehouse/internal/models"
)

// SnapshotResult describes one completed snapshot capture.
type SnapshotResult struct {
	Version      int64     `json:"snapshot_version"`
	RecordCount  int64     `json:"record_count"`
	BatchID      string    `json:"batch_id"`
	SnapshotDate time.Time `json:"snapshot_date"`
}

// AggregationResult describes one completed aggregate table rebuild.
type AggregationResult struct {
	Stage           string `json:"stage"`
	RowCount        int64  `json:"row_count"`
	SnapshotVersion int64  `json:"snapshot_version"`
}

// SnapshotServiceInterface defines snapshot operations
type SnapshotServiceInterface interface {
	CreateSnapshot(batchID string) (*SnapshotResult, error)
	VerifyLatestInvariant() error
	GetLatestVersion() (int64, error)
	GetVersionSummaries(limit int) ([]models.SnapshotVersionSummary, error)
}

// MonthlySummaryServiceInterface builds and serves the monthly spending summary table
type MonthlySummaryServiceInterface interface {
	Aggregate() (*AggregationResult, error)
	GetByPeriod(year, month int) ([]models.MonthlySpendingSummary, error)
}

// CategoryTrendServiceInterface builds and serves the category trend table
type CategoryTrendServiceInterface interface {
	Aggregate() (*AggregationResult, error)
	GetByPeriod(year, month int) ([]models.CategoryTrend, error)
}

// PersonAnalyticsServiceInterface builds and serves the person analytics table
type PersonAnalyticsServiceInterface interface {
	Aggregate() (*AggregationResult, error)
	GetByPeriod(year, month int) ([]models.PersonAnalytics, error)
}

// PaymentSummaryServiceInterface builds and serves the payment method summary table
type PaymentSummaryServiceInterface interface {
	Aggregate() (*AggregationResult, error)
	GetByPeriod(year, month int) ([]models.PaymentMethodSummary, error)
}

// EtlServiceInterface orchestrates the pipeline stages and the run log
type EtlServiceInterface interface {
	RunSnapshot() (*SnapshotResult, error)
	RunAggregations() ([]AggregationResult, error)
	RunFullPipeline() (*SnapshotResult, []AggregationResult, error)
	GetRecentRuns(limit int) ([]models.EtlRun, error)
	GetRunsByStage(stage string, limit int) ([]models.EtlRun, error)
}

// StagingSeederInterface loads synthetic data into the STG store
type StagingSeederInterface interface {
	SeedIfEmpty() (int64, error)
}

// MetricsRecorderInterface abstracts metrics collection
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
