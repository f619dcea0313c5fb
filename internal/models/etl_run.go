package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ETL stages recorded in the run log.
const (
	StageSnapshot        = "curated_snapshot"
	StageMonthlySummary  = "dst_monthly_summary"
	StageCategoryTrends  = "dst_category_trends"
	StagePersonAnalytics = "dst_person_analytics"
	StagePaymentSummary  = "dst_payment_summary"
)

// Run outcomes. A run is binary: it either fully applied or fully rolled back.
const (
	RunStatusRunning   = "running"
	RunStatusSucceeded = "succeeded"
	RunStatusFailed    = "failed"
)

// EtlRun is one entry in the warehouse run log: which stage ran, under which
// batch ID, what it touched and how it ended.
type EtlRun struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Stage           string     `gorm:"type:varchar(50);not null;index" json:"stage"`
	BatchID         string     `gorm:"type:varchar(100);not null;index" json:"batch_id"`
	Status          string     `gorm:"type:varchar(20);not null;index" json:"status"`
	SnapshotVersion *int64     `json:"snapshot_version,omitempty"`
	RecordsAffected int64      `gorm:"not null;default:0" json:"records_affected"`
	ErrorMessage    string     `gorm:"type:text" json:"error_message,omitempty"`
	StartedAt       time.Time  `gorm:"not null;index" json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	DurationMs      int64      `gorm:"not null;default:0" json:"duration_ms"`
}

func (EtlRun) TableName() string {
	return "etl_runs"
}

// BeforeCreate hook for EtlRun
func (r *EtlRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now().UTC()
	}
	if r.Status == "" {
		r.Status = RunStatusRunning
	}
	return nil
}

// Complete marks the run as succeeded and stamps its duration.
func (r *EtlRun) Complete(recordsAffected int64) {
	now := time.Now().UTC()
	r.Status = RunStatusSucceeded
	r.RecordsAffected = recordsAffected
	r.CompletedAt = &now
	r.DurationMs = now.Sub(r.StartedAt).Milliseconds()
}

// Fail marks the run as failed with the terminal error.
func (r *EtlRun) Fail(err error) {
	now := time.Now().UTC()
	r.Status = RunStatusFailed
	if err != nil {
		r.ErrorMessage = err.Error()
	}
	r.CompletedAt = &now
	r.DurationMs = now.Sub(r.StartedAt).Milliseconds()
}
