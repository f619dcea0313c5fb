package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSnapshotVersion = errors.New("snapshot version must be positive")
	ErrInvalidDayOfWeek       = errors.New("day of week must be between 0 and 7")
)

// SpendingSnapshot is one transaction captured in one snapshot version.
// Dimension values are copied by value when the snapshot is created, so
// later dimension edits never alter history. Rows are append-only and
// immutable except for the is_latest flag flip when a newer version lands.
type SpendingSnapshot struct {
	SnapshotID      int64     `gorm:"primaryKey;autoIncrement" json:"snapshot_id"`
	SnapshotVersion int64     `gorm:"not null;index;uniqueIndex:ux_snapshot_version_src" json:"snapshot_version"`
	SnapshotDate    time.Time `gorm:"type:date;not null" json:"snapshot_date"`
	SnapshotBatchID string    `gorm:"type:varchar(100);not null" json:"snapshot_batch_id"`
	IsLatest        bool      `gorm:"not null;index" json:"is_latest"`

	// Lineage back to the SRC landing row and the STG fact.
	SrcID         int64 `gorm:"not null;uniqueIndex:ux_snapshot_version_src" json:"src_id"`
	StgSpendingID int64 `gorm:"not null" json:"stg_spending_id"`

	PersonID        int64 `gorm:"not null" json:"person_id"`
	CategoryID      int64 `gorm:"not null" json:"category_id"`
	LocationID      int64 `gorm:"not null" json:"location_id"`
	PaymentMethodID int64 `gorm:"not null" json:"payment_method_id"`

	// Dimension values frozen at snapshot time.
	PersonName        string `gorm:"type:varchar(100);not null;index" json:"person_name"`
	CategoryName      string `gorm:"type:varchar(100);not null;index" json:"category_name"`
	CategoryGroup     string `gorm:"type:varchar(50)" json:"category_group"`
	LocationName      string `gorm:"type:varchar(150);not null" json:"location_name"`
	LocationType      string `gorm:"type:varchar(50)" json:"location_type"`
	PaymentMethodName string `gorm:"type:varchar(100);not null" json:"payment_method_name"`
	PaymentType       string `gorm:"type:varchar(50)" json:"payment_type"`

	SpendingDate      time.Time `gorm:"type:date;not null;index" json:"spending_date"`
	SpendingYear      int       `gorm:"not null" json:"spending_year"`
	SpendingMonth     int       `gorm:"not null" json:"spending_month"`
	SpendingQuarter   int       `gorm:"not null" json:"spending_quarter"`
	SpendingDayOfWeek int       `gorm:"not null" json:"spending_day_of_week"`

	AmountCleaned    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount_cleaned"`
	CurrencyCode     string          `gorm:"type:varchar(3);not null" json:"currency_code"`
	Description      string          `gorm:"type:text" json:"description"`
	DataQualityScore int             `gorm:"not null" json:"data_quality_score"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (SpendingSnapshot) TableName() string {
	return "curated_spending_snapshots"
}

// Validate checks the snapshot row invariants before it is persisted.
func (s *SpendingSnapshot) Validate() error {
	if s.SnapshotVersion < 1 {
		return ErrInvalidSnapshotVersion
	}
	if s.AmountCleaned.IsNegative() {
		return ErrNegativeAmount
	}
	if s.SpendingDayOfWeek < 0 || s.SpendingDayOfWeek > 7 {
		return ErrInvalidDayOfWeek
	}
	if s.DataQualityScore < 0 || s.DataQualityScore > 100 {
		return ErrInvalidQualityScore
	}
	return nil
}

// IsWeekend reports whether the frozen day-of-week falls on Saturday or Sunday.
func (s *SpendingSnapshot) IsWeekend() bool {
	return s.SpendingDayOfWeek == 6 || s.SpendingDayOfWeek == 7
}

// WeekdayNumber maps a weekday name from the STG feed to the 1..7 encoding
// stored in snapshots (Monday=1 .. Sunday=7). Unknown names map to 0.
func WeekdayNumber(name string) int {
	switch name {
	case "Monday":
		return 1
	case "Tuesday":
		return 2
	case "Wednesday":
		return 3
	case "Thursday":
		return 4
	case "Friday":
		return 5
	case "Saturday":
		return 6
	case "Sunday":
		return 7
	default:
		return 0
	}
}

// NewSnapshotFromRow freezes a joined staging row into a snapshot record.
func NewSnapshotFromRow(row *CompleteSpendingRow, version int64, snapshotDate time.Time, batchID string) SpendingSnapshot {
	return SpendingSnapshot{
		SnapshotVersion:   version,
		SnapshotDate:      snapshotDate,
		SnapshotBatchID:   batchID,
		IsLatest:          true,
		SrcID:             row.SrcID,
		StgSpendingID:     row.SpendingID,
		PersonID:          row.PersonID,
		CategoryID:        row.CategoryID,
		LocationID:        row.LocationID,
		PaymentMethodID:   row.PaymentMethodID,
		PersonName:        row.PersonName,
		CategoryName:      row.CategoryName,
		CategoryGroup:     row.CategoryGroup,
		LocationName:      row.LocationName,
		LocationType:      row.LocationType,
		PaymentMethodName: row.PaymentMethodName,
		PaymentType:       row.PaymentType,
		SpendingDate:      row.SpendingDate,
		SpendingYear:      row.SpendingYear,
		SpendingMonth:     row.SpendingMonth,
		SpendingQuarter:   row.SpendingQuarter,
		SpendingDayOfWeek: WeekdayNumber(row.SpendingDayOfWeek),
		AmountCleaned:     row.AmountCleaned,
		CurrencyCode:      row.CurrencyCode,
		Description:       row.Description,
		DataQualityScore:  row.DataQualityScore,
	}
}

// SnapshotVersionSummary is the per-version rollup reported after snapshot
// runs and exposed through the read API.
type SnapshotVersionSummary struct {
	SnapshotVersion     int64           `json:"snapshot_version"`
	SnapshotDate        time.Time       `json:"snapshot_date"`
	IsLatest            bool            `json:"is_latest"`
	RecordCount         int64           `json:"record_count"`
	EarliestTransaction time.Time       `json:"earliest_transaction"`
	LatestTransaction   time.Time       `json:"latest_transaction"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
}
