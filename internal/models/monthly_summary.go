package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySpendingSummary is the finest-grained DST aggregate: one row per
// (year, month, person, category, location). Prev-period and percent fields
// are nil when the prior period has no matching row.
type MonthlySpendingSummary struct {
	SummaryID int64 `gorm:"primaryKey;autoIncrement" json:"summary_id"`

	Year           int       `gorm:"not null;uniqueIndex:ux_monthly_summary_key" json:"year"`
	Month          int       `gorm:"not null;uniqueIndex:ux_monthly_summary_key" json:"month"`
	Quarter        int       `gorm:"not null" json:"quarter"`
	MonthStartDate time.Time `gorm:"type:date;not null" json:"month_start_date"`
	MonthEndDate   time.Time `gorm:"type:date;not null" json:"month_end_date"`

	PersonName    string `gorm:"type:varchar(100);not null;uniqueIndex:ux_monthly_summary_key" json:"person_name"`
	CategoryName  string `gorm:"type:varchar(100);not null;uniqueIndex:ux_monthly_summary_key" json:"category_name"`
	CategoryGroup string `gorm:"type:varchar(50)" json:"category_group"`
	LocationName  string `gorm:"type:varchar(150);not null;uniqueIndex:ux_monthly_summary_key" json:"location_name"`
	LocationType  string `gorm:"type:varchar(50)" json:"location_type"`

	TotalSpending        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_spending"`
	TransactionCount     int64           `gorm:"not null" json:"transaction_count"`
	AvgTransactionAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"avg_transaction_amount"`
	MinTransactionAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"min_transaction_amount"`
	MaxTransactionAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"max_transaction_amount"`

	PrevMonthSpending *decimal.Decimal `gorm:"type:decimal(15,2)" json:"prev_month_spending,omitempty"`
	MomAbsoluteChange decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"mom_absolute_change"`
	MomPercentChange  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"mom_percent_change,omitempty"`

	PrevYearSpending  *decimal.Decimal `gorm:"type:decimal(15,2)" json:"prev_year_spending,omitempty"`
	YoyAbsoluteChange decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"yoy_absolute_change"`
	YoyPercentChange  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"yoy_percent_change,omitempty"`

	AvgQualityScore       decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"avg_quality_score"`
	SnapshotVersionSource int64           `gorm:"not null;index" json:"snapshot_version_source"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (MonthlySpendingSummary) TableName() string {
	return "dst_monthly_spending_summary"
}
