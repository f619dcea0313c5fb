package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trend direction buckets derived from the MoM/YoY percent change.
const (
	TrendIncreasing = "INCREASING"
	TrendDecreasing = "DECREASING"
	TrendStable     = "STABLE"
	TrendNoData     = "NO_DATA"
)

// CategoryTrend is the DST aggregate keyed by (year, month, category). On top
// of the shared MoM/YoY math it carries rolling averages and a dense rank of
// categories by total spending within the month.
type CategoryTrend struct {
	TrendID int64 `gorm:"primaryKey;autoIncrement" json:"trend_id"`

	Year           int       `gorm:"not null;uniqueIndex:ux_category_trend_key" json:"year"`
	Month          int       `gorm:"not null;uniqueIndex:ux_category_trend_key" json:"month"`
	Quarter        int       `gorm:"not null" json:"quarter"`
	MonthStartDate time.Time `gorm:"type:date;not null" json:"month_start_date"`

	CategoryName  string `gorm:"type:varchar(100);not null;uniqueIndex:ux_category_trend_key" json:"category_name"`
	CategoryGroup string `gorm:"type:varchar(50)" json:"category_group"`

	TotalSpending        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_spending"`
	TransactionCount     int64           `gorm:"not null" json:"transaction_count"`
	UniquePersons        int64           `gorm:"not null" json:"unique_persons"`
	AvgTransactionAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"avg_transaction_amount"`

	PrevMonthSpending *decimal.Decimal `gorm:"type:decimal(15,2)" json:"prev_month_spending,omitempty"`
	MomAbsoluteChange decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"mom_absolute_change"`
	MomPercentChange  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"mom_percent_change,omitempty"`
	MomTrendDirection string           `gorm:"type:varchar(20);not null" json:"mom_trend_direction"`

	PrevYearSpending  *decimal.Decimal `gorm:"type:decimal(15,2)" json:"prev_year_spending,omitempty"`
	YoyAbsoluteChange decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"yoy_absolute_change"`
	YoyPercentChange  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"yoy_percent_change,omitempty"`
	YoyTrendDirection string           `gorm:"type:varchar(20);not null" json:"yoy_trend_direction"`

	// Rolling averages over the trailing 3 and 6 calendar months including
	// the current one; shorter histories average over what exists.
	Rolling3MonthAvg decimal.Decimal `gorm:"column:rolling_3month_avg;type:decimal(15,2);not null" json:"rolling_3month_avg"`
	Rolling6MonthAvg decimal.Decimal `gorm:"column:rolling_6month_avg;type:decimal(15,2);not null" json:"rolling_6month_avg"`

	CategoryRankCurrent   int  `gorm:"not null" json:"category_rank_current"`
	CategoryRankPrevMonth *int `json:"category_rank_prev_month,omitempty"`
	RankChange            int  `gorm:"not null" json:"rank_change"`

	PercentOfTotalSpending *decimal.Decimal `gorm:"type:decimal(10,2)" json:"percent_of_total_spending,omitempty"`

	SnapshotVersionSource int64 `gorm:"not null;index" json:"snapshot_version_source"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (CategoryTrend) TableName() string {
	return "dst_category_trends"
}
