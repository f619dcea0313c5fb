package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction size bucket edges, in the snapshot currency.
var (
	SmallTransactionLimit  = decimal.NewFromInt(10)
	MediumTransactionLimit = decimal.NewFromInt(100)
	LargeTransactionLimit  = decimal.NewFromInt(500)
)

// PersonAnalytics is the DST aggregate keyed by (year, month, person). It is
// the behavioral table the insight views build recommendations from:
// essential/discretionary split, diversity counts, weekday/weekend and
// transaction-size splits, plus the shared MoM/YoY trend math.
type PersonAnalytics struct {
	AnalyticsID int64 `gorm:"primaryKey;autoIncrement" json:"analytics_id"`

	Year           int       `gorm:"not null;uniqueIndex:ux_person_analytics_key" json:"year"`
	Month          int       `gorm:"not null;uniqueIndex:ux_person_analytics_key" json:"month"`
	Quarter        int       `gorm:"not null" json:"quarter"`
	MonthStartDate time.Time `gorm:"type:date;not null" json:"month_start_date"`
	PersonName     string    `gorm:"type:varchar(100);not null;uniqueIndex:ux_person_analytics_key" json:"person_name"`

	TotalSpending           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_spending"`
	TransactionCount        int64           `gorm:"not null" json:"transaction_count"`
	AvgTransactionAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"avg_transaction_amount"`
	MedianTransactionAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"median_transaction_amount"`

	TopCategory         string           `gorm:"type:varchar(100)" json:"top_category"`
	TopCategorySpending decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"top_category_spending"`
	TopCategoryPercent  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"top_category_percent,omitempty"`

	EssentialSpending     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"essential_spending"`
	DiscretionarySpending decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"discretionary_spending"`
	TransportSpending     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"transport_spending"`
	HealthcareSpending    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"healthcare_spending"`
	EducationSpending     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"education_spending"`
	OtherSpending         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"other_spending"`

	EssentialPercent              *decimal.Decimal `gorm:"type:decimal(10,2)" json:"essential_percent,omitempty"`
	DiscretionaryPercent          *decimal.Decimal `gorm:"type:decimal(10,2)" json:"discretionary_percent,omitempty"`
	EssentialToDiscretionaryRatio *decimal.Decimal `gorm:"type:decimal(10,2)" json:"essential_to_discretionary_ratio,omitempty"`

	UniqueCategoriesCount     int64 `gorm:"not null" json:"unique_categories_count"`
	UniqueLocationsCount      int64 `gorm:"not null" json:"unique_locations_count"`
	UniquePaymentMethodsCount int64 `gorm:"not null" json:"unique_payment_methods_count"`

	WeekdaySpending        decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"weekday_spending"`
	WeekendSpending        decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"weekend_spending"`
	WeekendSpendingPercent *decimal.Decimal `gorm:"type:decimal(10,2)" json:"weekend_spending_percent,omitempty"`

	SmallTransactionsCount  int64 `gorm:"not null" json:"small_transactions_count"`
	MediumTransactionsCount int64 `gorm:"not null" json:"medium_transactions_count"`
	LargeTransactionsCount  int64 `gorm:"not null" json:"large_transactions_count"`
	XlargeTransactionsCount int64 `gorm:"not null" json:"xlarge_transactions_count"`

	AvgDailySpending         decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"avg_daily_spending"`
	AvgWeeklySpending        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"avg_weekly_spending"`
	DaysWithSpending         int64           `gorm:"not null" json:"days_with_spending"`
	SpendingFrequencyPercent decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"spending_frequency_percent"`

	PrevMonthTotal    *decimal.Decimal `gorm:"type:decimal(15,2)" json:"prev_month_total,omitempty"`
	MomAbsoluteChange decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"mom_absolute_change"`
	MomPercentChange  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"mom_percent_change,omitempty"`

	PrevYearTotal     *decimal.Decimal `gorm:"type:decimal(15,2)" json:"prev_year_total,omitempty"`
	YoyAbsoluteChange decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"yoy_absolute_change"`
	YoyPercentChange  *decimal.Decimal `gorm:"type:decimal(10,2)" json:"yoy_percent_change,omitempty"`

	AvgQualityScore       decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"avg_quality_score"`
	SnapshotVersionSource int64           `gorm:"not null;index" json:"snapshot_version_source"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (PersonAnalytics) TableName() string {
	return "dst_person_analytics"
}
