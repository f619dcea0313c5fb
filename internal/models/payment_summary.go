package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethodSummary is the DST aggregate keyed by (year, month, payment
// method): usage counts, market-share percentages, the top three categories
// charged to the method, and MoM trends for both count and amount.
type PaymentMethodSummary struct {
	SummaryID int64 `gorm:"primaryKey;autoIncrement" json:"summary_id"`

	Year           int       `gorm:"not null;uniqueIndex:ux_payment_summary_key" json:"year"`
	Month          int       `gorm:"not null;uniqueIndex:ux_payment_summary_key" json:"month"`
	Quarter        int       `gorm:"not null" json:"quarter"`
	MonthStartDate time.Time `gorm:"type:date;not null" json:"month_start_date"`

	PaymentMethodName string `gorm:"type:varchar(100);not null;uniqueIndex:ux_payment_summary_key" json:"payment_method_name"`
	PaymentType       string `gorm:"type:varchar(50)" json:"payment_type"`

	TransactionCount     int64           `gorm:"not null" json:"transaction_count"`
	UniquePersonsCount   int64           `gorm:"not null" json:"unique_persons_count"`
	TotalAmount          decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	AvgTransactionAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"avg_transaction_amount"`
	MinTransactionAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"min_transaction_amount"`
	MaxTransactionAmount decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"max_transaction_amount"`

	// Market share within the calendar month.
	PercentOfTransactions *decimal.Decimal `gorm:"type:decimal(10,2)" json:"percent_of_transactions,omitempty"`
	PercentOfSpending     *decimal.Decimal `gorm:"type:decimal(10,2)" json:"percent_of_spending,omitempty"`

	TopCategory1       *string          `gorm:"column:top_category_1;type:varchar(100)" json:"top_category_1,omitempty"`
	TopCategory1Amount *decimal.Decimal `gorm:"column:top_category_1_amount;type:decimal(15,2)" json:"top_category_1_amount,omitempty"`
	TopCategory2       *string          `gorm:"column:top_category_2;type:varchar(100)" json:"top_category_2,omitempty"`
	TopCategory2Amount *decimal.Decimal `gorm:"column:top_category_2_amount;type:decimal(15,2)" json:"top_category_2_amount,omitempty"`
	TopCategory3       *string          `gorm:"column:top_category_3;type:varchar(100)" json:"top_category_3,omitempty"`
	TopCategory3Amount *decimal.Decimal `gorm:"column:top_category_3_amount;type:decimal(15,2)" json:"top_category_3_amount,omitempty"`

	PrevMonthTransactionCount   *int64           `json:"prev_month_transaction_count,omitempty"`
	MomTransactionChangePercent *decimal.Decimal `gorm:"type:decimal(10,2)" json:"mom_transaction_change_percent,omitempty"`
	PrevMonthAmount             *decimal.Decimal `gorm:"type:decimal(15,2)" json:"prev_month_amount,omitempty"`
	MomAmountChangePercent      *decimal.Decimal `gorm:"type:decimal(10,2)" json:"mom_amount_change_percent,omitempty"`

	PaymentMethodRank int `gorm:"not null" json:"payment_method_rank"`

	SnapshotVersionSource int64 `gorm:"not null;index" json:"snapshot_version_source"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (PaymentMethodSummary) TableName() string {
	return "dst_payment_method_summary"
}
