package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAmount      = errors.New("spending amount must be non-negative")
	ErrInvalidQualityScore = errors.New("data quality score must be between 0 and 100")
	ErrInvalidSpendingDate = errors.New("spending date is required")
)

// StgDimPerson is the normalized person dimension maintained by the STG stage.
type StgDimPerson struct {
	PersonID   int64  `gorm:"primaryKey;autoIncrement" json:"person_id"`
	PersonName string `gorm:"type:varchar(100);not null;uniqueIndex" json:"person_name"`
}

func (StgDimPerson) TableName() string {
	return "stg_dim_person"
}

// StgDimCategory is the normalized spending category dimension.
// CategoryGroup carries the coarse classification (Essential, Discretionary,
// Transport, Healthcare, Education, Other) assigned by the STG transform.
type StgDimCategory struct {
	CategoryID    int64  `gorm:"primaryKey;autoIncrement" json:"category_id"`
	CategoryName  string `gorm:"type:varchar(100);not null;uniqueIndex" json:"category_name"`
	CategoryGroup string `gorm:"type:varchar(50)" json:"category_group"`
}

func (StgDimCategory) TableName() string {
	return "stg_dim_category"
}

// StgDimLocation is the normalized location dimension.
type StgDimLocation struct {
	LocationID   int64  `gorm:"primaryKey;autoIncrement" json:"location_id"`
	LocationName string `gorm:"type:varchar(150);not null;uniqueIndex" json:"location_name"`
	LocationType string `gorm:"type:varchar(50)" json:"location_type"`
}

func (StgDimLocation) TableName() string {
	return "stg_dim_location"
}

// StgDimPaymentMethod is the normalized payment method dimension.
type StgDimPaymentMethod struct {
	PaymentMethodID   int64  `gorm:"primaryKey;autoIncrement" json:"payment_method_id"`
	PaymentMethodName string `gorm:"type:varchar(100);not null;uniqueIndex" json:"payment_method_name"`
	PaymentType       string `gorm:"type:varchar(50)" json:"payment_type"`
}

func (StgDimPaymentMethod) TableName() string {
	return "stg_dim_payment_method"
}

// StgFactSpending is one cleaned spending transaction in the normalized store.
// Rows are produced by the STG transform; the Snapshot Engine only reads them.
type StgFactSpending struct {
	SpendingID        int64           `gorm:"primaryKey;autoIncrement" json:"spending_id"`
	SrcID             int64           `gorm:"not null;index" json:"src_id"`
	PersonID          int64           `gorm:"not null;index" json:"person_id"`
	CategoryID        int64           `gorm:"not null;index" json:"category_id"`
	LocationID        int64           `gorm:"not null;index" json:"location_id"`
	PaymentMethodID   int64           `gorm:"not null;index" json:"payment_method_id"`
	SpendingDate      time.Time       `gorm:"type:date;not null;index" json:"spending_date"`
	SpendingYear      int             `gorm:"not null" json:"spending_year"`
	SpendingMonth     int             `gorm:"not null" json:"spending_month"`
	SpendingQuarter   int             `gorm:"not null" json:"spending_quarter"`
	SpendingDayOfWeek string          `gorm:"type:varchar(10)" json:"spending_day_of_week"`
	AmountCleaned     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount_cleaned"`
	CurrencyCode      string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency_code"`
	Description       string          `gorm:"type:text" json:"description"`
	DataQualityScore  int             `gorm:"not null;default:100" json:"data_quality_score"`
	CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
}

func (StgFactSpending) TableName() string {
	return "stg_fact_spending"
}

// Validate checks the fact row against the STG input contract.
func (f *StgFactSpending) Validate() error {
	if f.AmountCleaned.IsNegative() {
		return ErrNegativeAmount
	}
	if f.DataQualityScore < 0 || f.DataQualityScore > 100 {
		return ErrInvalidQualityScore
	}
	if f.SpendingDate.IsZero() {
		return ErrInvalidSpendingDate
	}
	return nil
}

// CompleteSpendingRow is a fact row joined to all four dimensions. It is the
// shape the Snapshot Engine copies: dimension values are resolved at read
// time and frozen into the snapshot.
type CompleteSpendingRow struct {
	SpendingID        int64           `json:"spending_id"`
	SrcID             int64           `json:"src_id"`
	PersonID          int64           `json:"person_id"`
	CategoryID        int64           `json:"category_id"`
	LocationID        int64           `json:"location_id"`
	PaymentMethodID   int64           `json:"payment_method_id"`
	PersonName        string          `json:"person_name"`
	CategoryName      string          `json:"category_name"`
	CategoryGroup     string          `json:"category_group"`
	LocationName      string          `json:"location_name"`
	LocationType      string          `json:"location_type"`
	PaymentMethodName string          `json:"payment_method_name"`
	PaymentType       string          `json:"payment_type"`
	SpendingDate      time.Time       `json:"spending_date"`
	SpendingYear      int             `json:"spending_year"`
	SpendingMonth     int             `json:"spending_month"`
	SpendingQuarter   int             `json:"spending_quarter"`
	SpendingDayOfWeek string          `json:"spending_day_of_week"`
	AmountCleaned     decimal.Decimal `json:"amount_cleaned"`
	CurrencyCode      string          `json:"currency_code"`
	Description       string          `json:"description"`
	DataQualityScore  int             `json:"data_quality_score"`
}
