package repositories

import (
	"errors"
	"fmt"

	"spending-warehouse/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPaymentSummaryNotFound = errors.New("payment method summary not found")

var paymentSummaryKey = []clause.Column{
	{Name: "year"}, {Name: "month"}, {Name: "payment_method_name"},
}

var paymentSummaryUpdates = []string{
	"quarter", "month_start_date", "payment_type",
	"transaction_count", "unique_persons_count",
	"total_amount", "avg_transaction_amount", "min_transaction_amount", "max_transaction_amount",
	"percent_of_transactions", "percent_of_spending",
	"top_category_1", "top_category_1_amount",
	"top_category_2", "top_category_2_amount",
	"top_category_3", "top_category_3_amount",
	"prev_month_transaction_count", "mom_transaction_change_percent",
	"prev_month_amount", "mom_amount_change_percent",
	"payment_method_rank", "snapshot_version_source", "updated_at",
}

// paymentSummaryRepository implements PaymentSummaryRepositoryInterface
type paymentSummaryRepository struct {
	db *gorm.DB
}

// NewPaymentSummaryRepository creates a new payment method summary repository
func NewPaymentSummaryRepository(db *gorm.DB) PaymentSummaryRepositoryInterface {
	return &paymentSummaryRepository{
		db: db,
	}
}

// UpsertBatch writes the rows in one database transaction, updating any row
// whose natural key already exists.
func (r *paymentSummaryRepository) UpsertBatch(rows []models.PaymentMethodSummary) error {
	if len(rows) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   paymentSummaryKey,
			DoUpdates: clause.AssignmentColumns(paymentSummaryUpdates),
		}).Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to upsert payment method summaries: %w", err)
		}
		return nil
	})
}

// Insert creates a single row without conflict handling.
func (r *paymentSummaryRepository) Insert(row *models.PaymentMethodSummary) error {
	if err := r.db.Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAggregateKeyConflict
		}
		return fmt.Errorf("failed to insert payment method summary: %w", err)
	}
	return nil
}

// GetByKey retrieves the summary row for one payment method in one calendar month.
func (r *paymentSummaryRepository) GetByKey(year, month int, paymentMethodName string) (*models.PaymentMethodSummary, error) {
	var row models.PaymentMethodSummary
	if err := r.db.Where("year = ? AND month = ? AND payment_method_name = ?",
		year, month, paymentMethodName).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentSummaryNotFound
		}
		return nil, fmt.Errorf("failed to get payment method summary: %w", err)
	}
	return &row, nil
}

// GetByPeriod retrieves all summary rows for a calendar month, rank order first.
func (r *paymentSummaryRepository) GetByPeriod(year, month int) ([]models.PaymentMethodSummary, error) {
	var rows []models.PaymentMethodSummary
	if err := r.db.Where("year = ? AND month = ?", year, month).
		Order("payment_method_rank ASC, payment_method_name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get payment method summaries for period: %w", err)
	}
	return rows, nil
}

// CountForVersion returns how many rows were produced from a snapshot version.
func (r *paymentSummaryRepository) CountForVersion(version int64) (int64, error) {
	var count int64
	if err := r.db.Model(&models.PaymentMethodSummary{}).
		Where("snapshot_version_source = ?", version).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count payment method summaries for version: %w", err)
	}
	return count, nil
}
