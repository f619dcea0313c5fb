package repositories

import (
	"errors"
	"fmt"

	"spending-warehouse/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrAnalyticsNotFound = errors.New("person analytics not found")

var personAnalyticsKey = []clause.Column{
	{Name: "year"}, {Name: "month"}, {Name: "person_name"},
}

var personAnalyticsUpdates = []string{
	"quarter", "month_start_date",
	"total_spending", "transaction_count", "avg_transaction_amount", "median_transaction_amount",
	"top_category", "top_category_spending", "top_category_percent",
	"essential_spending", "discretionary_spending", "transport_spending",
	"healthcare_spending", "education_spending", "other_spending",
	"essential_percent", "discretionary_percent", "essential_to_discretionary_ratio",
	"unique_categories_count", "unique_locations_count", "unique_payment_methods_count",
	"weekday_spending", "weekend_spending", "weekend_spending_percent",
	"small_transactions_count", "medium_transactions_count",
	"large_transactions_count", "xlarge_transactions_count",
	"avg_daily_spending", "avg_weekly_spending", "days_with_spending", "spending_frequency_percent",
	"prev_month_total", "mom_absolute_change", "mom_percent_change",
	"prev_year_total", "yoy_absolute_change", "yoy_percent_change",
	"avg_quality_score", "snapshot_version_source", "updated_at",
}

// personAnalyticsRepository implements PersonAnalyticsRepositoryInterface
type personAnalyticsRepository struct {
	db *gorm.DB
}

// NewPersonAnalyticsRepository creates a new person analytics repository
func NewPersonAnalyticsRepository(db *gorm.DB) PersonAnalyticsRepositoryInterface {
	return &personAnalyticsRepository{
		db: db,
	}
}

// UpsertBatch writes the rows in one database transaction, updating any row
// whose natural key already exists.
func (r *personAnalyticsRepository) UpsertBatch(rows []models.PersonAnalytics) error {
	if len(rows) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   personAnalyticsKey,
			DoUpdates: clause.AssignmentColumns(personAnalyticsUpdates),
		}).Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to upsert person analytics: %w", err)
		}
		return nil
	})
}

// Insert creates a single row without conflict handling.
func (r *personAnalyticsRepository) Insert(row *models.PersonAnalytics) error {
	if err := r.db.Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAggregateKeyConflict
		}
		return fmt.Errorf("failed to insert person analytics: %w", err)
	}
	return nil
}

// GetByKey retrieves the analytics row for one person in one calendar month.
func (r *personAnalyticsRepository) GetByKey(year, month int, personName string) (*models.PersonAnalytics, error) {
	var row models.PersonAnalytics
	if err := r.db.Where("year = ? AND month = ? AND person_name = ?",
		year, month, personName).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalyticsNotFound
		}
		return nil, fmt.Errorf("failed to get person analytics: %w", err)
	}
	return &row, nil
}

// GetByPeriod retrieves all analytics rows for a calendar month.
func (r *personAnalyticsRepository) GetByPeriod(year, month int) ([]models.PersonAnalytics, error) {
	var rows []models.PersonAnalytics
	if err := r.db.Where("year = ? AND month = ?", year, month).
		Order("person_name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get person analytics for period: %w", err)
	}
	return rows, nil
}

// CountForVersion returns how many rows were produced from a snapshot version.
func (r *personAnalyticsRepository) CountForVersion(version int64) (int64, error) {
	var count int64
	if err := r.db.Model(&models.PersonAnalytics{}).
		Where("snapshot_version_source = ?", version).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count person analytics for version: %w", err)
	}
	return count, nil
}
