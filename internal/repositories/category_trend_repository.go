package repositories

import (
	"errors"
	"fmt"

	"spending-warehouse/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrTrendNotFound = errors.New("category trend not found")

var categoryTrendKey = []clause.Column{
	{Name: "year"}, {Name: "month"}, {Name: "category_name"},
}

var categoryTrendUpdates = []string{
	"quarter", "month_start_date", "category_group",
	"total_spending", "transaction_count", "unique_persons", "avg_transaction_amount",
	"prev_month_spending", "mom_absolute_change", "mom_percent_change", "mom_trend_direction",
	"prev_year_spending", "yoy_absolute_change", "yoy_percent_change", "yoy_trend_direction",
	"rolling_3month_avg", "rolling_6month_avg",
	"category_rank_current", "category_rank_prev_month", "rank_change",
	"percent_of_total_spending", "snapshot_version_source", "updated_at",
}

// categoryTrendRepository implements CategoryTrendRepositoryInterface
type categoryTrendRepository struct {
	db *gorm.DB
}

// NewCategoryTrendRepository creates a new category trend repository
func NewCategoryTrendRepository(db *gorm.DB) CategoryTrendRepositoryInterface {
	return &categoryTrendRepository{
		db: db,
	}
}

// UpsertBatch writes the rows in one database transaction, updating any row
// whose natural key already exists.
func (r *categoryTrendRepository) UpsertBatch(rows []models.CategoryTrend) error {
	if len(rows) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   categoryTrendKey,
			DoUpdates: clause.AssignmentColumns(categoryTrendUpdates),
		}).Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to upsert category trends: %w", err)
		}
		return nil
	})
}

// Insert creates a single row without conflict handling.
func (r *categoryTrendRepository) Insert(row *models.CategoryTrend) error {
	if err := r.db.Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAggregateKeyConflict
		}
		return fmt.Errorf("failed to insert category trend: %w", err)
	}
	return nil
}

// GetByKey retrieves the trend row for one category in one calendar month.
func (r *categoryTrendRepository) GetByKey(year, month int, categoryName string) (*models.CategoryTrend, error) {
	var row models.CategoryTrend
	if err := r.db.Where("year = ? AND month = ? AND category_name = ?",
		year, month, categoryName).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrendNotFound
		}
		return nil, fmt.Errorf("failed to get category trend: %w", err)
	}
	return &row, nil
}

// GetByPeriod retrieves all trend rows for a calendar month, rank order first.
func (r *categoryTrendRepository) GetByPeriod(year, month int) ([]models.CategoryTrend, error) {
	var rows []models.CategoryTrend
	if err := r.db.Where("year = ? AND month = ?", year, month).
		Order("category_rank_current ASC, category_name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get category trends for period: %w", err)
	}
	return rows, nil
}

// CountForVersion returns how many rows were produced from a snapshot version.
func (r *categoryTrendRepository) CountForVersion(version int64) (int64, error) {
	var count int64
	if err := r.db.Model(&models.CategoryTrend{}).
		Where("snapshot_version_source = ?", version).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count category trends for version: %w", err)
	}
	return count, nil
}
