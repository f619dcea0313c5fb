package repositories

import (
	"errors"
	"fmt"

	"spending-warehouse/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrAggregateKeyConflict is returned when a plain insert hits an
	// existing aggregate key. Re-aggregation must go through UpsertBatch.
	ErrAggregateKeyConflict = errors.New("aggregate row already exists for key")

	ErrSummaryNotFound = errors.New("monthly summary not found")
)

// monthlySummaryKey is the natural key of dst_monthly_spending_summary.
var monthlySummaryKey = []clause.Column{
	{Name: "year"}, {Name: "month"},
	{Name: "person_name"}, {Name: "category_name"}, {Name: "location_name"},
}

// monthlySummaryUpdates lists the columns refreshed on conflict. created_at
// stays from the first write so re-runs do not rewrite history.
var monthlySummaryUpdates = []string{
	"quarter", "month_start_date", "month_end_date",
	"category_group", "location_type",
	"total_spending", "transaction_count",
	"avg_transaction_amount", "min_transaction_amount", "max_transaction_amount",
	"prev_month_spending", "mom_absolute_change", "mom_percent_change",
	"prev_year_spending", "yoy_absolute_change", "yoy_percent_change",
	"avg_quality_score", "snapshot_version_source", "updated_at",
}

// monthlySummaryRepository implements MonthlySummaryRepositoryInterface
type monthlySummaryRepository struct {
	db *gorm.DB
}

// NewMonthlySummaryRepository creates a new monthly summary repository
func NewMonthlySummaryRepository(db *gorm.DB) MonthlySummaryRepositoryInterface {
	return &monthlySummaryRepository{
		db: db,
	}
}

// UpsertBatch writes the rows in one database transaction, updating any row
// whose natural key already exists.
func (r *monthlySummaryRepository) UpsertBatch(rows []models.MonthlySpendingSummary) error {
	if len(rows) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   monthlySummaryKey,
			DoUpdates: clause.AssignmentColumns(monthlySummaryUpdates),
		}).Create(&rows).Error; err != nil {
			return fmt.Errorf("failed to upsert monthly summaries: %w", err)
		}
		return nil
	})
}

// Insert creates a single row without conflict handling.
func (r *monthlySummaryRepository) Insert(row *models.MonthlySpendingSummary) error {
	if err := r.db.Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAggregateKeyConflict
		}
		return fmt.Errorf("failed to insert monthly summary: %w", err)
	}
	return nil
}

// GetByKey retrieves the summary row for a full natural key.
func (r *monthlySummaryRepository) GetByKey(year, month int, personName, categoryName, locationName string) (*models.MonthlySpendingSummary, error) {
	var row models.MonthlySpendingSummary
	if err := r.db.Where(
		"year = ? AND month = ? AND person_name = ? AND category_name = ? AND location_name = ?",
		year, month, personName, categoryName, locationName,
	).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSummaryNotFound
		}
		return nil, fmt.Errorf("failed to get monthly summary: %w", err)
	}
	return &row, nil
}

// GetByPeriod retrieves all summary rows for a calendar month.
func (r *monthlySummaryRepository) GetByPeriod(year, month int) ([]models.MonthlySpendingSummary, error) {
	var rows []models.MonthlySpendingSummary
	if err := r.db.Where("year = ? AND month = ?", year, month).
		Order("person_name ASC, category_name ASC, location_name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get monthly summaries for period: %w", err)
	}
	return rows, nil
}

// CountForVersion returns how many rows were produced from a snapshot version.
func (r *monthlySummaryRepository) CountForVersion(version int64) (int64, error) {
	var count int64
	if err := r.db.Model(&models.MonthlySpendingSummary{}).
		Where("snapshot_version_source = ?", version).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count monthly summaries for version: %w", err)
	}
	return count, nil
}
