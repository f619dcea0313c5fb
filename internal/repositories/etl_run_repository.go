package repositories

import (
	"errors"
	"fmt"

	"spending-warehouse/internal/models"

	"gorm.io/gorm"
)

var ErrRunNotFound = errors.New("etl run not found")

// etlRunRepository implements EtlRunRepositoryInterface
type etlRunRepository struct {
	db *gorm.DB
}

// NewEtlRunRepository creates a new ETL run log repository
func NewEtlRunRepository(db *gorm.DB) EtlRunRepositoryInterface {
	return &etlRunRepository{
		db: db,
	}
}

// Create records the start of a run.
func (r *etlRunRepository) Create(run *models.EtlRun) error {
	if err := r.db.Create(run).Error; err != nil {
		return fmt.Errorf("failed to create etl run: %w", err)
	}
	return nil
}

// Update persists the run outcome.
func (r *etlRunRepository) Update(run *models.EtlRun) error {
	result := r.db.Model(&models.EtlRun{}).
		Where("id = ?", run.ID).
		Updates(map[string]interface{}{
			"status":           run.Status,
			"snapshot_version": run.SnapshotVersion,
			"records_affected": run.RecordsAffected,
			"error_message":    run.ErrorMessage,
			"completed_at":     run.CompletedAt,
			"duration_ms":      run.DurationMs,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update etl run: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRunNotFound
	}
	return nil
}

// GetRecent retrieves the most recent runs across all stages.
func (r *etlRunRepository) GetRecent(limit int) ([]models.EtlRun, error) {
	var runs []models.EtlRun
	if err := r.db.Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent etl runs: %w", err)
	}
	return runs, nil
}

// GetByStage retrieves the most recent runs for one stage.
func (r *etlRunRepository) GetByStage(stage string, limit int) ([]models.EtlRun, error) {
	var runs []models.EtlRun
	if err := r.db.Where("stage = ?", stage).
		Order("started_at DESC").
		Limit(limit).
		Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to get etl runs for stage: %w", err)
	}
	return runs, nil
}
