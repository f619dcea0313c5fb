package repositories

import (
	"fmt"
	"time"

	"spending-warehouse/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const snapshotBatchSize = 500

// snapshotRepository implements SnapshotRepositoryInterface
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *gorm.DB) SnapshotRepositoryInterface {
	return &snapshotRepository{
		db: db,
	}
}

// MaxVersion returns the highest snapshot version ever created, 0 when the
// snapshot table is empty.
func (r *snapshotRepository) MaxVersion() (int64, error) {
	var max int64
	if err := r.db.Model(&models.SpendingSnapshot{}).
		Select("COALESCE(MAX(snapshot_version), 0)").
		Scan(&max).Error; err != nil {
		return 0, fmt.Errorf("failed to get max snapshot version: %w", err)
	}
	return max, nil
}

// CaptureVersion creates the next snapshot version in a single database
// transaction: derive version as max+1, retire every is_latest row, read the
// joined staging rows and freeze them as the new latest version. Either the
// whole version lands or nothing changes.
func (r *snapshotRepository) CaptureVersion(snapshotDate time.Time, batchID string) (int64, int64, error) {
	var version int64
	var recordCount int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.SpendingSnapshot{}).
			Select("COALESCE(MAX(snapshot_version), 0)").
			Scan(&version).Error; err != nil {
			return fmt.Errorf("failed to get max snapshot version: %w", err)
		}
		version++

		if err := tx.Model(&models.SpendingSnapshot{}).
			Where("is_latest = ?", true).
			Update("is_latest", false).Error; err != nil {
			return fmt.Errorf("failed to retire previous snapshot version: %w", err)
		}

		var rows []models.CompleteSpendingRow
		if err := tx.Raw(completeRowsSQL).Scan(&rows).Error; err != nil {
			return fmt.Errorf("failed to read staging rows: %w", err)
		}

		snapshots := make([]models.SpendingSnapshot, 0, len(rows))
		for i := range rows {
			snapshot := models.NewSnapshotFromRow(&rows[i], version, snapshotDate, batchID)
			if err := snapshot.Validate(); err != nil {
				return fmt.Errorf("invalid snapshot row for src_id %d: %w", rows[i].SrcID, err)
			}
			snapshots = append(snapshots, snapshot)
		}

		if len(snapshots) > 0 {
			if err := tx.CreateInBatches(&snapshots, snapshotBatchSize).Error; err != nil {
				return fmt.Errorf("failed to insert snapshot version %d: %w", version, err)
			}
		}
		recordCount = int64(len(snapshots))
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return version, recordCount, nil
}

// GetLatest retrieves every row of the current latest snapshot version.
func (r *snapshotRepository) GetLatest() ([]models.SpendingSnapshot, error) {
	var snapshots []models.SpendingSnapshot
	if err := r.db.Where("is_latest = ?", true).
		Order("spending_date ASC, src_id ASC").
		Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	return snapshots, nil
}

// GetByVersion retrieves every row of a specific snapshot version.
func (r *snapshotRepository) GetByVersion(version int64) ([]models.SpendingSnapshot, error) {
	var snapshots []models.SpendingSnapshot
	if err := r.db.Where("snapshot_version = ?", version).
		Order("spending_date ASC, src_id ASC").
		Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to get snapshot version %d: %w", version, err)
	}
	return snapshots, nil
}

// LatestVersion returns the version number currently flagged is_latest,
// 0 when no snapshot exists.
func (r *snapshotRepository) LatestVersion() (int64, error) {
	var version int64
	if err := r.db.Model(&models.SpendingSnapshot{}).
		Select("COALESCE(MAX(snapshot_version), 0)").
		Where("is_latest = ?", true).
		Scan(&version).Error; err != nil {
		return 0, fmt.Errorf("failed to get latest snapshot version: %w", err)
	}
	return version, nil
}

// CountLatestVersions returns how many distinct versions carry is_latest.
// Anything other than 1 (or 0 on an empty table) is an invariant violation.
func (r *snapshotRepository) CountLatestVersions() (int64, error) {
	var count int64
	if err := r.db.Model(&models.SpendingSnapshot{}).
		Where("is_latest = ?", true).
		Distinct("snapshot_version").
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count latest snapshot versions: %w", err)
	}
	return count, nil
}

// VersionSummaries returns per-version rollups, newest first. Date bounds are
// read as plain columns rather than MIN/MAX aggregates; sqlite loses the
// column type on aggregate expressions and hands back strings.
func (r *snapshotRepository) VersionSummaries(limit int) ([]models.SnapshotVersionSummary, error) {
	type versionRollup struct {
		SnapshotVersion int64
		IsLatest        bool
		RecordCount     int64
		TotalAmount     decimal.Decimal
	}

	var rollups []versionRollup
	if err := r.db.Model(&models.SpendingSnapshot{}).
		Select("snapshot_version, SUM(CASE WHEN is_latest THEN 1 ELSE 0 END) > 0 as is_latest, COUNT(*) as record_count, SUM(amount_cleaned) as total_amount").
		Group("snapshot_version").
		Order("snapshot_version DESC").
		Limit(limit).
		Scan(&rollups).Error; err != nil {
		return nil, fmt.Errorf("failed to get snapshot version summaries: %w", err)
	}

	summaries := make([]models.SnapshotVersionSummary, 0, len(rollups))
	for _, rollup := range rollups {
		var earliest, latest models.SpendingSnapshot
		if err := r.db.Where("snapshot_version = ?", rollup.SnapshotVersion).
			Order("spending_date ASC").First(&earliest).Error; err != nil {
			return nil, fmt.Errorf("failed to get earliest transaction for version %d: %w", rollup.SnapshotVersion, err)
		}
		if err := r.db.Where("snapshot_version = ?", rollup.SnapshotVersion).
			Order("spending_date DESC").First(&latest).Error; err != nil {
			return nil, fmt.Errorf("failed to get latest transaction for version %d: %w", rollup.SnapshotVersion, err)
		}

		summaries = append(summaries, models.SnapshotVersionSummary{
			SnapshotVersion:     rollup.SnapshotVersion,
			SnapshotDate:        earliest.SnapshotDate,
			IsLatest:            rollup.IsLatest,
			RecordCount:         rollup.RecordCount,
			EarliestTransaction: earliest.SpendingDate,
			LatestTransaction:   latest.SpendingDate,
			TotalAmount:         rollup.TotalAmount,
		})
	}
	return summaries, nil
}
