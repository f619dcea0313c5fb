package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"spending-warehouse/internal/models"
	"spending-warehouse/internal/repositories"
)

var (
	// ErrEmptySource means the STG store has no fact rows. The snapshot
	// stage fails closed rather than creating an empty version.
	ErrEmptySource = errors.New("staging store is empty")

	// ErrLatestInvariantViolated means the snapshot store holds more than
	// one version flagged as latest.
	ErrLatestInvariantViolated = errors.New("snapshot store has multiple latest versions")

	// ErrNoSnapshotAvailable means aggregation was requested before any
	// snapshot version exists.
	ErrNoSnapshotAvailable = errors.New("no snapshot available")
)

type snapshotService struct {
	stagingRepo  repositories.StagingRepositoryInterface
	snapshotRepo repositories.SnapshotRepositoryInterface
	metrics      MetricsRecorderInterface
}

func NewSnapshotService(
	stagingRepo repositories.StagingRepositoryInterface,
	snapshotRepo repositories.SnapshotRepositoryInterface,
	metrics MetricsRecorderInterface,
) SnapshotServiceInterface {
	return &snapshotService{
		stagingRepo:  stagingRepo,
		snapshotRepo: snapshotRepo,
		metrics:      metrics,
	}
}

// CreateSnapshot captures the next snapshot version from the STG store. The
// previous latest version is retired and the new version inserted in one
// atomic unit, so readers never observe zero or two latest versions.
func (s *snapshotService) CreateSnapshot(batchID string) (*SnapshotResult, error) {
	start := time.Now()

	factCount, err := s.stagingRepo.CountFacts()
	if err != nil {
		return nil, fmt.Errorf("failed to check staging store: %w", err)
	}
	if factCount == 0 {
		slog.Warn("snapshot refused, staging store is empty", "batch_id", batchID)
		s.metrics.IncrementCounter("snapshot.refused", map[string]string{"reason": "empty_source"})
		return nil, ErrEmptySource
	}

	snapshotDate := time.Now().UTC().Truncate(24 * time.Hour)
	version, recordCount, err := s.snapshotRepo.CaptureVersion(snapshotDate, batchID)
	if err != nil {
		slog.Error("snapshot capture failed",
			"batch_id", batchID,
			"error", err)
		s.metrics.IncrementCounter("snapshot.runs", map[string]string{"status": "failed"})
		return nil, fmt.Errorf("failed to capture snapshot: %w", err)
	}

	if err := s.VerifyLatestInvariant(); err != nil {
		return nil, err
	}

	slog.Info("snapshot version created",
		"snapshot_version", version,
		"record_count", recordCount,
		"batch_id", batchID,
		"duration_ms", time.Since(start).Milliseconds())

	s.metrics.IncrementCounter("snapshot.runs", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("snapshot.capture", time.Since(start))
	s.metrics.RecordGauge("snapshot.latest_version", float64(version), nil)
	s.metrics.RecordGauge("snapshot.record_count", float64(recordCount), nil)

	return &SnapshotResult{
		Version:      version,
		RecordCount:  recordCount,
		BatchID:      batchID,
		SnapshotDate: snapshotDate,
	}, nil
}

// VerifyLatestInvariant checks that at most one snapshot version is flagged
// as latest.
func (s *snapshotService) VerifyLatestInvariant() error {
	count, err := s.snapshotRepo.CountLatestVersions()
	if err != nil {
		return fmt.Errorf("failed to verify latest invariant: %w", err)
	}
	if count > 1 {
		slog.Error("latest invariant violated", "latest_version_count", count)
		return ErrLatestInvariantViolated
	}
	return nil
}

// GetLatestVersion returns the currently active snapshot version. It returns
// ErrNoSnapshotAvailable when no version exists yet.
func (s *snapshotService) GetLatestVersion() (int64, error) {
	version, err := s.snapshotRepo.LatestVersion()
	if err != nil {
		return 0, fmt.Errorf("failed to get latest version: %w", err)
	}
	if version == 0 {
		return 0, ErrNoSnapshotAvailable
	}
	return version, nil
}

// GetVersionSummaries returns per-version rollups, newest first.
func (s *snapshotService) GetVersionSummaries(limit int) ([]models.SnapshotVersionSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	summaries, err := s.snapshotRepo.VersionSummaries(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get version summaries: %w", err)
	}
	return summaries, nil
}
