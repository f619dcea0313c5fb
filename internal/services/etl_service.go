package services

import (
	"fmt"
	"log/slog"
	"time"

	"spending-warehouse/internal/models"
	"spending-warehouse/internal/repositories"
)

const defaultRunLogLimit = 50

type etlService struct {
	snapshotService  SnapshotServiceInterface
	monthlyService   MonthlySummaryServiceInterface
	trendService     CategoryTrendServiceInterface
	analyticsService PersonAnalyticsServiceInterface
	paymentService   PaymentSummaryServiceInterface
	runRepo          repositories.EtlRunRepositoryInterface
	batchIDPrefix    string
}

func NewEtlService(
	snapshotService SnapshotServiceInterface,
	monthlyService MonthlySummaryServiceInterface,
	trendService CategoryTrendServiceInterface,
	analyticsService PersonAnalyticsServiceInterface,
	paymentService PaymentSummaryServiceInterface,
	runRepo repositories.EtlRunRepositoryInterface,
	batchIDPrefix string,
) EtlServiceInterface {
	if batchIDPrefix == "" {
		batchIDPrefix = "CURATED_SNAPSHOT"
	}
	return &etlService{
		snapshotService:  snapshotService,
		monthlyService:   monthlyService,
		trendService:     trendService,
		analyticsService: analyticsService,
		paymentService:   paymentService,
		runRepo:          runRepo,
		batchIDPrefix:    batchIDPrefix,
	}
}

// newBatchID stamps a batch identifier shared by all run-log entries of one
// pipeline invocation.
func (s *etlService) newBatchID() string {
	return fmt.Sprintf("%s_%s", s.batchIDPrefix, time.Now().UTC().Format("20060102_150405"))
}

// RunSnapshot captures the next snapshot version and records the run.
func (s *etlService) RunSnapshot() (*SnapshotResult, error) {
	batchID := s.newBatchID()
	run := &models.EtlRun{
		Stage:     models.StageSnapshot,
		BatchID:   batchID,
		StartedAt: time.Now().UTC(),
	}
	if err := s.runRepo.Create(run); err != nil {
		return nil, fmt.Errorf("failed to record snapshot run: %w", err)
	}

	result, err := s.snapshotService.CreateSnapshot(batchID)
	if err != nil {
		run.Fail(err)
		s.updateRun(run)
		return nil, err
	}

	run.SnapshotVersion = &result.Version
	run.Complete(result.RecordCount)
	s.updateRun(run)

	return result, nil
}

// RunAggregations rebuilds all four aggregate tables from the latest
// snapshot, recording one run per stage. The first failing stage stops the
// run; stages completed before it stay committed.
func (s *etlService) RunAggregations() ([]AggregationResult, error) {
	version, err := s.snapshotService.GetLatestVersion()
	if err != nil {
		return nil, err
	}

	batchID := s.newBatchID()
	stages := []struct {
		name string
		run  func() (*AggregationResult, error)
	}{
		{models.StageMonthlySummary, s.monthlyService.Aggregate},
		{models.StageCategoryTrends, s.trendService.Aggregate},
		{models.StagePersonAnalytics, s.analyticsService.Aggregate},
		{models.StagePaymentSummary, s.paymentService.Aggregate},
	}

	results := make([]AggregationResult, 0, len(stages))
	for _, stage := range stages {
		run := &models.EtlRun{
			Stage:           stage.name,
			BatchID:         batchID,
			SnapshotVersion: &version,
			StartedAt:       time.Now().UTC(),
		}
		if err := s.runRepo.Create(run); err != nil {
			return results, fmt.Errorf("failed to record %s run: %w", stage.name, err)
		}

		result, err := stage.run()
		if err != nil {
			run.Fail(err)
			s.updateRun(run)
			return results, fmt.Errorf("stage %s failed: %w", stage.name, err)
		}

		run.Complete(result.RowCount)
		s.updateRun(run)
		results = append(results, *result)
	}

	return results, nil
}

// RunFullPipeline captures a snapshot and rebuilds every aggregate from it.
func (s *etlService) RunFullPipeline() (*SnapshotResult, []AggregationResult, error) {
	snapshot, err := s.RunSnapshot()
	if err != nil {
		return nil, nil, err
	}

	aggregations, err := s.RunAggregations()
	if err != nil {
		return snapshot, aggregations, err
	}

	return snapshot, aggregations, nil
}

// GetRecentRuns returns the most recent run-log entries across all stages.
func (s *etlService) GetRecentRuns(limit int) ([]models.EtlRun, error) {
	if limit <= 0 {
		limit = defaultRunLogLimit
	}
	return s.runRepo.GetRecent(limit)
}

// GetRunsByStage returns the most recent run-log entries for one stage.
func (s *etlService) GetRunsByStage(stage string, limit int) ([]models.EtlRun, error) {
	if limit <= 0 {
		limit = defaultRunLogLimit
	}
	return s.runRepo.GetByStage(stage, limit)
}

// updateRun persists the run outcome. The run log must never mask the
// pipeline result, so update failures are only logged.
func (s *etlService) updateRun(run *models.EtlRun) {
	if err := s.runRepo.Update(run); err != nil {
		slog.Error("failed to update etl run",
			"run_id", run.ID,
			"stage", run.Stage,
			"error", err)
	}
}
