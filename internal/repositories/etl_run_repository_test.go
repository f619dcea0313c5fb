package repositories

import (
	"errors"
	"testing"
	"time"

	"spending-warehouse/internal/database"
	"spending-warehouse/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// EtlRunRepositorySuite defines the test suite for EtlRunRepository
type EtlRunRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo EtlRunRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *EtlRunRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewEtlRunRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *EtlRunRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestEtlRunRepositorySuite runs the test suite
func TestEtlRunRepositorySuite(t *testing.T) {
	suite.Run(t, new(EtlRunRepositorySuite))
}

func (s *EtlRunRepositorySuite) TestCreate_SetsDefaults() {
	run := &models.EtlRun{
		Stage:   models.StageSnapshot,
		BatchID: "CURATED_SNAPSHOT_20250301_120000",
	}

	s.NoError(s.repo.Create(run))
	s.NotEqual(uuid.Nil, run.ID)
	s.Equal(models.RunStatusRunning, run.Status)
	s.NotZero(run.StartedAt)
}

func (s *EtlRunRepositorySuite) TestUpdate_RecordsOutcome() {
	run := &models.EtlRun{
		Stage:   models.StageSnapshot,
		BatchID: "CURATED_SNAPSHOT_20250301_120000",
	}
	s.NoError(s.repo.Create(run))

	version := int64(3)
	run.SnapshotVersion = &version
	run.Complete(500)
	s.NoError(s.repo.Update(run))

	stored, err := s.repo.GetRecent(1)
	s.NoError(err)
	s.Len(stored, 1)
	s.Equal(models.RunStatusSucceeded, stored[0].Status)
	s.Equal(int64(500), stored[0].RecordsAffected)
	s.NotNil(stored[0].SnapshotVersion)
	s.Equal(int64(3), *stored[0].SnapshotVersion)
	s.NotNil(stored[0].CompletedAt)
}

func (s *EtlRunRepositorySuite) TestUpdate_FailedRunKeepsError() {
	run := &models.EtlRun{
		Stage:   models.StageMonthlySummary,
		BatchID: "CURATED_SNAPSHOT_20250301_120000",
	}
	s.NoError(s.repo.Create(run))

	run.Fail(errors.New("no snapshot version available"))
	s.NoError(s.repo.Update(run))

	stored, err := s.repo.GetByStage(models.StageMonthlySummary, 5)
	s.NoError(err)
	s.Len(stored, 1)
	s.Equal(models.RunStatusFailed, stored[0].Status)
	s.Contains(stored[0].ErrorMessage, "no snapshot version")
}

func (s *EtlRunRepositorySuite) TestUpdate_UnknownRun() {
	run := &models.EtlRun{
		ID:        uuid.New(),
		Stage:     models.StageSnapshot,
		BatchID:   "CURATED_SNAPSHOT_20250301_120000",
		StartedAt: time.Now().UTC(),
	}
	run.Complete(1)

	err := s.repo.Update(run)
	s.ErrorIs(err, ErrRunNotFound)
}

func (s *EtlRunRepositorySuite) TestGetRecent_NewestFirst() {
	stages := []string{
		models.StageSnapshot,
		models.StageMonthlySummary,
		models.StageCategoryTrends,
	}
	base := time.Now().UTC().Add(-time.Hour)
	for i, stage := range stages {
		run := &models.EtlRun{
			Stage:     stage,
			BatchID:   "CURATED_SNAPSHOT_20250301_120000",
			StartedAt: base.Add(time.Duration(i) * time.Minute),
		}
		s.NoError(s.repo.Create(run))
	}

	runs, err := s.repo.GetRecent(2)
	s.NoError(err)
	s.Len(runs, 2)
	s.Equal(models.StageCategoryTrends, runs[0].Stage)
	s.Equal(models.StageMonthlySummary, runs[1].Stage)
}

func (s *EtlRunRepositorySuite) TestGetByStage_FiltersOtherStages() {
	for i := 0; i < 3; i++ {
		s.NoError(s.repo.Create(&models.EtlRun{
			Stage:   models.StageSnapshot,
			BatchID: "CURATED_SNAPSHOT_20250301_120000",
		}))
	}
	s.NoError(s.repo.Create(&models.EtlRun{
		Stage:   models.StagePaymentSummary,
		BatchID: "CURATED_SNAPSHOT_20250301_120000",
	}))

	runs, err := s.repo.GetByStage(models.StageSnapshot, 10)
	s.NoError(err)
	s.Len(runs, 3)
	for _, run := range runs {
		s.Equal(models.StageSnapshot, run.Stage)
	}
}
