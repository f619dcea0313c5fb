package services

import (
	"errors"
	"testing"
	"time"

	"spending-warehouse/internal/models"
	"spending-warehouse/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

// noopMetrics satisfies MetricsRecorderInterface for tests that do not assert
// on metrics.
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}

// SnapshotServiceTestSuite defines the test suite for SnapshotService
type SnapshotServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockStagingRepo  *repository_mocks.MockStagingRepositoryInterface
	mockSnapshotRepo *repository_mocks.MockSnapshotRepositoryInterface
	service          SnapshotServiceInterface
}

// SetupTest runs before each test
func (s *SnapshotServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStagingRepo = repository_mocks.NewMockStagingRepositoryInterface(s.ctrl)
	s.mockSnapshotRepo = repository_mocks.NewMockSnapshotRepositoryInterface(s.ctrl)
	s.service = NewSnapshotService(s.mockStagingRepo, s.mockSnapshotRepo, noopMetrics{})
}

// TearDownTest runs after each test
func (s *SnapshotServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestSnapshotServiceSuite runs the test suite
func TestSnapshotServiceSuite(t *testing.T) {
	suite.Run(t, new(SnapshotServiceTestSuite))
}

func (s *SnapshotServiceTestSuite) TestCreateSnapshot_Success() {
	s.mockStagingRepo.EXPECT().CountFacts().Return(int64(120), nil)
	s.mockSnapshotRepo.EXPECT().
		CaptureVersion(gomock.Any(), "CURATED_SNAPSHOT_20250301_120000").
		Return(int64(4), int64(120), nil)
	s.mockSnapshotRepo.EXPECT().CountLatestVersions().Return(int64(1), nil)

	result, err := s.service.CreateSnapshot("CURATED_SNAPSHOT_20250301_120000")
	s.NoError(err)
	s.Equal(int64(4), result.Version)
	s.Equal(int64(120), result.RecordCount)
	s.Equal("CURATED_SNAPSHOT_20250301_120000", result.BatchID)
}

func (s *SnapshotServiceTestSuite) TestCreateSnapshot_EmptySourceFailsClosed() {
	s.mockStagingRepo.EXPECT().CountFacts().Return(int64(0), nil)

	result, err := s.service.CreateSnapshot("CURATED_SNAPSHOT_20250301_120000")
	s.ErrorIs(err, ErrEmptySource)
	s.Nil(result)
}

func (s *SnapshotServiceTestSuite) TestCreateSnapshot_CaptureError() {
	s.mockStagingRepo.EXPECT().CountFacts().Return(int64(10), nil)
	s.mockSnapshotRepo.EXPECT().
		CaptureVersion(gomock.Any(), gomock.Any()).
		Return(int64(0), int64(0), errors.New("connection reset"))

	result, err := s.service.CreateSnapshot("CURATED_SNAPSHOT_20250301_120000")
	s.Error(err)
	s.Nil(result)
}

func (s *SnapshotServiceTestSuite) TestCreateSnapshot_InvariantViolation() {
	s.mockStagingRepo.EXPECT().CountFacts().Return(int64(10), nil)
	s.mockSnapshotRepo.EXPECT().
		CaptureVersion(gomock.Any(), gomock.Any()).
		Return(int64(2), int64(10), nil)
	s.mockSnapshotRepo.EXPECT().CountLatestVersions().Return(int64(2), nil)

	result, err := s.service.CreateSnapshot("CURATED_SNAPSHOT_20250301_120000")
	s.ErrorIs(err, ErrLatestInvariantViolated)
	s.Nil(result)
}

func (s *SnapshotServiceTestSuite) TestVerifyLatestInvariant() {
	s.mockSnapshotRepo.EXPECT().CountLatestVersions().Return(int64(1), nil)
	s.NoError(s.service.VerifyLatestInvariant())

	// Zero latest versions is legal on an empty store
	s.mockSnapshotRepo.EXPECT().CountLatestVersions().Return(int64(0), nil)
	s.NoError(s.service.VerifyLatestInvariant())

	s.mockSnapshotRepo.EXPECT().CountLatestVersions().Return(int64(2), nil)
	s.ErrorIs(s.service.VerifyLatestInvariant(), ErrLatestInvariantViolated)
}

func (s *SnapshotServiceTestSuite) TestGetLatestVersion() {
	s.mockSnapshotRepo.EXPECT().LatestVersion().Return(int64(7), nil)

	version, err := s.service.GetLatestVersion()
	s.NoError(err)
	s.Equal(int64(7), version)
}

func (s *SnapshotServiceTestSuite) TestGetLatestVersion_NoSnapshot() {
	s.mockSnapshotRepo.EXPECT().LatestVersion().Return(int64(0), nil)

	_, err := s.service.GetLatestVersion()
	s.ErrorIs(err, ErrNoSnapshotAvailable)
}

func (s *SnapshotServiceTestSuite) TestGetVersionSummaries_DefaultLimit() {
	summaries := []models.SnapshotVersionSummary{{SnapshotVersion: 3, IsLatest: true}}
	s.mockSnapshotRepo.EXPECT().VersionSummaries(20).Return(summaries, nil)

	got, err := s.service.GetVersionSummaries(0)
	s.NoError(err)
	s.Len(got, 1)
}
