package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"spending-warehouse/internal/models"
	"spending-warehouse/internal/repositories"
	"spending-warehouse/internal/services"
	"spending-warehouse/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// EtlHandlerSuite defines the test suite for EtlHandler
type EtlHandlerSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockEtlService      *service_mocks.MockEtlServiceInterface
	mockSnapshotService *service_mocks.MockSnapshotServiceInterface
	handler             *EtlHandler
	echo                *echo.Echo
}

// SetupTest runs before each test in the suite
func (s *EtlHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEtlService = service_mocks.NewMockEtlServiceInterface(s.ctrl)
	s.mockSnapshotService = service_mocks.NewMockSnapshotServiceInterface(s.ctrl)
	s.handler = NewEtlHandler(s.mockEtlService, s.mockSnapshotService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
}

// TearDownTest runs after each test in the suite
func (s *EtlHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestEtlHandlerSuite runs the test suite
func TestEtlHandlerSuite(t *testing.T) {
	suite.Run(t, new(EtlHandlerSuite))
}

func (s *EtlHandlerSuite) createContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return c, rec
}

func (s *EtlHandlerSuite) decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *EtlHandlerSuite) TestRunSnapshot_Success() {
	s.mockEtlService.EXPECT().RunSnapshot().Return(&services.SnapshotResult{
		Version:     4,
		RecordCount: 120,
		BatchID:     "CURATED_SNAPSHOT_20250301_120000",
	}, nil)

	c, rec := s.createContext(http.MethodPost, "/api/v1/etl/snapshot")
	s.NoError(s.handler.RunSnapshot(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Snapshot version created", resp.Message)

	data := resp.Data.(map[string]interface{})
	s.Equal(float64(4), data["snapshot_version"])
	s.Equal(float64(120), data["record_count"])
}

func (s *EtlHandlerSuite) TestRunSnapshot_EmptySource() {
	s.mockEtlService.EXPECT().RunSnapshot().Return(nil, services.ErrEmptySource)

	c, rec := s.createContext(http.MethodPost, "/api/v1/etl/snapshot")
	s.NoError(s.handler.RunSnapshot(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	resp := s.decodeError(rec)
	s.Equal("SNAPSHOT_001", resp.Error.Code)
	s.Equal("test-trace-id", resp.Error.TraceID)
}

func (s *EtlHandlerSuite) TestRunSnapshot_InvariantViolation() {
	s.mockEtlService.EXPECT().RunSnapshot().Return(nil, services.ErrLatestInvariantViolated)

	c, rec := s.createContext(http.MethodPost, "/api/v1/etl/snapshot")
	s.NoError(s.handler.RunSnapshot(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("SNAPSHOT_002", s.decodeError(rec).Error.Code)
}

func (s *EtlHandlerSuite) TestRunAggregations_Success() {
	results := []services.AggregationResult{
		{Stage: models.StageMonthlySummary, RowCount: 24, SnapshotVersion: 4},
		{Stage: models.StageCategoryTrends, RowCount: 60, SnapshotVersion: 4},
		{Stage: models.StagePersonAnalytics, RowCount: 16, SnapshotVersion: 4},
		{Stage: models.StagePaymentSummary, RowCount: 10, SnapshotVersion: 4},
	}
	s.mockEtlService.EXPECT().RunAggregations().Return(results, nil)

	c, rec := s.createContext(http.MethodPost, "/api/v1/etl/aggregations")
	s.NoError(s.handler.RunAggregations(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Data.([]interface{}), 4)
}

func (s *EtlHandlerSuite) TestRunAggregations_NoSnapshot() {
	s.mockEtlService.EXPECT().RunAggregations().Return(nil, services.ErrNoSnapshotAvailable)

	c, rec := s.createContext(http.MethodPost, "/api/v1/etl/aggregations")
	s.NoError(s.handler.RunAggregations(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("AGGREGATION_001", s.decodeError(rec).Error.Code)
}

func (s *EtlHandlerSuite) TestRunAggregations_KeyConflict() {
	s.mockEtlService.EXPECT().RunAggregations().Return(nil, repositories.ErrAggregateKeyConflict)

	c, rec := s.createContext(http.MethodPost, "/api/v1/etl/aggregations")
	s.NoError(s.handler.RunAggregations(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("AGGREGATION_002", s.decodeError(rec).Error.Code)
}

func (s *EtlHandlerSuite) TestRunPipeline_Success() {
	snapshot := &services.SnapshotResult{Version: 5, RecordCount: 200}
	aggregations := []services.AggregationResult{
		{Stage: models.StageMonthlySummary, RowCount: 24, SnapshotVersion: 5},
	}
	s.mockEtlService.EXPECT().RunFullPipeline().Return(snapshot, aggregations, nil)

	c, rec := s.createContext(http.MethodPost, "/api/v1/etl/pipeline")
	s.NoError(s.handler.RunPipeline(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	s.Contains(data, "snapshot")
	s.Contains(data, "aggregations")
}

func (s *EtlHandlerSuite) TestGetRuns_AllStages() {
	runs := []models.EtlRun{
		{Stage: models.StageSnapshot, Status: models.RunStatusSucceeded},
		{Stage: models.StageMonthlySummary, Status: models.RunStatusSucceeded},
	}
	s.mockEtlService.EXPECT().GetRecentRuns(0).Return(runs, nil)

	c, rec := s.createContext(http.MethodGet, "/api/v1/etl/runs")
	s.NoError(s.handler.GetRuns(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Data.([]interface{}), 2)
}

func (s *EtlHandlerSuite) TestGetRuns_StageFilter() {
	runs := []models.EtlRun{{Stage: models.StageMonthlySummary, Status: models.RunStatusFailed}}
	s.mockEtlService.EXPECT().GetRunsByStage(models.StageMonthlySummary, 5).Return(runs, nil)

	c, rec := s.createContext(http.MethodGet, "/api/v1/etl/runs?stage=dst_monthly_summary&limit=5")
	s.NoError(s.handler.GetRuns(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *EtlHandlerSuite) TestGetRuns_UnknownStage() {
	c, rec := s.createContext(http.MethodGet, "/api/v1/etl/runs?stage=warehouse_teardown")
	s.NoError(s.handler.GetRuns(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.decodeError(rec).Error.Code)
}

func (s *EtlHandlerSuite) TestGetRuns_LimitOutOfRange() {
	c, rec := s.createContext(http.MethodGet, "/api/v1/etl/runs?limit=9999")
	s.NoError(s.handler.GetRuns(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *EtlHandlerSuite) TestGetSnapshotVersions() {
	summaries := []models.SnapshotVersionSummary{
		{SnapshotVersion: 4, IsLatest: true, RecordCount: 120},
		{SnapshotVersion: 3, IsLatest: false, RecordCount: 110},
	}
	s.mockSnapshotService.EXPECT().GetVersionSummaries(10).Return(summaries, nil)

	c, rec := s.createContext(http.MethodGet, "/api/v1/snapshots/versions?limit=10")
	s.NoError(s.handler.GetSnapshotVersions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp SuccessResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Len(resp.Data.([]interface{}), 2)
}

func (s *EtlHandlerSuite) TestGetSnapshotVersions_LimitOutOfRange() {
	c, rec := s.createContext(http.MethodGet, "/api/v1/snapshots/versions?limit=1000")
	s.NoError(s.handler.GetSnapshotVersions(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}
