package handlers

import (
	stderrors "errors"
	"net/http"

	"spending-warehouse/internal/dto"
	"spending-warehouse/internal/errors"
	"spending-warehouse/internal/repositories"
	"spending-warehouse/internal/services"

	"github.com/labstack/echo/v4"
)

// EtlHandler exposes the pipeline stages and the run log over HTTP
type EtlHandler struct {
	etlService      services.EtlServiceInterface
	snapshotService services.SnapshotServiceInterface
}

// NewEtlHandler creates a new ETL handler
func NewEtlHandler(etlService services.EtlServiceInterface, snapshotService services.SnapshotServiceInterface) *EtlHandler {
	return &EtlHandler{
		etlService:      etlService,
		snapshotService: snapshotService,
	}
}

// RunSnapshot triggers a snapshot capture
// POST /api/v1/etl/snapshot
func (h *EtlHandler) RunSnapshot(c echo.Context) error {
	result, err := h.etlService.RunSnapshot()
	if err != nil {
		return h.sendEtlError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    result,
		Message: "Snapshot version created",
	})
}

// RunAggregations rebuilds all aggregate tables from the latest snapshot
// POST /api/v1/etl/aggregations
func (h *EtlHandler) RunAggregations(c echo.Context) error {
	results, err := h.etlService.RunAggregations()
	if err != nil {
		return h.sendEtlError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    results,
		Message: "Aggregations completed",
	})
}

// RunPipeline runs the snapshot stage followed by every aggregation stage
// POST /api/v1/etl/pipeline
func (h *EtlHandler) RunPipeline(c echo.Context) error {
	snapshot, aggregations, err := h.etlService.RunFullPipeline()
	if err != nil {
		return h.sendEtlError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: map[string]interface{}{
			"snapshot":     snapshot,
			"aggregations": aggregations,
		},
		Message: "Pipeline completed",
	})
}

// GetRuns returns the ETL run log, optionally filtered by stage
// GET /api/v1/etl/runs
func (h *EtlHandler) GetRuns(c echo.Context) error {
	var query dto.RunLogQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}
	if err := c.Validate(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	var runs interface{}
	var err error
	if query.Stage != "" {
		runs, err = h.etlService.GetRunsByStage(query.Stage, query.Limit)
	} else {
		runs, err = h.etlService.GetRecentRuns(query.Limit)
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: runs})
}

// GetSnapshotVersions returns per-version snapshot rollups, newest first
// GET /api/v1/snapshots/versions
func (h *EtlHandler) GetSnapshotVersions(c echo.Context) error {
	var query dto.VersionSummaryQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}
	if err := c.Validate(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	summaries, err := h.snapshotService.GetVersionSummaries(query.Limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: summaries})
}

// sendEtlError maps pipeline errors to their API error codes
func (h *EtlHandler) sendEtlError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrEmptySource):
		return SendError(c, errors.SnapshotEmptySource)
	case stderrors.Is(err, services.ErrLatestInvariantViolated):
		return SendError(c, errors.SnapshotInvariantViolated)
	case stderrors.Is(err, services.ErrNoSnapshotAvailable):
		return SendError(c, errors.AggregationNoSnapshot)
	case stderrors.Is(err, repositories.ErrAggregateKeyConflict):
		return SendError(c, errors.AggregationKeyConflict)
	default:
		return SendSystemError(c, err)
	}
}
