package handlers

import (
	"net/http"

	"spending-warehouse/internal/dto"
	"spending-warehouse/internal/errors"
	"spending-warehouse/internal/services"

	"github.com/labstack/echo/v4"
)

// AggregatesHandler serves the four DST aggregate tables
type AggregatesHandler struct {
	monthlyService   services.MonthlySummaryServiceInterface
	trendService     services.CategoryTrendServiceInterface
	analyticsService services.PersonAnalyticsServiceInterface
	paymentService   services.PaymentSummaryServiceInterface
}

// NewAggregatesHandler creates a new aggregates handler
func NewAggregatesHandler(
	monthlyService services.MonthlySummaryServiceInterface,
	trendService services.CategoryTrendServiceInterface,
	analyticsService services.PersonAnalyticsServiceInterface,
	paymentService services.PaymentSummaryServiceInterface,
) *AggregatesHandler {
	return &AggregatesHandler{
		monthlyService:   monthlyService,
		trendService:     trendService,
		analyticsService: analyticsService,
		paymentService:   paymentService,
	}
}

// bindPeriod parses and validates the year/month query parameters
func bindPeriod(c echo.Context) (*dto.PeriodQuery, error) {
	var query dto.PeriodQuery
	if err := c.Bind(&query); err != nil {
		return nil, SendError(c, errors.ValidationInvalidFormat)
	}
	if err := c.Validate(&query); err != nil {
		return nil, SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails(err.Error()))
	}
	return &query, nil
}

// GetMonthlySummary returns the monthly spending summary for one month
// GET /api/v1/aggregates/monthly-summary
func (h *AggregatesHandler) GetMonthlySummary(c echo.Context) error {
	query, err := bindPeriod(c)
	if query == nil {
		return err
	}

	rows, err := h.monthlyService.GetByPeriod(query.Year, query.Month)
	if err != nil {
		return SendSystemError(c, err)
	}
	if len(rows) == 0 {
		return SendError(c, errors.AggregationPeriodNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: rows})
}

// GetCategoryTrends returns the category trend rows for one month
// GET /api/v1/aggregates/category-trends
func (h *AggregatesHandler) GetCategoryTrends(c echo.Context) error {
	query, err := bindPeriod(c)
	if query == nil {
		return err
	}

	rows, err := h.trendService.GetByPeriod(query.Year, query.Month)
	if err != nil {
		return SendSystemError(c, err)
	}
	if len(rows) == 0 {
		return SendError(c, errors.AggregationPeriodNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: rows})
}

// GetPersonAnalytics returns the person analytics rows for one month
// GET /api/v1/aggregates/person-analytics
func (h *AggregatesHandler) GetPersonAnalytics(c echo.Context) error {
	query, err := bindPeriod(c)
	if query == nil {
		return err
	}

	rows, err := h.analyticsService.GetByPeriod(query.Year, query.Month)
	if err != nil {
		return SendSystemError(c, err)
	}
	if len(rows) == 0 {
		return SendError(c, errors.AggregationPeriodNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: rows})
}

// GetPaymentSummary returns the payment method summary rows for one month
// GET /api/v1/aggregates/payment-summary
func (h *AggregatesHandler) GetPaymentSummary(c echo.Context) error {
	query, err := bindPeriod(c)
	if query == nil {
		return err
	}

	rows, err := h.paymentService.GetByPeriod(query.Year, query.Month)
	if err != nil {
		return SendSystemError(c, err)
	}
	if len(rows) == 0 {
		return SendError(c, errors.AggregationPeriodNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: rows})
}
