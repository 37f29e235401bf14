package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inventory-tracker/backend/internal/application/usecase/stats"
	domainerror "github.com/inventory-tracker/backend/internal/domain/error"
	"github.com/inventory-tracker/backend/internal/integration/entrypoint/dto"
)

// referenceDateLayout is the accepted format of the reference query parameter.
const referenceDateLayout = "2006-01-02"

// StatsController handles inventory statistics endpoints.
type StatsController struct {
	getStatsUseCase       *stats.GetStatsUseCase
	getPeriodStatsUseCase *stats.GetPeriodStatsUseCase
	location              *time.Location
}

// NewStatsController creates a new stats controller instance.
// Reference dates are interpreted in location (UTC when nil).
func NewStatsController(
	getStatsUseCase *stats.GetStatsUseCase,
	getPeriodStatsUseCase *stats.GetPeriodStatsUseCase,
	location *time.Location,
) *StatsController {
	if location == nil {
		location = time.UTC
	}
	return &StatsController{
		getStatsUseCase:       getStatsUseCase,
		getPeriodStatsUseCase: getPeriodStatsUseCase,
		location:              location,
	}
}

// GetStats handles GET /stats requests.
func (c *StatsController) GetStats(ctx *gin.Context) {
	output, err := c.getStatsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatsResponse(output))
}

// GetPeriodStats handles GET /stats/period requests.
// Query parameters:
//   - period: week, month or year (anything else is treated as month)
//   - reference: YYYY-MM-DD, defaults to now
func (c *StatsController) GetPeriodStats(ctx *gin.Context) {
	input := stats.GetPeriodStatsInput{
		Period: stats.PeriodKind(ctx.DefaultQuery("period", string(stats.PeriodMonth))),
	}

	if raw := ctx.Query("reference"); raw != "" {
		day, err := time.ParseInLocation(referenceDateLayout, raw, c.location)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid reference date, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidReferenceDate),
			})
			return
		}
		// The whole reference day is included.
		input.Reference = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	output, err := c.getPeriodStatsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleStatsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPeriodStatsResponse(output))
}

// handleStatsError handles stats errors and returns appropriate HTTP responses.
func (c *StatsController) handleStatsError(ctx *gin.Context, err error) {
	var statsErr *domainerror.StatsError
	if errors.As(err, &statsErr) {
		slog.Error("Stats computation failed", "code", statsErr.Code, "error", err)
		ctx.JSON(c.getStatusCodeForStatsError(statsErr.Code), dto.ErrorResponse{
			Error: statsErr.Message,
			Code:  string(statsErr.Code),
		})
		return
	}

	slog.Error("Unexpected stats error", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeStatsInternalError),
	})
}

// getStatusCodeForStatsError maps stats error codes to HTTP status codes.
func (c *StatsController) getStatusCodeForStatsError(code domainerror.StatsErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidReferenceDate, domainerror.ErrCodeInvalidTimezone:
		return http.StatusBadRequest
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeStatsSourceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
