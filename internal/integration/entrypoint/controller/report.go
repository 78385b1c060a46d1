package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/construction-tracker/backend/internal/application/usecase/expense"
	"github.com/construction-tracker/backend/internal/application/usecase/report"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
	"github.com/construction-tracker/backend/internal/domain/valueobject"
	"github.com/construction-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/construction-tracker/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	dashboardUseCase  *report.DashboardUseCase
	comparisonUseCase *report.ComparisonUseCase
	monthUseCase      *report.MonthReportUseCase
	weekUseCase       *report.WeekReportUseCase
	statsUseCase      *report.LedgerStatsUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	dashboardUseCase *report.DashboardUseCase,
	comparisonUseCase *report.ComparisonUseCase,
	monthUseCase *report.MonthReportUseCase,
	weekUseCase *report.WeekReportUseCase,
	statsUseCase *report.LedgerStatsUseCase,
) *ReportController {
	return &ReportController{
		dashboardUseCase:  dashboardUseCase,
		comparisonUseCase: comparisonUseCase,
		monthUseCase:      monthUseCase,
		weekUseCase:       weekUseCase,
		statsUseCase:      statsUseCase,
	}
}

// Dashboard handles GET /reports/dashboard requests.
func (c *ReportController) Dashboard(ctx *gin.Context) {
	scope, filter, ok := c.scopeAndFilter(ctx)
	if !ok {
		return
	}

	output, err := c.dashboardUseCase.Execute(ctx.Request.Context(), report.DashboardInput{
		Scope:  scope,
		Filter: filter,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// Comparison handles GET /reports/comparison requests.
func (c *ReportController) Comparison(ctx *gin.Context) {
	scope, filter, ok := c.scopeAndFilter(ctx)
	if !ok {
		return
	}

	output, err := c.comparisonUseCase.Execute(ctx.Request.Context(), report.ComparisonInput{
		Scope:  scope,
		Filter: filter,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToComparisonResponse(output))
}

// Monthly handles GET /reports/monthly requests. Year and month are required
// query parameters.
func (c *ReportController) Monthly(ctx *gin.Context) {
	scope, filter, ok := c.scopeAndFilter(ctx)
	if !ok {
		return
	}

	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Year is required and must be a number",
			Code:  string(domainerror.ErrCodeInvalidReportPeriod),
		})
		return
	}

	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Month is required and must be a number",
			Code:  string(domainerror.ErrCodeInvalidReportPeriod),
		})
		return
	}

	output, err := c.monthUseCase.Execute(ctx.Request.Context(), report.MonthReportInput{
		Scope:  scope,
		Filter: filter,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthReportResponse(output))
}

// Weekly handles GET /reports/weekly requests.
func (c *ReportController) Weekly(ctx *gin.Context) {
	scope, filter, ok := c.scopeAndFilter(ctx)
	if !ok {
		return
	}

	input := report.WeekReportInput{
		Scope:  scope,
		Filter: filter,
	}

	if weeksStr := ctx.Query("weeks"); weeksStr != "" {
		weeks, err := strconv.Atoi(weeksStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Weeks must be a number",
				Code:  string(domainerror.ErrCodeInvalidReportPeriod),
			})
			return
		}
		input.Weeks = weeks
	}

	output, err := c.weekUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWeekReportResponse(output))
}

// Statistics handles GET /reports/statistics requests.
func (c *ReportController) Statistics(ctx *gin.Context) {
	scope, filter, ok := c.scopeAndFilter(ctx)
	if !ok {
		return
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), report.LedgerStatsInput{
		Scope:  scope,
		Filter: filter,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLedgerStatsResponse(output))
}

// scopeAndFilter extracts the caller's scope and the common report filters
// from the request, writing the error response itself on failure.
func (c *ReportController) scopeAndFilter(ctx *gin.Context) (valueobject.AccessScope, expense.FilterParams, bool) {
	scope, ok := middleware.GetScopeFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return valueobject.AccessScope{}, expense.FilterParams{}, false
	}

	filter, err := parseFilterParams(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return valueobject.AccessScope{}, expense.FilterParams{}, false
	}

	return scope, filter, true
}

// handleReportError maps report errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	var bldErr *domainerror.BuildingError
	if errors.As(err, &bldErr) {
		ctx.JSON(statusCodeForBuildingError(bldErr.Code), dto.ErrorResponse{
			Error: bldErr.Message,
			Code:  string(bldErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// parseFilterParams parses the optional ledger filter query parameters shared
// by expense listing and the report endpoints. The created_by key is parsed
// here for every caller; scope resolution downstream ignores it for everyone
// but the root operator.
func parseFilterParams(ctx *gin.Context) (expense.FilterParams, error) {
	var params expense.FilterParams

	if idStr := ctx.Query("building_id"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return expense.FilterParams{}, fmt.Errorf("invalid building_id filter")
		}
		params.BuildingID = &id
	}

	// category_id takes a category uuid or a slug; the legacy fixed category
	// codes survive as slugs.
	if idStr := ctx.Query("category_id"); idStr != "" {
		if id, err := uuid.Parse(idStr); err == nil {
			params.CategoryID = &id
		} else {
			slug := idStr
			params.CategorySlug = &slug
		}
	}

	if idStr := ctx.Query("created_by"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return expense.FilterParams{}, fmt.Errorf("invalid created_by filter")
		}
		params.CreatedBy = &id
	}

	if dateStr := ctx.Query("date_from"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return expense.FilterParams{}, fmt.Errorf("invalid date_from filter. Use YYYY-MM-DD")
		}
		params.DateFrom = &date
	}

	if dateStr := ctx.Query("date_to"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return expense.FilterParams{}, fmt.Errorf("invalid date_to filter. Use YYYY-MM-DD")
		}
		params.DateTo = &date
	}

	return params, nil
}
