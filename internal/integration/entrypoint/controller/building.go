package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construction-tracker/backend/internal/application/usecase/building"
	"github.com/construction-tracker/backend/internal/application/usecase/report"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
	"github.com/construction-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/construction-tracker/backend/internal/integration/entrypoint/middleware"
)

// BuildingController handles building endpoints.
type BuildingController struct {
	createUseCase *building.CreateBuildingUseCase
	listUseCase   *building.ListBuildingsUseCase
	getUseCase    *building.GetBuildingUseCase
	updateUseCase *building.UpdateBuildingUseCase
	deleteUseCase *building.DeleteBuildingUseCase
	statsUseCase  *report.BuildingStatsUseCase
}

// NewBuildingController creates a new building controller instance.
func NewBuildingController(
	createUseCase *building.CreateBuildingUseCase,
	listUseCase *building.ListBuildingsUseCase,
	getUseCase *building.GetBuildingUseCase,
	updateUseCase *building.UpdateBuildingUseCase,
	deleteUseCase *building.DeleteBuildingUseCase,
	statsUseCase *report.BuildingStatsUseCase,
) *BuildingController {
	return &BuildingController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		statsUseCase:  statsUseCase,
	}
}

// Create handles POST /buildings requests.
func (c *BuildingController) Create(ctx *gin.Context) {
	var req dto.CreateBuildingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := building.CreateBuildingInput{
		Name:        req.Name,
		Status:      entity.BuildingStatus(req.Status),
		Budget:      decimal.NewFromFloat(req.Budget),
		Description: req.Description,
	}

	var err error
	if input.StartDate, err = parseOptionalDate(req.StartDate); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format. Use YYYY-MM-DD",
		})
		return
	}
	if input.EndDate, err = parseOptionalDate(req.EndDate); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end_date format. Use YYYY-MM-DD",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBuildingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBuildingResponse(output.Building))
}

// List handles GET /buildings requests.
func (c *BuildingController) List(ctx *gin.Context) {
	input := building.ListBuildingsInput{
		Search: ctx.Query("search"),
	}

	if statusStr := ctx.Query("status"); statusStr != "" {
		status := entity.BuildingStatus(statusStr)
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBuildingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBuildingListResponse(output.Buildings))
}

// Get handles GET /buildings/:id requests.
func (c *BuildingController) Get(ctx *gin.Context) {
	buildingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid building ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), building.GetBuildingInput{BuildingID: buildingID})
	if err != nil {
		c.handleBuildingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBuildingResponse(output.Building))
}

// Update handles PATCH /buildings/:id requests.
func (c *BuildingController) Update(ctx *gin.Context) {
	buildingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid building ID format",
		})
		return
	}

	var req dto.UpdateBuildingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := building.UpdateBuildingInput{
		BuildingID:  buildingID,
		Name:        req.Name,
		ClearDates:  req.ClearDates,
		Description: req.Description,
	}

	if req.Status != nil {
		status := entity.BuildingStatus(*req.Status)
		input.Status = &status
	}
	if req.Budget != nil {
		budget := decimal.NewFromFloat(*req.Budget)
		input.Budget = &budget
	}
	if input.StartDate, err = parseOptionalDate(req.StartDate); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format. Use YYYY-MM-DD",
		})
		return
	}
	if input.EndDate, err = parseOptionalDate(req.EndDate); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end_date format. Use YYYY-MM-DD",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBuildingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBuildingResponse(output.Building))
}

// Delete handles DELETE /buildings/:id requests. Deleting a building removes
// its expenses with it.
func (c *BuildingController) Delete(ctx *gin.Context) {
	buildingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid building ID format",
		})
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), building.DeleteBuildingInput{BuildingID: buildingID}); err != nil {
		c.handleBuildingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Building deleted successfully"})
}

// Statistics handles GET /buildings/:id/statistics requests.
func (c *BuildingController) Statistics(ctx *gin.Context) {
	scope, ok := middleware.GetScopeFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	buildingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid building ID format",
		})
		return
	}

	filter, err := parseFilterParams(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), report.BuildingStatsInput{
		Scope:      scope,
		Filter:     filter,
		BuildingID: buildingID,
	})
	if err != nil {
		c.handleBuildingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBuildingStatsResponse(output))
}

// handleBuildingError maps building errors to HTTP responses.
func (c *BuildingController) handleBuildingError(ctx *gin.Context, err error) {
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

// statusCodeForBuildingError maps building error codes to HTTP status codes.
func statusCodeForBuildingError(code domainerror.BuildingErrorCode) int {
	switch code {
	case domainerror.ErrCodeBuildingNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidBuildingStatus,
		domainerror.ErrCodeNegativeBudget,
		domainerror.ErrCodeBuildingNameRequired:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseOptionalDate parses a YYYY-MM-DD date string when present.
func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	date, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
