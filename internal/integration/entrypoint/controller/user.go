package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/construction-tracker/backend/internal/application/usecase/user"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
	"github.com/construction-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/construction-tracker/backend/internal/integration/entrypoint/middleware"
)

// UserController handles user management endpoints. All routes except /me
// are restricted to the root operator by middleware.
type UserController struct {
	createUseCase *user.CreateUserUseCase
	listUseCase   *user.ListUsersUseCase
	getUseCase    *user.GetUserUseCase
	updateUseCase *user.UpdateUserUseCase
	deleteUseCase *user.DeleteUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	createUseCase *user.CreateUserUseCase,
	listUseCase *user.ListUsersUseCase,
	getUseCase *user.GetUserUseCase,
	updateUseCase *user.UpdateUserUseCase,
	deleteUseCase *user.DeleteUserUseCase,
) *UserController {
	return &UserController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Me handles GET /users/me requests.
func (c *UserController) Me(ctx *gin.Context) {
	actor, ok := middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), user.GetUserInput{UserID: actor.ID})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Create handles POST /users requests.
func (c *UserController) Create(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), user.CreateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
		Role:      entity.Role(req.Role),
	})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(output.User))
}

// List handles GET /users requests.
func (c *UserController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(output.Users))
}

// Get handles GET /users/:id requests.
func (c *UserController) Get(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), user.GetUserInput{UserID: userID})
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Update handles PATCH /users/:id requests.
func (c *UserController) Update(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := user.UpdateUserInput{
		UserID:    userID,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	}
	if req.Role != nil {
		role := entity.Role(*req.Role)
		input.Role = &role
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Delete handles DELETE /users/:id requests.
func (c *UserController) Delete(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), user.DeleteUserInput{UserID: userID}); err != nil {
		c.handleUserError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}

// handleUserError maps user management errors to HTTP responses.
func (c *UserController) handleUserError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(statusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrUserNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "User not found",
			Code:  string(domainerror.ErrCodeUserNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
