// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/construction-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/construction-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	userController     *controller.UserController
	buildingController *controller.BuildingController
	categoryController *controller.CategoryController
	expenseController  *controller.ExpenseController
	reportController   *controller.ReportController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	buildingController *controller.BuildingController,
	categoryController *controller.CategoryController,
	expenseController *controller.ExpenseController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		userController:     userController,
		buildingController: buildingController,
		categoryController: categoryController,
		expenseController:  expenseController,
		reportController:   reportController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.GET("/me", r.userController.Me)

				// Everything else is root-operator only
				managed := users.Group("")
				managed.Use(r.authMiddleware.RequireUserManagement())
				{
					managed.GET("", r.userController.List)
					managed.POST("", r.userController.Create)
					managed.GET("/:id", r.userController.Get)
					managed.PATCH("/:id", r.userController.Update)
					managed.DELETE("/:id", r.userController.Delete)
				}
			}
		}

		if r.buildingController != nil && r.authMiddleware != nil {
			buildings := v1.Group("/buildings")
			buildings.Use(r.authMiddleware.Authenticate())
			{
				buildings.GET("", r.buildingController.List)
				buildings.GET("/:id", r.buildingController.Get)
				buildings.GET("/:id/statistics", r.buildingController.Statistics)
				buildings.POST("", r.authMiddleware.RequireWrite(), r.buildingController.Create)
				buildings.PATCH("/:id", r.authMiddleware.RequireWrite(), r.buildingController.Update)
				buildings.DELETE("/:id", r.authMiddleware.RequireWrite(), r.buildingController.Delete)
			}
		}

		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.authMiddleware.RequireWrite(), r.categoryController.Create)
				categories.PATCH("/:id", r.authMiddleware.RequireWrite(), r.categoryController.Update)
				categories.DELETE("/:id", r.authMiddleware.RequireWrite(), r.categoryController.Delete)
			}
		}

		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.GET("/:id", r.expenseController.Get)
				expenses.POST("", r.authMiddleware.RequireWrite(), r.expenseController.Create)
				expenses.PATCH("/:id", r.authMiddleware.RequireWrite(), r.expenseController.Update)
				expenses.DELETE("/:id", r.authMiddleware.RequireWrite(), r.expenseController.Delete)
			}
		}

		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("/dashboard", r.reportController.Dashboard)
				reports.GET("/comparison", r.reportController.Comparison)
				reports.GET("/monthly", r.reportController.Monthly)
				reports.GET("/weekly", r.reportController.Weekly)
				reports.GET("/statistics", r.reportController.Statistics)
			}
		}
	}
}
