// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/construction-tracker/backend/config"
	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/application/usecase/auth"
	"github.com/construction-tracker/backend/internal/application/usecase/building"
	"github.com/construction-tracker/backend/internal/application/usecase/category"
	"github.com/construction-tracker/backend/internal/application/usecase/expense"
	"github.com/construction-tracker/backend/internal/application/usecase/report"
	"github.com/construction-tracker/backend/internal/application/usecase/user"
	"github.com/construction-tracker/backend/internal/infra/server/router"
	"github.com/construction-tracker/backend/internal/integration/adapters"
	"github.com/construction-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/construction-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/construction-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	DB       *gorm.DB
	Router   *router.Router
	UserRepo adapter.UserRepository
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	buildingRepo := persistence.NewBuildingRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)

	// Adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry, tokenRepo)
	clock := adapters.NewSystemClock()

	var reportCache adapter.ReportCache
	if cfg.Redis.Enabled {
		cache, err := adapters.NewRedisReportCache(cfg.Redis.URL)
		if err != nil {
			slog.Warn("Report cache unavailable, reports will recompute on every request", "error", err)
		} else {
			reportCache = cache
		}
	}

	// Auth use cases
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// User management use cases
	createUserUseCase := user.NewCreateUserUseCase(userRepo, passwordService)
	listUsersUseCase := user.NewListUsersUseCase(userRepo)
	getUserUseCase := user.NewGetUserUseCase(userRepo)
	updateUserUseCase := user.NewUpdateUserUseCase(userRepo, passwordService, tokenService)
	deleteUserUseCase := user.NewDeleteUserUseCase(userRepo, tokenService)

	// Building use cases
	createBuildingUseCase := building.NewCreateBuildingUseCase(buildingRepo)
	listBuildingsUseCase := building.NewListBuildingsUseCase(buildingRepo)
	getBuildingUseCase := building.NewGetBuildingUseCase(buildingRepo)
	updateBuildingUseCase := building.NewUpdateBuildingUseCase(buildingRepo)
	deleteBuildingUseCase := building.NewDeleteBuildingUseCase(buildingRepo)

	// Category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, buildingRepo, categoryRepo, clock)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, buildingRepo, categoryRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Report use cases
	dashboardUseCase := report.NewDashboardUseCase(expenseRepo, buildingRepo, reportCache, cfg.Redis.DashboardTTL)
	comparisonUseCase := report.NewComparisonUseCase(expenseRepo, buildingRepo)
	monthReportUseCase := report.NewMonthReportUseCase(expenseRepo, buildingRepo, categoryRepo)
	weekReportUseCase := report.NewWeekReportUseCase(expenseRepo, clock)
	buildingStatsUseCase := report.NewBuildingStatsUseCase(expenseRepo, buildingRepo, categoryRepo, userRepo, clock)
	ledgerStatsUseCase := report.NewLedgerStatsUseCase(expenseRepo, buildingRepo, categoryRepo, userRepo, clock)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	userController := controller.NewUserController(
		createUserUseCase,
		listUsersUseCase,
		getUserUseCase,
		updateUserUseCase,
		deleteUserUseCase,
	)

	buildingController := controller.NewBuildingController(
		createBuildingUseCase,
		listBuildingsUseCase,
		getBuildingUseCase,
		updateBuildingUseCase,
		deleteBuildingUseCase,
		buildingStatsUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		getExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	reportController := controller.NewReportController(
		dashboardUseCase,
		comparisonUseCase,
		monthReportUseCase,
		weekReportUseCase,
		ledgerStatsUseCase,
	)

	// Middleware
	// Higher login rate limits under test harnesses to avoid flaky runs
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService, userRepo)

	r := router.NewRouter(
		healthController,
		authController,
		userController,
		buildingController,
		categoryController,
		expenseController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:   cfg,
		DB:       db,
		Router:   r,
		UserRepo: userRepo,
	}
}
