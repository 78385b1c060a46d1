// Package main is the entry point for the Construction Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/construction-tracker/backend/config"
	"github.com/construction-tracker/backend/internal/domain/entity"
	"github.com/construction-tracker/backend/internal/infra/db"
	"github.com/construction-tracker/backend/internal/infra/dependency"
	"github.com/construction-tracker/backend/internal/integration/adapters"
	"github.com/construction-tracker/backend/internal/integration/persistence"
	"github.com/construction-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Construction Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.BuildingModel{},
		&model.ExpenseCategoryModel{},
		&model.ExpenseModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	if err := bootstrap(cfg, database); err != nil {
		slog.Error("Bootstrap failed", "error", err)
		os.Exit(1)
	}

	injector := dependency.NewInjector(cfg, database.DB())
	engine := injector.Router.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// bootstrap seeds the default category directory and provisions the root
// operator account when one does not exist yet.
func bootstrap(cfg *config.Config, database *db.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	categoryRepo := persistence.NewCategoryRepository(database.DB())
	if err := categoryRepo.Seed(ctx, entity.DefaultCategories()); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}

	userRepo := persistence.NewUserRepository(database.DB())
	hasRoot, err := userRepo.HasRootOperator(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for root operator: %w", err)
	}
	if hasRoot {
		return nil
	}

	if cfg.Root.Username == "" || cfg.Root.Password == "" {
		slog.Warn("No root operator exists and ROOT_USERNAME/ROOT_PASSWORD are not set; user management is unavailable until one is provisioned")
		return nil
	}

	passwordService := adapters.NewPasswordService()
	hash, err := passwordService.HashPassword(cfg.Root.Password)
	if err != nil {
		return fmt.Errorf("failed to hash root operator password: %w", err)
	}

	root := entity.NewUser(cfg.Root.Username, "", "", "", hash, entity.RoleAdmin, true)
	if err := userRepo.Create(ctx, root); err != nil {
		return fmt.Errorf("failed to provision root operator: %w", err)
	}

	slog.Info("Root operator provisioned", "username", cfg.Root.Username)
	return nil
}
