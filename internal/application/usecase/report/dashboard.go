package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/application/usecase/expense"
	"github.com/construction-tracker/backend/internal/domain/entity"
	"github.com/construction-tracker/backend/internal/domain/valueobject"
)

const (
	// TopBuildingsLimit is the number of buildings in the dashboard ranking.
	TopBuildingsLimit = 5

	// RecentExpensesLimit is the number of recent expenses on the dashboard.
	RecentExpensesLimit = 5
)

// DashboardInput represents the input for the dashboard report.
type DashboardInput struct {
	Scope  valueobject.AccessScope
	Filter expense.FilterParams
}

// BuildingRanking is one row of the top buildings ranking.
type BuildingRanking struct {
	Building     *entity.Building
	ExpenseCount int
	ExpenseTotal decimal.Decimal
}

// DashboardOutput represents the dashboard report payload.
type DashboardOutput struct {
	BuildingCount     int
	BuildingsByStatus map[entity.BuildingStatus]int
	TotalBudget       decimal.Decimal
	TotalSpent        decimal.Decimal
	TotalRemaining    decimal.Decimal
	ExpenseCount      int
	ExpenseTotal      decimal.Decimal
	TopBuildings      []BuildingRanking
	RecentExpenses    []*entity.ExpenseWithCategory
}

// DashboardUseCase builds the overview report. When a cache is configured
// the payload is served from it for a short TTL; dashboard reads tolerate
// slightly stale data.
type DashboardUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	buildingRepo adapter.BuildingRepository
	cache        adapter.ReportCache
	cacheTTL     time.Duration
}

// NewDashboardUseCase creates a new DashboardUseCase instance. cache may be
// nil, in which case every request recomputes.
func NewDashboardUseCase(
	expenseRepo adapter.ExpenseRepository,
	buildingRepo adapter.BuildingRepository,
	cache adapter.ReportCache,
	cacheTTL time.Duration,
) *DashboardUseCase {
	return &DashboardUseCase{
		expenseRepo:  expenseRepo,
		buildingRepo: buildingRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
	}
}

// Execute builds the dashboard report.
func (uc *DashboardUseCase) Execute(ctx context.Context, input DashboardInput) (*DashboardOutput, error) {
	filter := expense.BuildFilter(input.Scope, input.Filter)

	key := dashboardCacheKey(filter)
	if uc.cache != nil {
		var cached DashboardOutput
		hit, err := uc.cache.Get(ctx, key, &cached)
		if err != nil {
			slog.Warn("dashboard cache read failed", "error", err)
		} else if hit {
			return &cached, nil
		}
	}

	buildings, err := uc.buildingRepo.FindAll(ctx, adapter.BuildingFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}

	entries, err := uc.expenseRepo.ScanLedger(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger: %w", err)
	}

	recent, err := uc.expenseRepo.FindRecent(ctx, filter, RecentExpensesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent expenses: %w", err)
	}

	output := &DashboardOutput{
		BuildingCount:     len(buildings),
		BuildingsByStatus: make(map[entity.BuildingStatus]int),
		TotalBudget:       decimal.Zero,
		TotalSpent:        decimal.Zero,
		RecentExpenses:    recent,
	}

	byID := make(map[uuid.UUID]*entity.Building, len(buildings))
	for _, b := range buildings {
		byID[b.ID] = b
		output.BuildingsByStatus[b.Status]++
		output.TotalBudget = output.TotalBudget.Add(b.Budget)
		output.TotalSpent = output.TotalSpent.Add(b.SpentAmount)
	}
	output.TotalRemaining = output.TotalBudget.Sub(output.TotalSpent)

	output.ExpenseTotal, output.ExpenseCount = sumEntries(entries)

	groups := topN(groupByKey(entries, func(e adapter.LedgerEntry) *uuid.UUID {
		id := e.BuildingID
		return &id
	}), TopBuildingsLimit)
	output.TopBuildings = make([]BuildingRanking, 0, len(groups))
	for _, g := range groups {
		building, ok := byID[g.Key]
		if !ok {
			continue
		}
		output.TopBuildings = append(output.TopBuildings, BuildingRanking{
			Building:     building,
			ExpenseCount: g.Count,
			ExpenseTotal: g.Total,
		})
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, output, uc.cacheTTL); err != nil {
			slog.Warn("dashboard cache write failed", "error", err)
		}
	}

	return output, nil
}

// dashboardCacheKey derives the cache key from the resolved ledger filter so
// differently scoped or filtered views never share a payload.
func dashboardCacheKey(filter adapter.ExpenseFilter) string {
	parts := []string{"report:dashboard"}
	appendID := func(name string, id *uuid.UUID) {
		if id != nil {
			parts = append(parts, name+"="+id.String())
		}
	}
	appendID("owner", filter.CreatedBy)
	appendID("building", filter.BuildingID)
	appendID("category", filter.CategoryID)
	if filter.CategorySlug != nil {
		parts = append(parts, "slug="+*filter.CategorySlug)
	}
	if filter.DateFrom != nil {
		parts = append(parts, "from="+filter.DateFrom.Format("2006-01-02"))
	}
	if filter.DateTo != nil {
		parts = append(parts, "to="+filter.DateTo.Format("2006-01-02"))
	}
	return strings.Join(parts, ":")
}
