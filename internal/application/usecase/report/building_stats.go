package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/application/usecase/expense"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
	"github.com/construction-tracker/backend/internal/domain/valueobject"
)

// TopContributorsLimit is the number of owners in contributor rankings.
const TopContributorsLimit = 5

// BuildingStatsInput represents the input for the building statistics
// report. Any BuildingID in the filter params is overridden by BuildingID.
type BuildingStatsInput struct {
	Scope      valueobject.AccessScope
	Filter     expense.FilterParams
	BuildingID uuid.UUID
}

// OwnerTotal is one row of an owner ranking.
type OwnerTotal struct {
	User  *entity.User
	Total decimal.Decimal
	Count int
}

// BuildingStatsOutput represents the building statistics payload. Count,
// totals and breakdowns reflect the caller's scoped, filtered view of the
// building's ledger; budget and usage reflect the full aggregate.
// TopContributors is populated only for full-ledger scopes.
type BuildingStatsOutput struct {
	Building        *entity.Building
	Remaining       decimal.Decimal
	UsagePercent    decimal.Decimal
	Count           int
	Total           decimal.Decimal
	Average         decimal.Decimal
	Max             decimal.Decimal
	ByCategory      []CategoryBreakdownRow
	Uncategorized   UncategorizedSummary
	ByWeek          []PeriodTotal
	TopContributors []OwnerTotal
	RecentExpenses  []*entity.ExpenseWithCategory
}

// BuildingStatsUseCase builds the per-building statistics report.
type BuildingStatsUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	buildingRepo adapter.BuildingRepository
	categoryRepo adapter.CategoryRepository
	userRepo     adapter.UserRepository
	clock        adapter.Clock
}

// NewBuildingStatsUseCase creates a new BuildingStatsUseCase instance.
func NewBuildingStatsUseCase(
	expenseRepo adapter.ExpenseRepository,
	buildingRepo adapter.BuildingRepository,
	categoryRepo adapter.CategoryRepository,
	userRepo adapter.UserRepository,
	clock adapter.Clock,
) *BuildingStatsUseCase {
	return &BuildingStatsUseCase{
		expenseRepo:  expenseRepo,
		buildingRepo: buildingRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		clock:        clock,
	}
}

// Execute builds the building statistics report.
func (uc *BuildingStatsUseCase) Execute(ctx context.Context, input BuildingStatsInput) (*BuildingStatsOutput, error) {
	building, err := uc.buildingRepo.FindByID(ctx, input.BuildingID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBuildingNotFound) {
			return nil, domainerror.NewBuildingError(
				domainerror.ErrCodeBuildingNotFound,
				"building not found",
				domainerror.ErrBuildingNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find building: %w", err)
	}

	params := input.Filter
	params.BuildingID = &input.BuildingID
	filter := expense.BuildFilter(input.Scope, params)

	entries, err := uc.expenseRepo.ScanLedger(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger: %w", err)
	}

	recent, err := uc.expenseRepo.FindRecent(ctx, filter, RecentExpensesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent expenses: %w", err)
	}

	output := &BuildingStatsOutput{
		Building:       building,
		Remaining:      building.RemainingBudget(),
		UsagePercent:   usagePercent(building.SpentAmount, building.Budget),
		Average:        decimal.Zero,
		Max:            decimal.Zero,
		RecentExpenses: recent,
		Uncategorized:  sumUncategorized(entries),
	}
	output.Total, output.Count = sumEntries(entries)
	if output.Count > 0 {
		output.Average = output.Total.Div(decimal.NewFromInt(int64(output.Count))).Round(PercentPlaces)
		output.Max = maxAmount(entries)
	}

	output.ByCategory, err = categoryBreakdown(ctx, uc.categoryRepo, entries, output.Total)
	if err != nil {
		return nil, err
	}

	output.ByWeek = periodSeries(entries, uc.clock.Now(), DefaultWeekCount, weekStart, func(t time.Time) time.Time {
		return t.AddDate(0, 0, -7)
	})

	if input.Scope.FullLedger {
		output.TopContributors, err = ownerRanking(ctx, uc.userRepo, entries, TopContributorsLimit)
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}

// maxAmount returns the largest entry amount. Call only with entries present.
func maxAmount(entries []adapter.LedgerEntry) decimal.Decimal {
	max := entries[0].Amount
	for _, entry := range entries[1:] {
		if entry.Amount.GreaterThan(max) {
			max = entry.Amount
		}
	}
	return max
}

// ownerRanking groups entries by creator and resolves the leading owners to
// user records. Entries whose creator was deleted are skipped.
func ownerRanking(ctx context.Context, userRepo adapter.UserRepository, entries []adapter.LedgerEntry, limit int) ([]OwnerTotal, error) {
	groups := topN(groupByKey(entries, func(e adapter.LedgerEntry) *uuid.UUID {
		return e.CreatedBy
	}), limit)
	if len(groups) == 0 {
		return nil, nil
	}

	users, err := userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	byID := make(map[uuid.UUID]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	ranking := make([]OwnerTotal, 0, len(groups))
	for _, g := range groups {
		user, ok := byID[g.Key]
		if !ok {
			continue
		}
		ranking = append(ranking, OwnerTotal{
			User:  user,
			Total: g.Total,
			Count: g.Count,
		})
	}
	return ranking, nil
}
