package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/application/usecase/expense"
	"github.com/construction-tracker/backend/internal/domain/valueobject"
)

const (
	// DailySeriesDays is the window of the daily series.
	DailySeriesDays = 30

	// MonthlySeriesMonths is the window of the monthly series.
	MonthlySeriesMonths = 12
)

// LedgerStatsInput represents the input for the ledger-wide statistics
// report.
type LedgerStatsInput struct {
	Scope  valueobject.AccessScope
	Filter expense.FilterParams
}

// LedgerStatsOutput represents the ledger statistics payload. TopOwners is
// populated only for full-ledger scopes.
type LedgerStatsOutput struct {
	Count         int
	Total         decimal.Decimal
	Average       decimal.Decimal
	Max           decimal.Decimal
	Min           decimal.Decimal
	ByCategory    []CategoryBreakdownRow
	Uncategorized UncategorizedSummary
	ByBuilding    []BuildingBreakdownRow
	ByDay         []PeriodTotal
	ByWeek        []PeriodTotal
	ByMonth       []PeriodTotal
	TopOwners     []OwnerTotal
}

// LedgerStatsUseCase builds the ledger-wide statistics report.
type LedgerStatsUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	buildingRepo adapter.BuildingRepository
	categoryRepo adapter.CategoryRepository
	userRepo     adapter.UserRepository
	clock        adapter.Clock
}

// NewLedgerStatsUseCase creates a new LedgerStatsUseCase instance.
func NewLedgerStatsUseCase(
	expenseRepo adapter.ExpenseRepository,
	buildingRepo adapter.BuildingRepository,
	categoryRepo adapter.CategoryRepository,
	userRepo adapter.UserRepository,
	clock adapter.Clock,
) *LedgerStatsUseCase {
	return &LedgerStatsUseCase{
		expenseRepo:  expenseRepo,
		buildingRepo: buildingRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		clock:        clock,
	}
}

// Execute builds the ledger statistics report. Totals, breakdowns and the
// top-owner ranking cover the filtered view; the time series keep their own
// fixed windows ending today regardless of any date filter.
func (uc *LedgerStatsUseCase) Execute(ctx context.Context, input LedgerStatsInput) (*LedgerStatsOutput, error) {
	filter := expense.BuildFilter(input.Scope, input.Filter)

	entries, err := uc.expenseRepo.ScanLedger(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger: %w", err)
	}

	output := &LedgerStatsOutput{
		Average:       decimal.Zero,
		Max:           decimal.Zero,
		Min:           decimal.Zero,
		Uncategorized: sumUncategorized(entries),
	}
	output.Total, output.Count = sumEntries(entries)
	if output.Count > 0 {
		output.Average = output.Total.Div(decimal.NewFromInt(int64(output.Count))).Round(PercentPlaces)
		output.Max = maxAmount(entries)
		output.Min = minAmount(entries)
	}

	output.ByCategory, err = categoryBreakdown(ctx, uc.categoryRepo, entries, output.Total)
	if err != nil {
		return nil, err
	}

	output.ByBuilding, err = buildingBreakdown(ctx, uc.buildingRepo, entries, output.Total)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	output.ByDay = periodSeries(entries, now, DailySeriesDays, dayStart, func(t time.Time) time.Time {
		return t.AddDate(0, 0, -1)
	})
	output.ByWeek = periodSeries(entries, now, DefaultWeekCount, weekStart, func(t time.Time) time.Time {
		return t.AddDate(0, 0, -7)
	})
	output.ByMonth = periodSeries(entries, now, MonthlySeriesMonths, monthStart, func(t time.Time) time.Time {
		return t.AddDate(0, -1, 0)
	})

	if input.Scope.FullLedger {
		output.TopOwners, err = ownerRanking(ctx, uc.userRepo, entries, TopContributorsLimit)
		if err != nil {
			return nil, err
		}
	}

	return output, nil
}

// minAmount returns the smallest entry amount. Call only with entries present.
func minAmount(entries []adapter.LedgerEntry) decimal.Decimal {
	min := entries[0].Amount
	for _, entry := range entries[1:] {
		if entry.Amount.LessThan(min) {
			min = entry.Amount
		}
	}
	return min
}
