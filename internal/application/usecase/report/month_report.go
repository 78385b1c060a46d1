package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/application/usecase/expense"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
	"github.com/construction-tracker/backend/internal/domain/valueobject"
)

// MonthReportInput represents the input for the month report. Year and Month
// are both required.
type MonthReportInput struct {
	Scope  valueobject.AccessScope
	Filter expense.FilterParams
	Year   int
	Month  int
}

// CategoryBreakdownRow is one row of a category breakdown. The breakdown
// enumerates every active category, so Total and Count may be zero.
type CategoryBreakdownRow struct {
	Category     *entity.ExpenseCategory
	Total        decimal.Decimal
	Count        int
	SharePercent decimal.Decimal
}

// BuildingBreakdownRow is one row of a per-building breakdown. Buildings
// without matching expenses are omitted.
type BuildingBreakdownRow struct {
	Building     *entity.Building
	Total        decimal.Decimal
	Count        int
	SharePercent decimal.Decimal
}

// UncategorizedSummary totals the entries without a category reference.
type UncategorizedSummary struct {
	Total decimal.Decimal
	Count int
}

// MonthReportOutput represents the month report payload.
type MonthReportOutput struct {
	Year          int
	Month         time.Month
	Total         decimal.Decimal
	Count         int
	ByCategory    []CategoryBreakdownRow
	Uncategorized UncategorizedSummary
	ByBuilding    []BuildingBreakdownRow
	ByDay         []PeriodTotal
}

// MonthReportUseCase builds the calendar month report.
type MonthReportUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	buildingRepo adapter.BuildingRepository
	categoryRepo adapter.CategoryRepository
}

// NewMonthReportUseCase creates a new MonthReportUseCase instance.
func NewMonthReportUseCase(
	expenseRepo adapter.ExpenseRepository,
	buildingRepo adapter.BuildingRepository,
	categoryRepo adapter.CategoryRepository,
) *MonthReportUseCase {
	return &MonthReportUseCase{
		expenseRepo:  expenseRepo,
		buildingRepo: buildingRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute builds the month report. The month window replaces any date range
// in the incoming filter; building, category and owner keys still apply.
func (uc *MonthReportUseCase) Execute(ctx context.Context, input MonthReportInput) (*MonthReportOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportMonth,
			fmt.Sprintf("month must be between 1 and 12, got %d", input.Month),
			domainerror.ErrInvalidReportMonth,
		)
	}
	if input.Year < 1 {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportPeriod,
			"year is required",
			domainerror.ErrInvalidReportPeriod,
		)
	}

	from := time.Date(input.Year, time.Month(input.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	params := input.Filter
	params.DateFrom = &from
	params.DateTo = &to
	filter := expense.BuildFilter(input.Scope, params)

	entries, err := uc.expenseRepo.ScanLedger(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger: %w", err)
	}

	output := &MonthReportOutput{
		Year:  input.Year,
		Month: time.Month(input.Month),
		ByDay: daySeriesBetween(entries, from, to),
	}
	output.Total, output.Count = sumEntries(entries)
	output.Uncategorized = sumUncategorized(entries)

	output.ByCategory, err = categoryBreakdown(ctx, uc.categoryRepo, entries, output.Total)
	if err != nil {
		return nil, err
	}

	output.ByBuilding, err = buildingBreakdown(ctx, uc.buildingRepo, entries, output.Total)
	if err != nil {
		return nil, err
	}

	return output, nil
}

// categoryBreakdown enumerates every active category with its scoped total,
// ordered by total descending, ties by display order.
func categoryBreakdown(ctx context.Context, categoryRepo adapter.CategoryRepository, entries []adapter.LedgerEntry, total decimal.Decimal) ([]CategoryBreakdownRow, error) {
	categories, err := categoryRepo.FindAll(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	groups := groupByKey(entries, func(e adapter.LedgerEntry) *uuid.UUID {
		return e.CategoryID
	})
	byCategory := make(map[uuid.UUID]GroupTotal, len(groups))
	for _, g := range groups {
		byCategory[g.Key] = g
	}

	rows := make([]CategoryBreakdownRow, 0, len(categories))
	for _, category := range categories {
		row := CategoryBreakdownRow{
			Category: category,
			Total:    decimal.Zero,
		}
		if g, ok := byCategory[category.ID]; ok {
			row.Total = g.Total
			row.Count = g.Count
		}
		row.SharePercent = sharePercent(row.Total, total)
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Total.Equal(rows[j].Total) {
			return rows[i].Total.GreaterThan(rows[j].Total)
		}
		return rows[i].Category.DisplayOrder < rows[j].Category.DisplayOrder
	})
	return rows, nil
}

// buildingBreakdown groups scoped entries per building; buildings without
// entries are omitted.
func buildingBreakdown(ctx context.Context, buildingRepo adapter.BuildingRepository, entries []adapter.LedgerEntry, total decimal.Decimal) ([]BuildingBreakdownRow, error) {
	groups := groupByKey(entries, func(e adapter.LedgerEntry) *uuid.UUID {
		id := e.BuildingID
		return &id
	})
	if len(groups) == 0 {
		return nil, nil
	}

	buildings, err := buildingRepo.FindAll(ctx, adapter.BuildingFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}
	byID := make(map[uuid.UUID]*entity.Building, len(buildings))
	for _, b := range buildings {
		byID[b.ID] = b
	}

	rows := make([]BuildingBreakdownRow, 0, len(groups))
	for _, g := range groups {
		building, ok := byID[g.Key]
		if !ok {
			continue
		}
		rows = append(rows, BuildingBreakdownRow{
			Building:     building,
			Total:        g.Total,
			Count:        g.Count,
			SharePercent: sharePercent(g.Total, total),
		})
	}
	return rows, nil
}

// sumUncategorized totals the entries without a category reference.
func sumUncategorized(entries []adapter.LedgerEntry) UncategorizedSummary {
	summary := UncategorizedSummary{Total: decimal.Zero}
	for _, entry := range entries {
		if entry.CategoryID == nil {
			summary.Total = summary.Total.Add(entry.Amount)
			summary.Count++
		}
	}
	return summary
}
