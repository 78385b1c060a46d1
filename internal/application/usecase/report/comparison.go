package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/application/usecase/expense"
	"github.com/construction-tracker/backend/internal/domain/entity"
	"github.com/construction-tracker/backend/internal/domain/valueobject"
)

// ComparisonInput represents the input for the building comparison report.
type ComparisonInput struct {
	Scope  valueobject.AccessScope
	Filter expense.FilterParams
}

// BuildingComparison is one row of the comparison report. Budget, spent and
// usage reflect the building's full ledger aggregate; ExpenseCount and
// ExpenseTotal reflect the caller's scoped, filtered view.
type BuildingComparison struct {
	Building     *entity.Building
	Remaining    decimal.Decimal
	UsagePercent decimal.Decimal
	ExpenseCount int
	ExpenseTotal decimal.Decimal
}

// ComparisonOutput represents the comparison report payload, sorted by
// budget descending.
type ComparisonOutput struct {
	Buildings []BuildingComparison
}

// ComparisonUseCase builds the side-by-side building comparison.
type ComparisonUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	buildingRepo adapter.BuildingRepository
}

// NewComparisonUseCase creates a new ComparisonUseCase instance.
func NewComparisonUseCase(
	expenseRepo adapter.ExpenseRepository,
	buildingRepo adapter.BuildingRepository,
) *ComparisonUseCase {
	return &ComparisonUseCase{
		expenseRepo:  expenseRepo,
		buildingRepo: buildingRepo,
	}
}

// Execute builds the comparison report.
func (uc *ComparisonUseCase) Execute(ctx context.Context, input ComparisonInput) (*ComparisonOutput, error) {
	buildings, err := uc.buildingRepo.FindAll(ctx, adapter.BuildingFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}

	filter := expense.BuildFilter(input.Scope, input.Filter)
	entries, err := uc.expenseRepo.ScanLedger(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger: %w", err)
	}

	counts := make(map[uuid.UUID]int)
	totals := make(map[uuid.UUID]decimal.Decimal)
	for _, entry := range entries {
		counts[entry.BuildingID]++
		if t, ok := totals[entry.BuildingID]; ok {
			totals[entry.BuildingID] = t.Add(entry.Amount)
		} else {
			totals[entry.BuildingID] = entry.Amount
		}
	}

	rows := make([]BuildingComparison, 0, len(buildings))
	for _, b := range buildings {
		total, ok := totals[b.ID]
		if !ok {
			total = decimal.Zero
		}
		rows = append(rows, BuildingComparison{
			Building:     b,
			Remaining:    b.RemainingBudget(),
			UsagePercent: usagePercent(b.SpentAmount, b.Budget),
			ExpenseCount: counts[b.ID],
			ExpenseTotal: total,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		bi, bj := rows[i].Building, rows[j].Building
		if !bi.Budget.Equal(bj.Budget) {
			return bi.Budget.GreaterThan(bj.Budget)
		}
		return bi.ID.String() < bj.ID.String()
	})

	return &ComparisonOutput{
		Buildings: rows,
	}, nil
}
