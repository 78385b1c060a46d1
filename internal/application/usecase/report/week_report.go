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
	// DefaultWeekCount is the number of weeks covered when the caller does
	// not set one.
	DefaultWeekCount = 8

	// MaxWeekCount caps the window a caller may request.
	MaxWeekCount = 52
)

// WeekReportInput represents the input for the week series report. Weeks
// defaults to DefaultWeekCount when not positive.
type WeekReportInput struct {
	Scope  valueobject.AccessScope
	Filter expense.FilterParams
	Weeks  int
}

// WeekReportOutput represents the week series payload. Weeks start on
// Monday; the window ends with the week containing today and weeks without
// expenses are omitted. Average covers the populated weeks only, and Delta
// compares the two most recent populated weeks.
type WeekReportOutput struct {
	Weeks        []PeriodTotal
	Average      decimal.Decimal
	Delta        decimal.Decimal
	DeltaPercent decimal.Decimal
}

// WeekReportUseCase builds the rolling weekly totals report.
type WeekReportUseCase struct {
	expenseRepo adapter.ExpenseRepository
	clock       adapter.Clock
}

// NewWeekReportUseCase creates a new WeekReportUseCase instance.
func NewWeekReportUseCase(expenseRepo adapter.ExpenseRepository, clock adapter.Clock) *WeekReportUseCase {
	return &WeekReportUseCase{
		expenseRepo: expenseRepo,
		clock:       clock,
	}
}

// Execute builds the week series report.
func (uc *WeekReportUseCase) Execute(ctx context.Context, input WeekReportInput) (*WeekReportOutput, error) {
	weeks := input.Weeks
	if weeks < 1 {
		weeks = DefaultWeekCount
	}
	if weeks > MaxWeekCount {
		weeks = MaxWeekCount
	}

	now := uc.clock.Now()
	from := weekStart(now).AddDate(0, 0, -7*(weeks-1))
	to := weekStart(now).AddDate(0, 0, 6)

	params := input.Filter
	params.DateFrom = &from
	params.DateTo = &to
	filter := expense.BuildFilter(input.Scope, params)

	entries, err := uc.expenseRepo.ScanLedger(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger: %w", err)
	}

	series := periodSeries(entries, now, weeks, weekStart, func(t time.Time) time.Time {
		return t.AddDate(0, 0, -7)
	})

	output := &WeekReportOutput{
		Weeks:        series,
		Average:      decimal.Zero,
		Delta:        decimal.Zero,
		DeltaPercent: decimal.Zero,
	}

	sum := decimal.Zero
	for _, w := range series {
		sum = sum.Add(w.Total)
	}
	if len(series) > 0 {
		output.Average = sum.Div(decimal.NewFromInt(int64(len(series)))).Round(PercentPlaces)
	}

	if len(series) >= 2 {
		latest := series[len(series)-1].Total
		previous := series[len(series)-2].Total
		output.Delta = latest.Sub(previous)
		output.DeltaPercent = changePercent(latest, previous)
	}

	return output, nil
}
