package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/domain/entity"
	domainerror "github.com/construction-tracker/backend/internal/domain/error"
	"github.com/construction-tracker/backend/internal/domain/valueobject"
)

func TestMonthReport(t *testing.T) {
	actor := uuid.New()
	scope := valueobject.AccessScope{ActorID: actor, FullLedger: true, CanRead: true}

	material := entity.NewExpenseCategory("Material", "material", "package", "#111111", 1, true)
	labor := entity.NewExpenseCategory("Labor", "labor", "users", "#222222", 2, true)
	retired := entity.NewExpenseCategory("Old", "old", "tag", "#333333", 3, false)
	categoryRepo := &fakeCategoryRepo{categories: []*entity.ExpenseCategory{material, labor, retired}}

	site := entity.NewBuilding("Site A", entity.BuildingStatusStarted, mustDecimal(t, "1000000"), nil, nil, "")
	buildingRepo := &fakeBuildingRepo{buildings: []*entity.Building{site}}

	t.Run("rejects month out of range", func(t *testing.T) {
		uc := NewMonthReportUseCase(&fakeExpenseRepo{}, buildingRepo, categoryRepo)
		_, err := uc.Execute(context.Background(), MonthReportInput{Scope: scope, Year: 2026, Month: 13})
		if !errors.Is(err, domainerror.ErrInvalidReportMonth) {
			t.Fatalf("expected invalid month error, got %v", err)
		}
	})

	t.Run("rejects missing year", func(t *testing.T) {
		uc := NewMonthReportUseCase(&fakeExpenseRepo{}, buildingRepo, categoryRepo)
		_, err := uc.Execute(context.Background(), MonthReportInput{Scope: scope, Month: 6})
		if !errors.Is(err, domainerror.ErrInvalidReportPeriod) {
			t.Fatalf("expected invalid period error, got %v", err)
		}
	})

	t.Run("aggregates one calendar month", func(t *testing.T) {
		repo := &fakeExpenseRepo{
			entries: []adapter.LedgerEntry{
				entryOn(site.ID, &material.ID, &actor, "300000.00", time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)),
				entryOn(site.ID, &material.ID, &actor, "50000.00", time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)),
				entryOn(site.ID, nil, &actor, "1000.00", time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)),
				// outside the month
				entryOn(site.ID, &labor.ID, &actor, "99999.00", time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)),
			},
		}
		uc := NewMonthReportUseCase(repo, buildingRepo, categoryRepo)

		output, err := uc.Execute(context.Background(), MonthReportInput{Scope: scope, Year: 2026, Month: 6})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Total.Equal(mustDecimal(t, "351000.00")) {
			t.Errorf("total = %s, want 351000.00", output.Total)
		}
		if output.Count != 3 {
			t.Errorf("count = %d, want 3", output.Count)
		}

		// every active category is present, inactive ones are not
		if len(output.ByCategory) != 2 {
			t.Fatalf("expected 2 category rows, got %d", len(output.ByCategory))
		}
		if output.ByCategory[0].Category.ID != material.ID {
			t.Errorf("leading category should be material")
		}
		if !output.ByCategory[0].Total.Equal(mustDecimal(t, "350000.00")) || output.ByCategory[0].Count != 2 {
			t.Errorf("material row = %s/%d", output.ByCategory[0].Total, output.ByCategory[0].Count)
		}
		if !output.ByCategory[1].Total.IsZero() {
			t.Errorf("labor row should be zero, got %s", output.ByCategory[1].Total)
		}

		if output.Uncategorized.Count != 1 || !output.Uncategorized.Total.Equal(mustDecimal(t, "1000.00")) {
			t.Errorf("uncategorized = %s/%d", output.Uncategorized.Total, output.Uncategorized.Count)
		}

		// only June 5 and June 20 saw expenses
		if len(output.ByDay) != 2 {
			t.Fatalf("expected 2 day buckets, got %d", len(output.ByDay))
		}
		if !output.ByDay[0].Start.Equal(time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("first bucket = %v, want June 5", output.ByDay[0].Start)
		}
		if !output.ByDay[0].Total.Equal(mustDecimal(t, "350000.00")) {
			t.Errorf("June 5 bucket = %s, want 350000.00", output.ByDay[0].Total)
		}

		if len(output.ByBuilding) != 1 || output.ByBuilding[0].Building.ID != site.ID {
			t.Fatalf("expected one building row for the site")
		}
		if !output.ByBuilding[0].SharePercent.Equal(mustDecimal(t, "100")) {
			t.Errorf("building share = %s, want 100", output.ByBuilding[0].SharePercent)
		}
	})

	t.Run("empty month keeps zero category rows but no series", func(t *testing.T) {
		uc := NewMonthReportUseCase(&fakeExpenseRepo{}, buildingRepo, categoryRepo)
		output, err := uc.Execute(context.Background(), MonthReportInput{Scope: scope, Year: 2026, Month: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.ByCategory) != 2 {
			t.Fatalf("expected 2 zero category rows, got %d", len(output.ByCategory))
		}
		if len(output.ByBuilding) != 0 {
			t.Errorf("expected no building rows, got %d", len(output.ByBuilding))
		}
		if len(output.ByDay) != 0 {
			t.Errorf("expected an empty per-day series, got %d buckets", len(output.ByDay))
		}
		if !output.Total.IsZero() {
			t.Errorf("total = %s, want 0", output.Total)
		}
	})
}
