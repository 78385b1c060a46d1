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

func TestBuildingStats(t *testing.T) {
	now := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	clock := fixedClock{now: now}

	rootUser := entity.NewUser("root", "", "", "", "x", entity.RoleAdmin, true)
	alice := entity.NewUser("alice", "", "", "", "x", entity.RoleAccountant, false)
	userRepo := &fakeUserRepo{users: []*entity.User{rootUser, alice}}

	site := entity.NewBuilding("Site A", entity.BuildingStatusStarted, mustDecimal(t, "1000000"), nil, nil, "")
	site.SpentAmount = mustDecimal(t, "550000")
	other := entity.NewBuilding("Site B", entity.BuildingStatusNew, mustDecimal(t, "200000"), nil, nil, "")
	buildingRepo := &fakeBuildingRepo{buildings: []*entity.Building{site, other}}

	material := entity.NewExpenseCategory("Material", "material", "package", "#111111", 1, true)
	categoryRepo := &fakeCategoryRepo{categories: []*entity.ExpenseCategory{material}}

	entries := []adapter.LedgerEntry{
		entryOn(site.ID, &material.ID, &alice.ID, "300000.00", time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)),
		entryOn(site.ID, &material.ID, &rootUser.ID, "250000.00", time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)),
		// a different building, must not leak in
		entryOn(other.ID, &material.ID, &alice.ID, "7000.00", time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC)),
	}

	t.Run("unknown building", func(t *testing.T) {
		uc := NewBuildingStatsUseCase(&fakeExpenseRepo{}, buildingRepo, categoryRepo, userRepo, clock)
		scope := valueobject.AccessScope{ActorID: rootUser.ID, FullLedger: true, CanRead: true}
		_, err := uc.Execute(context.Background(), BuildingStatsInput{Scope: scope, BuildingID: uuid.New()})
		if !errors.Is(err, domainerror.ErrBuildingNotFound) {
			t.Fatalf("expected building not found, got %v", err)
		}
	})

	t.Run("statistics for one building", func(t *testing.T) {
		repo := &fakeExpenseRepo{entries: entries}
		uc := NewBuildingStatsUseCase(repo, buildingRepo, categoryRepo, userRepo, clock)

		scope := valueobject.AccessScope{ActorID: rootUser.ID, FullLedger: true, CanRead: true}
		output, err := uc.Execute(context.Background(), BuildingStatsInput{Scope: scope, BuildingID: site.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Count != 2 || !output.Total.Equal(mustDecimal(t, "550000.00")) {
			t.Errorf("totals = %d/%s", output.Count, output.Total)
		}
		if !output.Average.Equal(mustDecimal(t, "275000")) {
			t.Errorf("average = %s, want 275000", output.Average)
		}
		if !output.Max.Equal(mustDecimal(t, "300000.00")) {
			t.Errorf("max = %s, want 300000.00", output.Max)
		}
		if !output.Remaining.Equal(mustDecimal(t, "450000")) {
			t.Errorf("remaining = %s, want 450000", output.Remaining)
		}
		if !output.UsagePercent.Equal(mustDecimal(t, "55")) {
			t.Errorf("usage = %s, want 55", output.UsagePercent)
		}
		// both entries fall in the week of Aug 17
		if len(output.ByWeek) != 1 {
			t.Errorf("weekly series has %d buckets, want 1", len(output.ByWeek))
		}
		if len(output.TopContributors) != 2 {
			t.Fatalf("expected 2 contributors, got %d", len(output.TopContributors))
		}
		if output.TopContributors[0].User.ID != alice.ID {
			t.Errorf("alice should lead the contributor ranking")
		}
	})

	t.Run("contributors hidden for restricted scopes", func(t *testing.T) {
		repo := &fakeExpenseRepo{entries: entries}
		uc := NewBuildingStatsUseCase(repo, buildingRepo, categoryRepo, userRepo, clock)

		scope := valueobject.AccessScope{ActorID: alice.ID, CanRead: true}
		output, err := uc.Execute(context.Background(), BuildingStatsInput{Scope: scope, BuildingID: site.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.TopContributors != nil {
			t.Errorf("restricted scope should not see contributors")
		}
		if output.Count != 1 || !output.Total.Equal(mustDecimal(t, "300000.00")) {
			t.Errorf("scoped totals = %d/%s", output.Count, output.Total)
		}
		// the building aggregate itself is not scoped
		if !output.UsagePercent.Equal(mustDecimal(t, "55")) {
			t.Errorf("usage = %s, want 55", output.UsagePercent)
		}
	})
}
