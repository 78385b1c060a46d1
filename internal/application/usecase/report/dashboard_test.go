package report

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/construction-tracker/backend/internal/application/adapter"
	"github.com/construction-tracker/backend/internal/application/usecase/expense"
	"github.com/construction-tracker/backend/internal/domain/entity"
	"github.com/construction-tracker/backend/internal/domain/valueobject"
)

// fakeCache is a map-backed ReportCache that round-trips through JSON the
// way the redis implementation does.
type fakeCache struct {
	data map[string][]byte
	sets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	payload, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(payload, dest)
}

func (c *fakeCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = payload
	c.sets++
	return nil
}

func TestDashboard(t *testing.T) {
	actor := uuid.New()
	scope := valueobject.AccessScope{ActorID: actor, FullLedger: true, CanRead: true}
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	siteA := entity.NewBuilding("Site A", entity.BuildingStatusStarted, mustDecimal(t, "1000000"), nil, nil, "")
	siteA.SpentAmount = mustDecimal(t, "550000")
	siteB := entity.NewBuilding("Site B", entity.BuildingStatusNew, mustDecimal(t, "200000"), nil, nil, "")
	buildingRepo := &fakeBuildingRepo{buildings: []*entity.Building{siteA, siteB}}

	entries := []adapter.LedgerEntry{
		entryOn(siteA.ID, nil, &actor, "300000.00", day),
		entryOn(siteA.ID, nil, &actor, "250000.00", day),
		entryOn(siteB.ID, nil, &actor, "100.00", day),
	}

	t.Run("totals and ranking", func(t *testing.T) {
		repo := &fakeExpenseRepo{entries: entries}
		uc := NewDashboardUseCase(repo, buildingRepo, nil, 0)

		output, err := uc.Execute(context.Background(), DashboardInput{Scope: scope})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.BuildingCount != 2 {
			t.Errorf("building count = %d, want 2", output.BuildingCount)
		}
		if output.BuildingsByStatus[entity.BuildingStatusStarted] != 1 ||
			output.BuildingsByStatus[entity.BuildingStatusNew] != 1 {
			t.Errorf("status counts wrong: %v", output.BuildingsByStatus)
		}
		if !output.TotalBudget.Equal(mustDecimal(t, "1200000")) {
			t.Errorf("total budget = %s, want 1200000", output.TotalBudget)
		}
		if !output.TotalSpent.Equal(mustDecimal(t, "550000")) {
			t.Errorf("total spent = %s, want 550000", output.TotalSpent)
		}
		if !output.TotalRemaining.Equal(mustDecimal(t, "650000")) {
			t.Errorf("total remaining = %s, want 650000", output.TotalRemaining)
		}
		if output.ExpenseCount != 3 || !output.ExpenseTotal.Equal(mustDecimal(t, "550100.00")) {
			t.Errorf("ledger totals = %d/%s", output.ExpenseCount, output.ExpenseTotal)
		}

		if len(output.TopBuildings) != 2 {
			t.Fatalf("expected 2 ranked buildings, got %d", len(output.TopBuildings))
		}
		if output.TopBuildings[0].Building.ID != siteA.ID {
			t.Errorf("site A should lead the ranking")
		}
		if !output.TopBuildings[0].ExpenseTotal.Equal(mustDecimal(t, "550000.00")) || output.TopBuildings[0].ExpenseCount != 2 {
			t.Errorf("site A ranking row = %s/%d", output.TopBuildings[0].ExpenseTotal, output.TopBuildings[0].ExpenseCount)
		}
	})

	t.Run("second read is served from cache", func(t *testing.T) {
		repo := &fakeExpenseRepo{entries: entries}
		cache := newFakeCache()
		uc := NewDashboardUseCase(repo, buildingRepo, cache, 30*time.Second)

		first, err := uc.Execute(context.Background(), DashboardInput{Scope: scope})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.sets != 1 {
			t.Fatalf("expected one cache write, got %d", cache.sets)
		}

		second, err := uc.Execute(context.Background(), DashboardInput{Scope: scope})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.sets != 1 {
			t.Errorf("cache hit should not rewrite, got %d writes", cache.sets)
		}
		if !second.ExpenseTotal.Equal(first.ExpenseTotal) || second.ExpenseCount != first.ExpenseCount {
			t.Errorf("cached payload differs: %s/%d vs %s/%d",
				second.ExpenseTotal, second.ExpenseCount, first.ExpenseTotal, first.ExpenseCount)
		}
	})

	t.Run("differently scoped views use different cache keys", func(t *testing.T) {
		repo := &fakeExpenseRepo{entries: entries}
		cache := newFakeCache()
		uc := NewDashboardUseCase(repo, buildingRepo, cache, 30*time.Second)

		if _, err := uc.Execute(context.Background(), DashboardInput{Scope: scope}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		restricted := valueobject.AccessScope{ActorID: uuid.New(), CanRead: true}
		output, err := uc.Execute(context.Background(), DashboardInput{Scope: restricted})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.sets != 2 {
			t.Errorf("expected two cache writes, got %d", cache.sets)
		}
		if output.ExpenseCount != 0 {
			t.Errorf("restricted view should see no entries, got %d", output.ExpenseCount)
		}
	})

	t.Run("category slug filters use different cache keys", func(t *testing.T) {
		material := "material"
		labor := "labor"
		base := adapter.ExpenseFilter{CreatedBy: &actor}

		unfiltered := dashboardCacheKey(base)
		byMaterial := base
		byMaterial.CategorySlug = &material
		byLabor := base
		byLabor.CategorySlug = &labor

		if dashboardCacheKey(byMaterial) == unfiltered {
			t.Errorf("slug-filtered view shares the unfiltered key %q", unfiltered)
		}
		if dashboardCacheKey(byMaterial) == dashboardCacheKey(byLabor) {
			t.Errorf("different slugs share the key %q", dashboardCacheKey(byMaterial))
		}
	})

	t.Run("building filter narrows the ledger view", func(t *testing.T) {
		repo := &fakeExpenseRepo{entries: entries}
		uc := NewDashboardUseCase(repo, buildingRepo, nil, 0)

		output, err := uc.Execute(context.Background(), DashboardInput{
			Scope:  scope,
			Filter: expense.FilterParams{BuildingID: &siteB.ID},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.ExpenseCount != 1 || !output.ExpenseTotal.Equal(mustDecimal(t, "100.00")) {
			t.Errorf("filtered totals = %d/%s", output.ExpenseCount, output.ExpenseTotal)
		}
		// the building inventory itself is not row-scoped
		if output.BuildingCount != 2 {
			t.Errorf("building count = %d, want 2", output.BuildingCount)
		}
	})
}
