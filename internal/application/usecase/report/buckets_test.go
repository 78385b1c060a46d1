package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construction-tracker/backend/internal/application/adapter"
)

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "monday maps to itself",
			in:   time.Date(2026, 8, 24, 15, 30, 0, 0, time.UTC),
			want: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "wednesday maps to monday",
			in:   time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday maps to previous monday",
			in:   time.Date(2026, 8, 30, 23, 59, 59, 0, time.UTC),
			want: time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := weekStart(tt.in); !got.Equal(tt.want) {
				t.Errorf("weekStart(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPeriodSeriesOmitsEmptyBuckets(t *testing.T) {
	building := uuid.New()
	ref := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)

	entries := []adapter.LedgerEntry{
		entryOn(building, nil, nil, "100.50", time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)),
		entryOn(building, nil, nil, "50.25", time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)),
		entryOn(building, nil, nil, "10.00", time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)),
		// outside the window
		entryOn(building, nil, nil, "999.00", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	}

	weekBack := func(t time.Time) time.Time {
		return t.AddDate(0, 0, -7)
	}

	series := periodSeries(entries, ref, 4, weekStart, weekBack)

	// the weeks of Aug 3 and Aug 17 had no expenses and are absent
	if len(series) != 2 {
		t.Fatalf("expected 2 populated buckets, got %d", len(series))
	}

	if !series[0].Start.Equal(time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first bucket start = %v, want week of Aug 10", series[0].Start)
	}
	if !series[0].Total.Equal(mustDecimal(t, "10.00")) {
		t.Errorf("week of Aug 10 total = %s, want 10.00", series[0].Total)
	}
	if !series[1].Total.Equal(mustDecimal(t, "150.75")) {
		t.Errorf("current week total = %s, want 150.75", series[1].Total)
	}
	if series[1].Count != 2 {
		t.Errorf("current week count = %d, want 2", series[1].Count)
	}

	t.Run("empty ledger yields empty series", func(t *testing.T) {
		if got := periodSeries(nil, ref, 4, weekStart, weekBack); len(got) != 0 {
			t.Errorf("expected no buckets, got %d", len(got))
		}
	})

	t.Run("zero-sum bucket with entries is kept", func(t *testing.T) {
		day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
		canceling := []adapter.LedgerEntry{
			entryOn(building, nil, nil, "500.00", day),
			entryOn(building, nil, nil, "-500.00", day),
		}
		got := periodSeries(canceling, ref, 4, weekStart, weekBack)
		if len(got) != 1 || got[0].Count != 2 || !got[0].Total.IsZero() {
			t.Errorf("expected one zero-total bucket with 2 entries, got %+v", got)
		}
	})
}

func TestGroupByKeyOrdering(t *testing.T) {
	small := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	large := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	third := uuid.New()
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	entries := []adapter.LedgerEntry{
		entryOn(third, nil, nil, "5.00", day),
		entryOn(small, nil, nil, "10.00", day),
		entryOn(large, nil, nil, "10.00", day),
	}

	groups := groupByKey(entries, func(e adapter.LedgerEntry) *uuid.UUID {
		id := e.BuildingID
		return &id
	})

	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	// equal totals tie-break by ascending key
	if groups[0].Key != small || groups[1].Key != large {
		t.Errorf("tie ordering wrong: got %v then %v", groups[0].Key, groups[1].Key)
	}
	if groups[2].Key != third {
		t.Errorf("smallest total should rank last, got %v", groups[2].Key)
	}
}

func TestGroupByKeySkipsNilKeys(t *testing.T) {
	building := uuid.New()
	owner := uuid.New()
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	entries := []adapter.LedgerEntry{
		entryOn(building, nil, &owner, "10.00", day),
		entryOn(building, nil, nil, "20.00", day),
	}

	groups := groupByKey(entries, func(e adapter.LedgerEntry) *uuid.UUID {
		return e.CreatedBy
	})

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if groups[0].Key != owner || !groups[0].Total.Equal(mustDecimal(t, "10.00")) {
		t.Errorf("got group %v total %s", groups[0].Key, groups[0].Total)
	}
}

func TestUsagePercent(t *testing.T) {
	t.Run("zero budget yields zero", func(t *testing.T) {
		if got := usagePercent(mustDecimal(t, "100"), decimal.Zero); !got.IsZero() {
			t.Errorf("usagePercent with zero budget = %s, want 0", got)
		}
	})

	t.Run("over budget exceeds hundred", func(t *testing.T) {
		got := usagePercent(mustDecimal(t, "1500"), mustDecimal(t, "1000"))
		if !got.Equal(mustDecimal(t, "150")) {
			t.Errorf("usagePercent = %s, want 150", got)
		}
	})

	t.Run("rounds to two places", func(t *testing.T) {
		got := usagePercent(mustDecimal(t, "1"), mustDecimal(t, "3"))
		if !got.Equal(mustDecimal(t, "33.33")) {
			t.Errorf("usagePercent = %s, want 33.33", got)
		}
	})
}

func TestChangePercent(t *testing.T) {
	t.Run("zero previous yields zero", func(t *testing.T) {
		if got := changePercent(mustDecimal(t, "500"), decimal.Zero); !got.IsZero() {
			t.Errorf("changePercent with zero previous = %s, want 0", got)
		}
	})

	t.Run("decrease is negative", func(t *testing.T) {
		got := changePercent(mustDecimal(t, "50"), mustDecimal(t, "100"))
		if !got.Equal(mustDecimal(t, "-50")) {
			t.Errorf("changePercent = %s, want -50", got)
		}
	})
}

func TestDaySeriesBetween(t *testing.T) {
	building := uuid.New()
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	entries := []adapter.LedgerEntry{
		entryOn(building, nil, nil, "10.00", time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)),
		entryOn(building, nil, nil, "15.00", time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)),
	}

	series := daySeriesBetween(entries, from, to)
	if len(series) != 1 {
		t.Fatalf("expected 1 populated bucket, got %d", len(series))
	}
	if !series[0].Start.Equal(time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("bucket start = %v, want Feb 14", series[0].Start)
	}
	if !series[0].Total.Equal(mustDecimal(t, "25.00")) || series[0].Count != 2 {
		t.Errorf("Feb 14 bucket = %s/%d, want 25.00/2", series[0].Total, series[0].Count)
	}

	t.Run("empty range yields empty series", func(t *testing.T) {
		if got := daySeriesBetween(nil, from, to); len(got) != 0 {
			t.Errorf("expected no buckets, got %d", len(got))
		}
	})
}
