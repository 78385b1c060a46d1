// Package report contains the report generation use cases. All aggregation
// runs in Go over decimal values read from the scoped ledger view, so every
// report applies exactly the same filter semantics as the list endpoint.
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/construction-tracker/backend/internal/application/adapter"
)

// PercentPlaces is the rounding applied to every percentage a report emits.
const PercentPlaces = 2

// PeriodTotal is one bucket of a time series: the bucket start, the summed
// amount and the number of entries that fell into it.
type PeriodTotal struct {
	Start time.Time
	Total decimal.Decimal
	Count int
}

// GroupTotal is one row of a grouped breakdown keyed by an entity id.
type GroupTotal struct {
	Key   uuid.UUID
	Total decimal.Decimal
	Count int
}

// dayStart truncates t to midnight UTC.
func dayStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// weekStart truncates t to the Monday of its ISO week, midnight UTC.
func weekStart(t time.Time) time.Time {
	d := dayStart(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// monthStart truncates t to the first day of its month, midnight UTC.
func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// periodSeries buckets the entries into a series of up to n periods ending
// with the period containing ref. Periods with no entries are omitted, so a
// window over an empty ledger yields an empty series. bucket maps a date to
// its period start; prev returns the start of the period before the given
// one.
func periodSeries(entries []adapter.LedgerEntry, ref time.Time, n int, bucket func(time.Time) time.Time, prev func(time.Time) time.Time) []PeriodTotal {
	starts := make([]time.Time, n)
	index := make(map[time.Time]int, n)
	cursor := bucket(ref)
	for i := n - 1; i >= 0; i-- {
		starts[i] = cursor
		index[cursor] = i
		if i > 0 {
			cursor = prev(cursor)
		}
	}

	buckets := make([]PeriodTotal, n)
	for i, start := range starts {
		buckets[i] = PeriodTotal{Start: start, Total: decimal.Zero}
	}
	for _, entry := range entries {
		if i, ok := index[bucket(entry.Date)]; ok {
			buckets[i].Total = buckets[i].Total.Add(entry.Amount)
			buckets[i].Count++
		}
	}
	return dropEmptyPeriods(buckets)
}

// daySeriesBetween buckets the entries into one bucket per calendar day from
// from through to, inclusive. Days with no entries are omitted.
func daySeriesBetween(entries []adapter.LedgerEntry, from, to time.Time) []PeriodTotal {
	from = dayStart(from)
	to = dayStart(to)

	var buckets []PeriodTotal
	index := make(map[time.Time]int)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		index[d] = len(buckets)
		buckets = append(buckets, PeriodTotal{Start: d, Total: decimal.Zero})
	}
	for _, entry := range entries {
		if i, ok := index[dayStart(entry.Date)]; ok {
			buckets[i].Total = buckets[i].Total.Add(entry.Amount)
			buckets[i].Count++
		}
	}
	return dropEmptyPeriods(buckets)
}

// dropEmptyPeriods keeps only the buckets at least one entry fell into. A
// bucket whose entries sum to zero still carries a count and is kept.
func dropEmptyPeriods(buckets []PeriodTotal) []PeriodTotal {
	series := make([]PeriodTotal, 0, len(buckets))
	for _, b := range buckets {
		if b.Count > 0 {
			series = append(series, b)
		}
	}
	return series
}

// groupByKey sums entries per key, omitting entries for which key returns
// nil. Groups are ordered by total descending, ties by ascending key, and
// empty groups are absent by construction.
func groupByKey(entries []adapter.LedgerEntry, key func(adapter.LedgerEntry) *uuid.UUID) []GroupTotal {
	totals := make(map[uuid.UUID]*GroupTotal)
	for _, entry := range entries {
		k := key(entry)
		if k == nil {
			continue
		}
		g, ok := totals[*k]
		if !ok {
			g = &GroupTotal{Key: *k, Total: decimal.Zero}
			totals[*k] = g
		}
		g.Total = g.Total.Add(entry.Amount)
		g.Count++
	}

	groups := make([]GroupTotal, 0, len(totals))
	for _, g := range totals {
		groups = append(groups, *g)
	}
	sortGroups(groups)
	return groups
}

// sortGroups orders groups by total descending, ties by ascending key.
func sortGroups(groups []GroupTotal) {
	sort.Slice(groups, func(i, j int) bool {
		if !groups[i].Total.Equal(groups[j].Total) {
			return groups[i].Total.GreaterThan(groups[j].Total)
		}
		return groups[i].Key.String() < groups[j].Key.String()
	})
}

// topN returns at most n leading groups.
func topN(groups []GroupTotal, n int) []GroupTotal {
	if len(groups) > n {
		return groups[:n]
	}
	return groups
}

// usagePercent returns spent/budget*100 rounded, or zero when budget is zero.
func usagePercent(spent, budget decimal.Decimal) decimal.Decimal {
	if budget.IsZero() {
		return decimal.Zero
	}
	return spent.Div(budget).Mul(decimal.NewFromInt(100)).Round(PercentPlaces)
}

// changePercent returns (current-previous)/previous*100 rounded, or zero
// when previous is zero.
func changePercent(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(PercentPlaces)
}

// sharePercent returns part/total*100 rounded, or zero when total is zero.
func sharePercent(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(decimal.NewFromInt(100)).Round(PercentPlaces)
}

// sumEntries returns the total amount and count across entries.
func sumEntries(entries []adapter.LedgerEntry) (decimal.Decimal, int) {
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.Amount)
	}
	return total, len(entries)
}
