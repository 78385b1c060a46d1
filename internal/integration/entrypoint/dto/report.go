package dto

import (
	"github.com/construction-tracker/backend/internal/application/usecase/report"
)

// PeriodTotalResponse is one bucket of a time series.
type PeriodTotalResponse struct {
	Start string `json:"start"`
	Total string `json:"total"`
	Count int    `json:"count"`
}

// CategoryBreakdownResponse is one row of a per-category breakdown.
type CategoryBreakdownResponse struct {
	Category     CategorySummary `json:"category"`
	Total        string          `json:"total"`
	Count        int             `json:"count"`
	SharePercent string          `json:"share_percent"`
}

// BuildingBreakdownResponse is one row of a per-building breakdown.
type BuildingBreakdownResponse struct {
	Building     BuildingSummary `json:"building"`
	Total        string          `json:"total"`
	Count        int             `json:"count"`
	SharePercent string          `json:"share_percent"`
}

// UncategorizedResponse totals the expenses without a category.
type UncategorizedResponse struct {
	Total string `json:"total"`
	Count int    `json:"count"`
}

// OwnerTotalResponse is one row of a per-owner ranking.
type OwnerTotalResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Total    string `json:"total"`
	Count    int    `json:"count"`
}

// BuildingRankingResponse is one row of the dashboard top buildings ranking.
type BuildingRankingResponse struct {
	Building     BuildingResponse `json:"building"`
	ExpenseCount int              `json:"expense_count"`
	ExpenseTotal string           `json:"expense_total"`
}

// DashboardResponse represents the dashboard report body.
type DashboardResponse struct {
	BuildingCount     int                       `json:"building_count"`
	BuildingsByStatus map[string]int            `json:"buildings_by_status"`
	TotalBudget       string                    `json:"total_budget"`
	TotalSpent        string                    `json:"total_spent"`
	TotalRemaining    string                    `json:"total_remaining"`
	ExpenseCount      int                       `json:"expense_count"`
	ExpenseTotal      string                    `json:"expense_total"`
	TopBuildings      []BuildingRankingResponse `json:"top_buildings"`
	RecentExpenses    []ExpenseResponse         `json:"recent_expenses"`
}

// ComparisonRowResponse is one row of the building comparison report.
type ComparisonRowResponse struct {
	Building     BuildingResponse `json:"building"`
	Remaining    string           `json:"remaining"`
	UsagePercent string           `json:"usage_percent"`
	ExpenseCount int              `json:"expense_count"`
	ExpenseTotal string           `json:"expense_total"`
}

// ComparisonResponse represents the building comparison report body.
type ComparisonResponse struct {
	Buildings []ComparisonRowResponse `json:"buildings"`
}

// MonthReportResponse represents the calendar month report body.
type MonthReportResponse struct {
	Year          int                         `json:"year"`
	Month         int                         `json:"month"`
	Total         string                      `json:"total"`
	Count         int                         `json:"count"`
	ByCategory    []CategoryBreakdownResponse `json:"by_category"`
	Uncategorized UncategorizedResponse       `json:"uncategorized"`
	ByBuilding    []BuildingBreakdownResponse `json:"by_building"`
	ByDay         []PeriodTotalResponse       `json:"by_day"`
}

// WeekReportResponse represents the rolling weekly totals report body.
type WeekReportResponse struct {
	Weeks        []PeriodTotalResponse `json:"weeks"`
	Average      string                `json:"average"`
	Delta        string                `json:"delta"`
	DeltaPercent string                `json:"delta_percent"`
}

// BuildingStatsResponse represents the per-building statistics body.
type BuildingStatsResponse struct {
	Building        BuildingResponse            `json:"building"`
	Remaining       string                      `json:"remaining"`
	UsagePercent    string                      `json:"usage_percent"`
	Count           int                         `json:"count"`
	Total           string                      `json:"total"`
	Average         string                      `json:"average"`
	Max             string                      `json:"max"`
	ByCategory      []CategoryBreakdownResponse `json:"by_category"`
	Uncategorized   UncategorizedResponse       `json:"uncategorized"`
	ByWeek          []PeriodTotalResponse       `json:"by_week"`
	TopContributors []OwnerTotalResponse        `json:"top_contributors,omitempty"`
	RecentExpenses  []ExpenseResponse           `json:"recent_expenses"`
}

// LedgerStatsResponse represents the ledger-wide statistics body.
type LedgerStatsResponse struct {
	Count         int                         `json:"count"`
	Total         string                      `json:"total"`
	Average       string                      `json:"average"`
	Max           string                      `json:"max"`
	Min           string                      `json:"min"`
	ByCategory    []CategoryBreakdownResponse `json:"by_category"`
	Uncategorized UncategorizedResponse       `json:"uncategorized"`
	ByBuilding    []BuildingBreakdownResponse `json:"by_building"`
	ByDay         []PeriodTotalResponse       `json:"by_day"`
	ByWeek        []PeriodTotalResponse       `json:"by_week"`
	ByMonth       []PeriodTotalResponse       `json:"by_month"`
	TopOwners     []OwnerTotalResponse        `json:"top_owners,omitempty"`
}

func toPeriodTotalResponses(periods []report.PeriodTotal) []PeriodTotalResponse {
	out := make([]PeriodTotalResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, PeriodTotalResponse{
			Start: p.Start.Format("2006-01-02"),
			Total: p.Total.String(),
			Count: p.Count,
		})
	}
	return out
}

func toCategoryBreakdownResponses(rows []report.CategoryBreakdownRow) []CategoryBreakdownResponse {
	out := make([]CategoryBreakdownResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, CategoryBreakdownResponse{
			Category: CategorySummary{
				ID:   row.Category.ID.String(),
				Name: row.Category.Name,
				Slug: row.Category.Slug,
			},
			Total:        row.Total.String(),
			Count:        row.Count,
			SharePercent: row.SharePercent.String(),
		})
	}
	return out
}

func toBuildingBreakdownResponses(rows []report.BuildingBreakdownRow) []BuildingBreakdownResponse {
	out := make([]BuildingBreakdownResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, BuildingBreakdownResponse{
			Building: BuildingSummary{
				ID:   row.Building.ID.String(),
				Name: row.Building.Name,
			},
			Total:        row.Total.String(),
			Count:        row.Count,
			SharePercent: row.SharePercent.String(),
		})
	}
	return out
}

func toOwnerTotalResponses(rows []report.OwnerTotal) []OwnerTotalResponse {
	out := make([]OwnerTotalResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, OwnerTotalResponse{
			UserID:   row.User.ID.String(),
			Username: row.User.Username,
			Total:    row.Total.String(),
			Count:    row.Count,
		})
	}
	return out
}

func toUncategorizedResponse(summary report.UncategorizedSummary) UncategorizedResponse {
	return UncategorizedResponse{
		Total: summary.Total.String(),
		Count: summary.Count,
	}
}

// ToDashboardResponse converts the dashboard report output to its response body.
func ToDashboardResponse(output *report.DashboardOutput) DashboardResponse {
	byStatus := make(map[string]int, len(output.BuildingsByStatus))
	for status, count := range output.BuildingsByStatus {
		byStatus[string(status)] = count
	}

	topBuildings := make([]BuildingRankingResponse, 0, len(output.TopBuildings))
	for _, ranking := range output.TopBuildings {
		topBuildings = append(topBuildings, BuildingRankingResponse{
			Building:     ToBuildingResponse(ranking.Building),
			ExpenseCount: ranking.ExpenseCount,
			ExpenseTotal: ranking.ExpenseTotal.String(),
		})
	}

	recent := make([]ExpenseResponse, 0, len(output.RecentExpenses))
	for _, row := range output.RecentExpenses {
		recent = append(recent, ToExpenseResponse(row))
	}

	return DashboardResponse{
		BuildingCount:     output.BuildingCount,
		BuildingsByStatus: byStatus,
		TotalBudget:       output.TotalBudget.String(),
		TotalSpent:        output.TotalSpent.String(),
		TotalRemaining:    output.TotalRemaining.String(),
		ExpenseCount:      output.ExpenseCount,
		ExpenseTotal:      output.ExpenseTotal.String(),
		TopBuildings:      topBuildings,
		RecentExpenses:    recent,
	}
}

// ToComparisonResponse converts the comparison report output to its response body.
func ToComparisonResponse(output *report.ComparisonOutput) ComparisonResponse {
	buildings := make([]ComparisonRowResponse, 0, len(output.Buildings))
	for _, row := range output.Buildings {
		buildings = append(buildings, ComparisonRowResponse{
			Building:     ToBuildingResponse(row.Building),
			Remaining:    row.Remaining.String(),
			UsagePercent: row.UsagePercent.String(),
			ExpenseCount: row.ExpenseCount,
			ExpenseTotal: row.ExpenseTotal.String(),
		})
	}
	return ComparisonResponse{Buildings: buildings}
}

// ToMonthReportResponse converts the month report output to its response body.
func ToMonthReportResponse(output *report.MonthReportOutput) MonthReportResponse {
	return MonthReportResponse{
		Year:          output.Year,
		Month:         int(output.Month),
		Total:         output.Total.String(),
		Count:         output.Count,
		ByCategory:    toCategoryBreakdownResponses(output.ByCategory),
		Uncategorized: toUncategorizedResponse(output.Uncategorized),
		ByBuilding:    toBuildingBreakdownResponses(output.ByBuilding),
		ByDay:         toPeriodTotalResponses(output.ByDay),
	}
}

// ToWeekReportResponse converts the week report output to its response body.
func ToWeekReportResponse(output *report.WeekReportOutput) WeekReportResponse {
	return WeekReportResponse{
		Weeks:        toPeriodTotalResponses(output.Weeks),
		Average:      output.Average.String(),
		Delta:        output.Delta.String(),
		DeltaPercent: output.DeltaPercent.String(),
	}
}

// ToBuildingStatsResponse converts the building statistics output to its response body.
func ToBuildingStatsResponse(output *report.BuildingStatsOutput) BuildingStatsResponse {
	recent := make([]ExpenseResponse, 0, len(output.RecentExpenses))
	for _, row := range output.RecentExpenses {
		recent = append(recent, ToExpenseResponse(row))
	}

	return BuildingStatsResponse{
		Building:        ToBuildingResponse(output.Building),
		Remaining:       output.Remaining.String(),
		UsagePercent:    output.UsagePercent.String(),
		Count:           output.Count,
		Total:           output.Total.String(),
		Average:         output.Average.String(),
		Max:             output.Max.String(),
		ByCategory:      toCategoryBreakdownResponses(output.ByCategory),
		Uncategorized:   toUncategorizedResponse(output.Uncategorized),
		ByWeek:          toPeriodTotalResponses(output.ByWeek),
		TopContributors: toOwnerTotalResponses(output.TopContributors),
		RecentExpenses:  recent,
	}
}

// ToLedgerStatsResponse converts the ledger statistics output to its response body.
func ToLedgerStatsResponse(output *report.LedgerStatsOutput) LedgerStatsResponse {
	return LedgerStatsResponse{
		Count:         output.Count,
		Total:         output.Total.String(),
		Average:       output.Average.String(),
		Max:           output.Max.String(),
		Min:           output.Min.String(),
		ByCategory:    toCategoryBreakdownResponses(output.ByCategory),
		Uncategorized: toUncategorizedResponse(output.Uncategorized),
		ByBuilding:    toBuildingBreakdownResponses(output.ByBuilding),
		ByDay:         toPeriodTotalResponses(output.ByDay),
		ByWeek:        toPeriodTotalResponses(output.ByWeek),
		ByMonth:       toPeriodTotalResponses(output.ByMonth),
		TopOwners:     toOwnerTotalResponses(output.TopOwners),
	}
}
