package response

import (
	"oficina_prime/internal/domain/reports"
	"oficina_prime/internal/usecase"
)

type SummaryResponse struct {
	DailyRevenue    float64 `json:"daily_revenue"`
	WeeklyRevenue   float64 `json:"weekly_revenue"`
	MonthlyRevenue  float64 `json:"monthly_revenue"`
	DailyExpenses   float64 `json:"daily_expenses"`
	MonthlyExpenses float64 `json:"monthly_expenses"`
}

func FromSummary(s usecase.FinancialSummary) SummaryResponse {
	return SummaryResponse{
		DailyRevenue:    s.DailyRevenue,
		WeeklyRevenue:   s.WeeklyRevenue,
		MonthlyRevenue:  s.MonthlyRevenue,
		DailyExpenses:   s.DailyExpenses,
		MonthlyExpenses: s.MonthlyExpenses,
	}
}

type ChartPointResponse struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

func FromChart(points []reports.ChartPoint) []ChartPointResponse {
	out := make([]ChartPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, ChartPointResponse{
			Date:     p.Date,
			Revenue:  p.Revenue,
			Expenses: p.Expenses,
		})
	}
	return out
}
