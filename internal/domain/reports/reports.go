package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"oficina_prime/internal/domain/entities"
)

// Pure rollups over the in-memory collections. Every function rescans the
// slices it receives; nothing is cached, so results always reflect the
// latest mutation. Collections are single-shop scale, a full scan is fine.

// StockStatus is the categorical stock label shown next to inventory items.
type StockStatus string

const (
	StockStatusOut StockStatus = "OUT_OF_STOCK"
	StockStatusLow StockStatus = "LOW_STOCK"
	StockStatusIn  StockStatus = "IN_STOCK"
)

// ChartPoint is one calendar-day bucket of the revenue/expense trend series.
type ChartPoint struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

const chartDateLayout = "02/01"

// OrderTotal computes labor cost plus the sum of part price × quantity.
// Decimal arithmetic keeps part sums exact for currency values.
func OrderTotal(o entities.ServiceOrder) float64 {
	total := decimal.NewFromFloat(o.LaborCost)
	for _, p := range o.Parts {
		line := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Quantity)))
		total = total.Add(line)
	}
	return total.InexactFloat64()
}

// DailyRevenue sums completed orders whose CompletedAt falls on now's
// calendar day.
func DailyRevenue(orders []entities.ServiceOrder, now time.Time) float64 {
	return sumCompleted(orders, func(completedAt time.Time) bool {
		return sameDay(completedAt, now)
	})
}

// WeeklyRevenue sums completed orders from the trailing seven days.
func WeeklyRevenue(orders []entities.ServiceOrder, now time.Time) float64 {
	cutoff := now.AddDate(0, 0, -7)
	return sumCompleted(orders, func(completedAt time.Time) bool {
		return !completedAt.Before(cutoff)
	})
}

// MonthlyRevenue sums completed orders from now's calendar month.
func MonthlyRevenue(orders []entities.ServiceOrder, now time.Time) float64 {
	return sumCompleted(orders, func(completedAt time.Time) bool {
		return completedAt.Year() == now.Year() && completedAt.Month() == now.Month()
	})
}

// DailyExpenses sums expenses dated on now's calendar day.
func DailyExpenses(expenses []entities.Expense, now time.Time) float64 {
	return sumExpenses(expenses, func(date time.Time) bool {
		return sameDay(date, now)
	})
}

// MonthlyExpenses sums expenses from now's calendar month.
func MonthlyExpenses(expenses []entities.Expense, now time.Time) float64 {
	return sumExpenses(expenses, func(date time.Time) bool {
		return date.Year() == now.Year() && date.Month() == now.Month()
	})
}

// ItemStockStatus derives the stock label. The boundary stock == min_stock
// counts as in stock; only strictly below the threshold is low.
func ItemStockStatus(item entities.InventoryItem) StockStatus {
	switch {
	case item.Stock == 0:
		return StockStatusOut
	case item.Stock < item.MinStock:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// ProfitMargin returns the selling margin as a percentage rounded to one
// decimal place, or 0 when the purchase price is not positive.
func ProfitMargin(item entities.InventoryItem) float64 {
	if item.PurchasePrice <= 0 {
		return 0
	}
	purchase := decimal.NewFromFloat(item.PurchasePrice)
	margin := decimal.NewFromFloat(item.SellingPrice).
		Sub(purchase).
		Div(purchase).
		Mul(decimal.NewFromInt(100))
	return margin.Round(1).InexactFloat64()
}

// ChartSeries builds one bucket per calendar day for the trailing window
// ending at now, each with summed revenue and expenses. Labels use the
// dd/MM form the dashboard renders.
func ChartSeries(orders []entities.ServiceOrder, expenses []entities.Expense, days int, now time.Time) []ChartPoint {
	if days <= 0 {
		days = 7
	}

	points := make([]ChartPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		label := now.AddDate(0, 0, i-days+1).Format(chartDateLayout)
		points[i] = ChartPoint{Date: label}
		index[label] = i
	}

	revenue := make([]decimal.Decimal, days)
	expense := make([]decimal.Decimal, days)

	for _, o := range orders {
		if o.Status != entities.ServiceOrderStatusConcluido || o.CompletedAt == nil {
			continue
		}
		if i, ok := index[o.CompletedAt.Format(chartDateLayout)]; ok {
			revenue[i] = revenue[i].Add(decimal.NewFromFloat(o.Total))
		}
	}
	for _, e := range expenses {
		if i, ok := index[e.Date.Format(chartDateLayout)]; ok {
			expense[i] = expense[i].Add(decimal.NewFromFloat(e.Amount))
		}
	}

	for i := range points {
		points[i].Revenue = revenue[i].InexactFloat64()
		points[i].Expenses = expense[i].InexactFloat64()
	}
	return points
}

func sumCompleted(orders []entities.ServiceOrder, within func(time.Time) bool) float64 {
	sum := decimal.Zero
	for _, o := range orders {
		if o.Status != entities.ServiceOrderStatusConcluido || o.CompletedAt == nil {
			continue
		}
		if within(*o.CompletedAt) {
			sum = sum.Add(decimal.NewFromFloat(o.Total))
		}
	}
	return sum.InexactFloat64()
}

func sumExpenses(expenses []entities.Expense, within func(time.Time) bool) float64 {
	sum := decimal.Zero
	for _, e := range expenses {
		if within(e.Date) {
			sum = sum.Add(decimal.NewFromFloat(e.Amount))
		}
	}
	return sum.InexactFloat64()
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
