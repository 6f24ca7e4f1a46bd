package usecase

import "staradmin/internal/domain/entity"

// FinanceUsecase defines the interface for the finance reporting view.
// Everything is derived from the cached order list; Cancelled orders are
// excluded from income and shown as refunds.
type FinanceUsecase interface {
	// Summary computes the income/expense/balance card values.
	Summary() FinanceSummary
	// RevenueSeries buckets non-cancelled order totals over a time range.
	// Accepted range keys: 24h, 3d, 1w, 1m.
	RevenueSeries(rangeKey string) (RevenueSeries, error)
	// Refunds lists cancelled orders as refund rows.
	Refunds() []entity.Order
}

// FinanceSummary is the headline numbers of the finance view. Expenses
// are estimated as a fixed share of income; the backend tracks no real
// cost data.
type FinanceSummary struct {
	TotalIncome float64 `json:"total_income"`
	Expenses    float64 `json:"expenses"`
	Balance     float64 `json:"balance"`
	Orders      int     `json:"orders"`
	Refunds     int     `json:"refunds"`
}

// RevenueSeries is one chart's worth of bucketed revenue.
type RevenueSeries struct {
	Range  string    `json:"range"`
	Labels []string  `json:"labels"`
	Points []float64 `json:"points"`
}

// DashboardUsecase defines the interface for the landing view numbers.
type DashboardUsecase interface {
	Stats() DashboardStats
	RecentOrders(limit int) []entity.Order
}

// DashboardStats is the stat-card row of the dashboard.
type DashboardStats struct {
	Products     int     `json:"products"`
	Orders       int     `json:"orders"`
	Processing   int     `json:"processing"`
	Customers    int     `json:"customers"`
	TotalRevenue float64 `json:"total_revenue"`
}
