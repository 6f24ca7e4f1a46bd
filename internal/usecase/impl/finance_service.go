package impl

import (
	"fmt"
	"time"

	"staradmin/internal/domain/entity"
	domainerrors "staradmin/internal/domain/errors"
	"staradmin/internal/store"
	"staradmin/internal/usecase"
)

// expenseShare estimates operating costs as a fixed share of income;
// the backend tracks no real cost data.
const expenseShare = 0.65

// Uzbek day names indexed by time.Weekday (Sunday first).
var uzbekWeekdays = [7]string{"Yak", "Du", "Se", "Chor", "Pay", "Jum", "Shan"}

// Uzbek month short names indexed by time.Month - 1.
var uzbekMonths = [12]string{
	"Yan", "Fev", "Mar", "Apr", "May", "Iyn",
	"Iyl", "Avg", "Sen", "Okt", "Noy", "Dek",
}

// financeService implements the FinanceUsecase and DashboardUsecase
// interfaces over the cached order list.
type financeService struct {
	state *store.State
	now   func() time.Time
}

// NewFinanceService is the constructor for financeService.
func NewFinanceService(state *store.State) usecase.FinanceUsecase {
	return &financeService{state: state, now: time.Now}
}

// NewDashboardService exposes the same derivations as the dashboard
// interface.
func NewDashboardService(state *store.State) usecase.DashboardUsecase {
	return &financeService{state: state, now: time.Now}
}

// Summary computes the income/expense/balance card values. Cancelled
// orders are excluded from income.
func (srv *financeService) Summary() usecase.FinanceSummary {
	var income float64
	refunds := 0
	for _, order := range srv.state.Orders.Items() {
		if order.Status == entity.OrderCancelled {
			refunds++

			continue
		}
		income += order.Price
	}

	expenses := income * expenseShare

	return usecase.FinanceSummary{
		TotalIncome: income,
		Expenses:    expenses,
		Balance:     income - expenses,
		Orders:      srv.state.Orders.Len() - refunds,
		Refunds:     refunds,
	}
}

// Refunds lists cancelled orders as refund rows.
func (srv *financeService) Refunds() []entity.Order {
	var out []entity.Order
	for _, order := range srv.state.Orders.Items() {
		if order.Status == entity.OrderCancelled {
			out = append(out, order)
		}
	}

	return out
}

// RevenueSeries buckets non-cancelled order totals over a time range.
func (srv *financeService) RevenueSeries(rangeKey string) (usecase.RevenueSeries, error) {
	switch rangeKey {
	case "24h":
		return srv.last24Hours(), nil
	case "3d":
		return srv.lastDays(3), nil
	case "1w":
		return srv.lastDays(7), nil
	case "1m":
		return srv.lastFourWeeks(), nil
	default:
		return usecase.RevenueSeries{}, domainerrors.ErrInvalidInput.WithDetails("unknown revenue range: " + rangeKey)
	}
}

// last24Hours splits the day into six 4-hour buckets. The label row
// carries a closing 23:59 tick, so the last bucket value is repeated to
// keep labels and points the same length.
func (srv *financeService) last24Hours() usecase.RevenueSeries {
	now := srv.now()
	start := now.Add(-24 * time.Hour)

	points := make([]float64, 6)
	for _, order := range srv.state.Orders.Items() {
		if order.Status == entity.OrderCancelled {
			continue
		}
		t := srv.orderTime(order)
		if t.Before(start) || t.After(now) {
			continue
		}
		bucket := int(t.Sub(start).Hours() / 4)
		if bucket > 5 {
			bucket = 5
		}
		points[bucket] += order.Price
	}

	return usecase.RevenueSeries{
		Range:  "24h",
		Labels: []string{"00:00", "04:00", "08:00", "12:00", "16:00", "20:00", "23:59"},
		Points: append(points, points[5]),
	}
}

// lastDays buckets by calendar day, oldest first, today last.
func (srv *financeService) lastDays(days int) usecase.RevenueSeries {
	now := srv.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	labels := make([]string, days)
	points := make([]float64, days)
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, i-days+1)
		switch {
		case days == 7:
			labels[i] = uzbekWeekdays[day.Weekday()]
		case day.Equal(today):
			labels[i] = "Bugun"
		default:
			labels[i] = fmt.Sprintf("%d %s", day.Day(), uzbekMonths[day.Month()-1])
		}
	}

	for _, order := range srv.state.Orders.Items() {
		if order.Status == entity.OrderCancelled {
			continue
		}
		t := srv.orderTime(order)
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
		offset := int(day.Sub(today).Hours()/24) + days - 1
		if offset < 0 || offset >= days {
			continue
		}
		points[offset] += order.Price
	}

	rangeKey := "3d"
	if days == 7 {
		rangeKey = "1w"
	}

	return usecase.RevenueSeries{Range: rangeKey, Labels: labels, Points: points}
}

// lastFourWeeks buckets by Monday-anchored weeks, oldest first.
func (srv *financeService) lastFourWeeks() usecase.RevenueSeries {
	now := srv.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// Walk back to Monday of the current week.
	offset := (int(today.Weekday()) + 6) % 7
	currentWeek := today.AddDate(0, 0, -offset)

	labels := make([]string, 4)
	points := make([]float64, 4)
	for i := 0; i < 4; i++ {
		labels[i] = fmt.Sprintf("%d-Hafta", i+1)
	}

	for _, order := range srv.state.Orders.Items() {
		if order.Status == entity.OrderCancelled {
			continue
		}
		t := srv.orderTime(order)
		for i := 0; i < 4; i++ {
			weekStart := currentWeek.AddDate(0, 0, -7*(3-i))
			weekEnd := weekStart.AddDate(0, 0, 7)
			if !t.Before(weekStart) && t.Before(weekEnd) {
				points[i] += order.Price

				break
			}
		}
	}

	return usecase.RevenueSeries{Range: "1m", Labels: labels, Points: points}
}

// orderTime resolves an order's timestamp: the epoch field first, then
// the display date, then now.
func (srv *financeService) orderTime(order entity.Order) time.Time {
	if order.CreatedAt != 0 {
		return time.UnixMilli(order.CreatedAt)
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339, "02.01.2006"} {
		if t, err := time.Parse(layout, order.Date); err == nil {
			return t
		}
	}

	return srv.now()
}

// Stats derives the dashboard stat cards.
func (srv *financeService) Stats() usecase.DashboardStats {
	processing := 0
	var revenue float64
	for _, order := range srv.state.Orders.Items() {
		if order.Status == entity.OrderProcessing {
			processing++
		}
		if order.Status != entity.OrderCancelled {
			revenue += order.Price
		}
	}

	return usecase.DashboardStats{
		Products:     srv.state.Products.Len(),
		Orders:       srv.state.Orders.Len(),
		Processing:   processing,
		Customers:    srv.state.Customers.Len(),
		TotalRevenue: revenue,
	}
}

// RecentOrders returns the newest orders for the dashboard table.
func (srv *financeService) RecentOrders(limit int) []entity.Order {
	orders := srv.state.Orders.Items()
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}

	return orders
}
