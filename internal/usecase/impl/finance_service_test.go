package impl

import (
	"testing"
	"time"

	"staradmin/internal/domain/entity"
	"staradmin/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func financeAt(state *store.State, now time.Time) *financeService {
	srv := NewFinanceService(state).(*financeService)
	srv.now = func() time.Time { return now }

	return srv
}

func TestSummary_ExcludesCancelledAndEstimatesExpenses(t *testing.T) {
	state := store.NewState()
	state.Orders.ReplaceAll([]entity.Order{
		{ID: "a", Price: 100, Status: entity.OrderDelivered},
		{ID: "b", Price: 50, Status: entity.OrderProcessing},
		{ID: "c", Price: 999, Status: entity.OrderCancelled},
	})
	srv := financeAt(state, time.Now())

	summary := srv.Summary()
	assert.InDelta(t, 150, summary.TotalIncome, 1e-9)
	assert.InDelta(t, 97.5, summary.Expenses, 1e-9, "expenses are 65% of income")
	assert.InDelta(t, 52.5, summary.Balance, 1e-9)
	assert.Equal(t, 2, summary.Orders)
	assert.Equal(t, 1, summary.Refunds)

	refunds := srv.Refunds()
	require.Len(t, refunds, 1)
	assert.Equal(t, "c", refunds[0].ID)
}

func TestRevenueSeries_24HourBuckets(t *testing.T) {
	now := time.Date(2026, 8, 28, 18, 0, 0, 0, time.UTC)
	state := store.NewState()
	state.Orders.ReplaceAll([]entity.Order{
		// 22 hours ago -> first bucket.
		{ID: "a", Price: 10, Status: entity.OrderDelivered, CreatedAt: now.Add(-22 * time.Hour).UnixMilli()},
		// 1 hour ago -> last bucket.
		{ID: "b", Price: 30, Status: entity.OrderProcessing, CreatedAt: now.Add(-time.Hour).UnixMilli()},
		// Cancelled orders never count.
		{ID: "c", Price: 500, Status: entity.OrderCancelled, CreatedAt: now.Add(-time.Hour).UnixMilli()},
		// Outside the window.
		{ID: "d", Price: 70, Status: entity.OrderDelivered, CreatedAt: now.Add(-30 * time.Hour).UnixMilli()},
	})
	srv := financeAt(state, now)

	series, err := srv.RevenueSeries("24h")
	require.NoError(t, err)
	assert.Equal(t, []string{"00:00", "04:00", "08:00", "12:00", "16:00", "20:00", "23:59"}, series.Labels)
	require.Len(t, series.Points, 7)
	assert.InDelta(t, 10, series.Points[0], 1e-9)
	assert.InDelta(t, 30, series.Points[5], 1e-9)
	assert.InDelta(t, series.Points[5], series.Points[6], 1e-9, "closing tick repeats the last bucket")
}

func TestRevenueSeries_ThreeDayLabels(t *testing.T) {
	// 2026-08-28 is a Friday.
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	state := store.NewState()
	state.Orders.ReplaceAll([]entity.Order{
		{ID: "a", Price: 40, Status: entity.OrderDelivered, CreatedAt: now.UnixMilli()},
		{ID: "b", Price: 25, Status: entity.OrderDelivered, CreatedAt: now.AddDate(0, 0, -2).UnixMilli()},
	})
	srv := financeAt(state, now)

	series, err := srv.RevenueSeries("3d")
	require.NoError(t, err)
	assert.Equal(t, []string{"26 Avg", "27 Avg", "Bugun"}, series.Labels)
	assert.InDelta(t, 25, series.Points[0], 1e-9)
	assert.InDelta(t, 0, series.Points[1], 1e-9)
	assert.InDelta(t, 40, series.Points[2], 1e-9)
}

func TestRevenueSeries_WeekUsesUzbekDayNames(t *testing.T) {
	// Friday.
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	srv := financeAt(store.NewState(), now)

	series, err := srv.RevenueSeries("1w")
	require.NoError(t, err)
	// Saturday six days ago through Friday today.
	assert.Equal(t, []string{"Shan", "Yak", "Du", "Se", "Chor", "Pay", "Jum"}, series.Labels)
	assert.Len(t, series.Points, 7)
}

func TestRevenueSeries_MonthBucketsMondayWeeks(t *testing.T) {
	// Friday 2026-08-28; current week starts Monday 2026-08-24.
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	state := store.NewState()
	state.Orders.ReplaceAll([]entity.Order{
		// This week.
		{ID: "a", Price: 10, Status: entity.OrderDelivered, CreatedAt: time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC).UnixMilli()},
		// Three weeks back (week of Aug 3).
		{ID: "b", Price: 20, Status: entity.OrderDelivered, CreatedAt: time.Date(2026, 8, 5, 9, 0, 0, 0, time.UTC).UnixMilli()},
	})
	srv := financeAt(state, now)

	series, err := srv.RevenueSeries("1m")
	require.NoError(t, err)
	assert.Equal(t, []string{"1-Hafta", "2-Hafta", "3-Hafta", "4-Hafta"}, series.Labels)
	assert.InDelta(t, 20, series.Points[0], 1e-9)
	assert.InDelta(t, 10, series.Points[3], 1e-9)
}

func TestRevenueSeries_UnknownRange(t *testing.T) {
	srv := financeAt(store.NewState(), time.Now())

	_, err := srv.RevenueSeries("1y")
	assert.Error(t, err)
}

func TestOrderTime_Fallbacks(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	srv := financeAt(store.NewState(), now)

	epoch := srv.orderTime(entity.Order{CreatedAt: now.UnixMilli()})
	assert.Equal(t, now.UnixMilli(), epoch.UnixMilli())

	dated := srv.orderTime(entity.Order{Date: "2026-08-20"})
	assert.Equal(t, 20, dated.Day())

	blank := srv.orderTime(entity.Order{})
	assert.Equal(t, now, blank)
}

func TestDashboardStats(t *testing.T) {
	state := store.NewState()
	state.Products.ReplaceAll([]entity.Product{{ID: "p1"}, {ID: "p2"}})
	state.Customers.ReplaceAll([]entity.Customer{{ID: "c1"}})
	state.Orders.ReplaceAll([]entity.Order{
		{ID: "a", Price: 100, Status: entity.OrderProcessing},
		{ID: "b", Price: 60, Status: entity.OrderCancelled},
	})
	srv := NewDashboardService(state)

	stats := srv.Stats()
	assert.Equal(t, 2, stats.Products)
	assert.Equal(t, 2, stats.Orders)
	assert.Equal(t, 1, stats.Processing)
	assert.Equal(t, 1, stats.Customers)
	assert.InDelta(t, 100, stats.TotalRevenue, 1e-9)

	recent := srv.RecentOrders(1)
	require.Len(t, recent, 1)
	assert.Equal(t, "a", recent[0].ID)
}
