package services

import (
	"testing"
	"time"

	"bento-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReportRangeDefaults(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		period    string
		wantStart string
	}{
		{period: "daily", wantStart: "2024-03-08"},
		{period: "weekly", wantStart: "2024-02-14"},
		{period: "monthly", wantStart: "2023-12-16"},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			start, end, err := ResolveReportRange(tt.period, "", "", now)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start.Format("2006-01-02"))
			assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), end)
		})
	}
}

func TestResolveReportRangeExplicit(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	start, end, err := ResolveReportRange("daily", "2024-01-01", "2024-01-03", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), end)
}

func TestResolveReportRangeKeepsSubSecondOrders(t *testing.T) {
	_, end, err := ResolveReportRange("daily", "2024-01-01", "2024-01-03", time.Now())
	require.NoError(t, err)

	// an order placed at 23:59:59.5 on the last day must fall inside the
	// half-open [start, end) window
	lastMoment := time.Date(2024, 1, 3, 23, 59, 59, 500_000_000, time.UTC)
	assert.True(t, lastMoment.Before(end))
	assert.False(t, end.Before(lastMoment))
}

func TestResolveReportRangeInvalidDates(t *testing.T) {
	now := time.Now()

	_, _, err := ResolveReportRange("daily", "2024-13-99", "", now)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, _, err = ResolveReportRange("daily", "", "not-a-date", now)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)

	_, _, err = ResolveReportRange("daily", "01/02/2024", "", now)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestBuildSalesReportZeroFillsEmptyDays(t *testing.T) {
	start, end, err := ResolveReportRange("daily", "2024-01-01", "2024-01-03", time.Now())
	require.NoError(t, err)

	rows := []MenuDaySales{
		{Date: "2024-01-01", MenuID: 1, MenuName: "Karaage Bento", Orders: 2, Quantity: 3, Sales: 300},
		{Date: "2024-01-03", MenuID: 2, MenuName: "Yakiniku Bento", Orders: 1, Quantity: 1, Sales: 200},
	}

	report := BuildSalesReport("daily", start, end, rows)

	require.Len(t, report.DailyReports, 3)

	assert.Equal(t, "2024-01-01", report.DailyReports[0].Date)
	assert.Equal(t, 2, report.DailyReports[0].TotalOrders)
	assert.Equal(t, 300, report.DailyReports[0].TotalSales)
	require.NotNil(t, report.DailyReports[0].PopularMenu)
	assert.Equal(t, "Karaage Bento", *report.DailyReports[0].PopularMenu)

	assert.Equal(t, "2024-01-02", report.DailyReports[1].Date)
	assert.Equal(t, 0, report.DailyReports[1].TotalOrders)
	assert.Equal(t, 0, report.DailyReports[1].TotalSales)
	assert.Nil(t, report.DailyReports[1].PopularMenu)

	assert.Equal(t, 500, report.TotalSales)
	assert.Equal(t, 3, report.TotalOrders)
}

func TestBuildSalesReportTotalsReconcile(t *testing.T) {
	start, end, err := ResolveReportRange("weekly", "2024-01-01", "2024-01-07", time.Now())
	require.NoError(t, err)

	rows := []MenuDaySales{
		{Date: "2024-01-01", MenuID: 1, MenuName: "Karaage Bento", Orders: 3, Quantity: 5, Sales: 2500},
		{Date: "2024-01-01", MenuID: 2, MenuName: "Salmon Bento", Orders: 1, Quantity: 2, Sales: 1600},
		{Date: "2024-01-04", MenuID: 2, MenuName: "Salmon Bento", Orders: 2, Quantity: 2, Sales: 1600},
		{Date: "2024-01-07", MenuID: 3, MenuName: "Vegetarian Bento", Orders: 1, Quantity: 1, Sales: 550},
	}

	report := BuildSalesReport("weekly", start, end, rows)

	var daySales, dayOrders int
	for _, daily := range report.DailyReports {
		daySales += daily.TotalSales
		dayOrders += daily.TotalOrders
	}
	assert.Equal(t, report.TotalSales, daySales)
	assert.Equal(t, report.TotalOrders, dayOrders)

	var menuSales int
	for _, menu := range report.MenuReports {
		menuSales += menu.TotalSales
	}
	assert.Equal(t, report.TotalSales, menuSales)
}

func TestBuildSalesReportPopularMenuTieBreak(t *testing.T) {
	start, end, err := ResolveReportRange("daily", "2024-01-01", "2024-01-01", time.Now())
	require.NoError(t, err)

	rows := []MenuDaySales{
		{Date: "2024-01-01", MenuID: 5, MenuName: "Salmon Bento", Orders: 1, Quantity: 4, Sales: 3200},
		{Date: "2024-01-01", MenuID: 2, MenuName: "Yakiniku Bento", Orders: 2, Quantity: 4, Sales: 2800},
		{Date: "2024-01-01", MenuID: 7, MenuName: "Karaage Bento", Orders: 1, Quantity: 3, Sales: 1500},
	}

	report := BuildSalesReport("daily", start, end, rows)

	require.Len(t, report.DailyReports, 1)
	require.NotNil(t, report.DailyReports[0].PopularMenu)
	assert.Equal(t, "Yakiniku Bento", *report.DailyReports[0].PopularMenu,
		"equal quantities must resolve to the lowest menu id")
}

func TestBuildSalesReportMenuOrdering(t *testing.T) {
	start, end, err := ResolveReportRange("daily", "2024-01-01", "2024-01-02", time.Now())
	require.NoError(t, err)

	rows := []MenuDaySales{
		{Date: "2024-01-01", MenuID: 1, MenuName: "Karaage Bento", Orders: 1, Quantity: 1, Sales: 500},
		{Date: "2024-01-02", MenuID: 1, MenuName: "Karaage Bento", Orders: 1, Quantity: 1, Sales: 500},
		{Date: "2024-01-01", MenuID: 2, MenuName: "Yakiniku Bento", Orders: 1, Quantity: 2, Sales: 1400},
		{Date: "2024-01-01", MenuID: 3, MenuName: "Makunouchi Bento", Orders: 1, Quantity: 1, Sales: 1000},
	}

	report := BuildSalesReport("daily", start, end, rows)

	require.Len(t, report.MenuReports, 3)
	assert.Equal(t, 2, report.MenuReports[0].MenuID)
	assert.Equal(t, 1, report.MenuReports[1].MenuID)
	assert.Equal(t, 2, report.MenuReports[1].TotalQuantity)
	assert.Equal(t, 1000, report.MenuReports[1].TotalSales)
	assert.Equal(t, 3, report.MenuReports[2].MenuID)
}

func TestBuildSalesReportNoOrders(t *testing.T) {
	start, end, err := ResolveReportRange("daily", "2024-01-01", "2024-01-03", time.Now())
	require.NoError(t, err)

	report := BuildSalesReport("daily", start, end, nil)

	assert.Len(t, report.DailyReports, 3)
	assert.Empty(t, report.MenuReports)
	assert.NotNil(t, report.MenuReports)
	assert.Zero(t, report.TotalSales)
	assert.Zero(t, report.TotalOrders)
	assert.Equal(t, "2024-01-01", report.StartDate)
	assert.Equal(t, "2024-01-03", report.EndDate)
}

func TestBuildOrderSummary(t *testing.T) {
	rows := []StatusCount{
		{Status: models.OrderStatusPending, Orders: 2, Sales: 1000},
		{Status: models.OrderStatusPreparing, Orders: 1, Sales: 700},
		{Status: models.OrderStatusCompleted, Orders: 3, Sales: 2400},
		{Status: models.OrderStatusCancelled, Orders: 2, Sales: 1600},
	}

	summary := BuildOrderSummary(rows)

	assert.Equal(t, 8, summary.TotalOrders)
	assert.Equal(t, 2, summary.PendingOrders)
	assert.Equal(t, 0, summary.ConfirmedOrders)
	assert.Equal(t, 1, summary.PreparingOrders)
	assert.Equal(t, 0, summary.ReadyOrders)
	assert.Equal(t, 3, summary.CompletedOrders)
	assert.Equal(t, 2, summary.CancelledOrders)
	assert.Equal(t, 4100, summary.TotalSales, "cancelled orders must not contribute to sales")
}
