package services

import (
	"errors"
	"sort"
	"time"

	"bento-shop/models"
)

const dateLayout = "2006-01-02"

var ErrInvalidDateFormat = errors.New("invalid date format. Use YYYY-MM-DD")

// MenuDaySales is one row of the day-by-menu grouped sales query.
// Cancelled orders are excluded at query time.
type MenuDaySales struct {
	Date     string
	MenuID   int
	MenuName string
	Orders   int
	Quantity int
	Sales    int
}

// StatusCount is one row of the dashboard status breakdown query.
type StatusCount struct {
	Status string
	Orders int
	Sales  int
}

// ResolveReportRange applies the per-period default window when dates
// are not given: daily looks back 7 days, weekly 30, monthly 90, always
// ending today. The returned end is the exclusive midnight after the
// last day, so sub-second timestamps on that day stay in range.
func ResolveReportRange(period, startDate, endDate string, now time.Time) (time.Time, time.Time, error) {
	if startDate == "" {
		var back int
		switch period {
		case "daily":
			back = 7
		case "weekly":
			back = 30
		default:
			back = 90
		}
		startDate = now.AddDate(0, 0, -back).Format(dateLayout)
	}
	if endDate == "" {
		endDate = now.Format(dateLayout)
	}

	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}

	end = end.AddDate(0, 0, 1)
	return start, end, nil
}

// BuildSalesReport assembles the full report from day-by-menu rows:
// per-day buckets for every calendar day in the range (empty days
// zero-filled), per-menu totals sorted by sales, and grand totals
// computed as the sum of the daily figures so they always reconcile.
func BuildSalesReport(period string, start, end time.Time, rows []MenuDaySales) models.SalesReport {
	byDay := map[string][]MenuDaySales{}
	for _, row := range rows {
		byDay[row.Date] = append(byDay[row.Date], row)
	}

	lastDay := end.AddDate(0, 0, -1)
	report := models.SalesReport{
		Period:       period,
		StartDate:    start.Format(dateLayout),
		EndDate:      lastDay.Format(dateLayout),
		DailyReports: []models.DailySalesReport{},
		MenuReports:  []models.MenuSalesReport{},
	}

	for day := start; !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		daily := models.DailySalesReport{Date: key}

		var popular *MenuDaySales
		for i := range byDay[key] {
			row := &byDay[key][i]
			daily.TotalOrders += row.Orders
			daily.TotalSales += row.Sales
			if popular == nil || row.Quantity > popular.Quantity ||
				(row.Quantity == popular.Quantity && row.MenuID < popular.MenuID) {
				popular = row
			}
		}
		if popular != nil {
			name := popular.MenuName
			daily.PopularMenu = &name
		}

		report.DailyReports = append(report.DailyReports, daily)
		report.TotalOrders += daily.TotalOrders
		report.TotalSales += daily.TotalSales
	}

	menuTotals := map[int]*models.MenuSalesReport{}
	for _, row := range rows {
		entry, ok := menuTotals[row.MenuID]
		if !ok {
			entry = &models.MenuSalesReport{MenuID: row.MenuID, MenuName: row.MenuName}
			menuTotals[row.MenuID] = entry
		}
		entry.TotalQuantity += row.Quantity
		entry.TotalSales += row.Sales
	}
	for _, entry := range menuTotals {
		report.MenuReports = append(report.MenuReports, *entry)
	}
	sort.Slice(report.MenuReports, func(i, j int) bool {
		a, b := report.MenuReports[i], report.MenuReports[j]
		if a.TotalSales != b.TotalSales {
			return a.TotalSales > b.TotalSales
		}
		return a.MenuID < b.MenuID
	})

	return report
}

// BuildOrderSummary folds the per-status rows into the dashboard
// payload. Cancelled orders count towards totals but not sales.
func BuildOrderSummary(rows []StatusCount) models.OrderSummary {
	var summary models.OrderSummary
	for _, row := range rows {
		summary.TotalOrders += row.Orders
		switch row.Status {
		case models.OrderStatusPending:
			summary.PendingOrders = row.Orders
		case models.OrderStatusConfirmed:
			summary.ConfirmedOrders = row.Orders
		case models.OrderStatusPreparing:
			summary.PreparingOrders = row.Orders
		case models.OrderStatusReady:
			summary.ReadyOrders = row.Orders
		case models.OrderStatusCompleted:
			summary.CompletedOrders = row.Orders
		}
		if row.Status != models.OrderStatusCancelled {
			summary.TotalSales += row.Sales
		} else {
			summary.CancelledOrders = row.Orders
		}
	}
	return summary
}
