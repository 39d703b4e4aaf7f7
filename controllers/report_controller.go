package controllers

import (
	"context"
	"strings"
	"time"

	"bento-shop/models"
	"bento-shop/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct{}

// GetDashboard godoc
// @Summary Store dashboard
// @Description Today's order counts by status and sales excluding cancelled orders
// @Tags Store - Reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /store/dashboard [get]
func (ctrl *ReportController) GetDashboard(c *gin.Context) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := models.DB.Query(context.Background(),
		`SELECT status, COUNT(*), COALESCE(SUM(total_price), 0)
		 FROM orders
		 WHERE ordered_at >= $1 AND ordered_at < $2
		 GROUP BY status`,
		dayStart, dayEnd)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load dashboard"})
		return
	}
	defer rows.Close()

	counts := []services.StatusCount{}
	for rows.Next() {
		var sc services.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Orders, &sc.Sales); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to read dashboard rows"})
			return
		}
		counts = append(counts, sc)
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Dashboard retrieved",
		"data":    services.BuildOrderSummary(counts),
	})
}

// GetSalesReport godoc
// @Summary Sales report
// @Description Daily and per-menu sales over a date range, cancelled orders excluded
// @Tags Store - Reports
// @Security BearerAuth
// @Produce json
// @Param period query string false "Report period (daily, weekly, monthly)" default(daily)
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /store/reports/sales [get]
func (ctrl *ReportController) GetSalesReport(c *gin.Context) {
	period := strings.TrimSpace(c.DefaultQuery("period", "daily"))

	start, end, err := services.ResolveReportRange(
		period, strings.TrimSpace(c.Query("start_date")), strings.TrimSpace(c.Query("end_date")), time.Now())
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	rows, err := models.DB.Query(context.Background(),
		`SELECT to_char(DATE(o.ordered_at), 'YYYY-MM-DD'), m.id, m.name,
		        COUNT(o.id), SUM(o.quantity), SUM(o.total_price)
		 FROM orders o
		 JOIN menus m ON o.menu_id = m.id
		 WHERE o.ordered_at >= $1 AND o.ordered_at < $2 AND o.status <> $3
		 GROUP BY 1, m.id, m.name
		 ORDER BY 1, m.id`,
		start, end, models.OrderStatusCancelled)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load sales report"})
		return
	}
	defer rows.Close()

	sales := []services.MenuDaySales{}
	for rows.Next() {
		var row services.MenuDaySales
		if err := rows.Scan(&row.Date, &row.MenuID, &row.MenuName, &row.Orders, &row.Quantity, &row.Sales); err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to read sales report rows"})
			return
		}
		sales = append(sales, row)
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Sales report retrieved",
		"data":    services.BuildSalesReport(period, start, end, sales),
	})
}
