package models

// OrderSummary is the store dashboard payload: today's orders broken
// down by status, with sales excluding cancelled orders.
type OrderSummary struct {
	TotalOrders     int `json:"total_orders"`
	PendingOrders   int `json:"pending_orders"`
	ConfirmedOrders int `json:"confirmed_orders"`
	PreparingOrders int `json:"preparing_orders"`
	ReadyOrders     int `json:"ready_orders"`
	CompletedOrders int `json:"completed_orders"`
	CancelledOrders int `json:"cancelled_orders"`
	TotalSales      int `json:"total_sales"`
}

type DailySalesReport struct {
	Date        string  `json:"date"`
	TotalOrders int     `json:"total_orders"`
	TotalSales  int     `json:"total_sales"`
	PopularMenu *string `json:"popular_menu"`
}

type MenuSalesReport struct {
	MenuID        int    `json:"menu_id"`
	MenuName      string `json:"menu_name"`
	TotalQuantity int    `json:"total_quantity"`
	TotalSales    int    `json:"total_sales"`
}

type SalesReport struct {
	Period       string             `json:"period"`
	StartDate    string             `json:"start_date"`
	EndDate      string             `json:"end_date"`
	DailyReports []DailySalesReport `json:"daily_reports"`
	MenuReports  []MenuSalesReport  `json:"menu_reports"`
	TotalSales   int                `json:"total_sales"`
	TotalOrders  int                `json:"total_orders"`
}
