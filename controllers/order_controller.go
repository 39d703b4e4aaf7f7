package controllers

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"bento-shop/models"
	"bento-shop/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type OrderController struct{}

const orderMenuColumns = `o.id, o.user_id, o.menu_id, o.quantity, o.total_price, o.status,
	o.delivery_time::text, o.notes, o.ordered_at, o.updated_at,
	m.id, m.name, m.price, COALESCE(m.description,''), COALESCE(m.image_url,''),
	m.is_available, m.created_at, m.updated_at`

const orderUserColumns = `u.id, u.username, u.email, u.role, u.full_name, u.is_active, u.created_at`

func scanOrderWithMenu(row pgx.Row) (models.Order, error) {
	var o models.Order
	var m models.Menu
	err := row.Scan(&o.ID, &o.UserID, &o.MenuID, &o.Quantity, &o.TotalPrice, &o.Status,
		&o.DeliveryTime, &o.Notes, &o.OrderedAt, &o.UpdatedAt,
		&m.ID, &m.Name, &m.Price, &m.Description, &m.ImageURL,
		&m.IsAvailable, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return o, err
	}
	o.Menu = &m
	return o, nil
}

func scanOrderWithMenuAndUser(row pgx.Row) (models.Order, error) {
	var o models.Order
	var m models.Menu
	var u models.User
	err := row.Scan(&o.ID, &o.UserID, &o.MenuID, &o.Quantity, &o.TotalPrice, &o.Status,
		&o.DeliveryTime, &o.Notes, &o.OrderedAt, &o.UpdatedAt,
		&m.ID, &m.Name, &m.Price, &m.Description, &m.ImageURL,
		&m.IsAvailable, &m.CreatedAt, &m.UpdatedAt,
		&u.ID, &u.Username, &u.Email, &u.Role, &u.FullName, &u.IsActive, &u.CreatedAt)
	if err != nil {
		return o, err
	}
	o.Menu = &m
	o.User = &u
	return o, nil
}

// CreateOrder godoc
// @Summary Create order
// @Description Place an order for one menu item. The total price is frozen from the menu price at creation.
// @Tags Customer - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /customer/orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	var deliveryTime interface{}
	if req.DeliveryTime != "" {
		normalized, err := services.NormalizeDeliveryTime(req.DeliveryTime)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": err.Error()})
			return
		}
		deliveryTime = normalized
	}

	var notes interface{}
	if req.Notes != "" {
		notes = req.Notes
	}

	ctx := context.Background()
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to start transaction"})
		return
	}
	defer tx.Rollback(ctx)

	menu, err := scanMenu(tx.QueryRow(ctx,
		"SELECT "+menuColumns+" FROM menus WHERE id=$1 AND is_available=true", req.MenuID))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Menu not found or not available"})
		return
	}

	totalPrice := services.ComputeTotalPrice(menu.Price, req.Quantity)
	now := time.Now()

	order := models.Order{
		UserID:     userID,
		MenuID:     req.MenuID,
		Quantity:   req.Quantity,
		TotalPrice: totalPrice,
		Status:     models.OrderStatusPending,
		Menu:       &menu,
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, menu_id, quantity, total_price, status, delivery_time, notes, ordered_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 RETURNING id, delivery_time::text, notes, ordered_at, updated_at`,
		userID, req.MenuID, req.Quantity, totalPrice, models.OrderStatusPending,
		deliveryTime, notes, now, now).Scan(&order.ID, &order.DeliveryTime, &order.Notes, &order.OrderedAt, &order.UpdatedAt)

	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
		return
	}

	if err = tx.Commit(ctx); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to commit transaction"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Order created successfully", "data": order})
}

// GetMyOrders godoc
// @Summary List own orders
// @Description Paginated order history for the current customer, newest first
// @Tags Customer - Orders
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /customer/orders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	userID := c.GetInt("user_id")
	page, limit, offset := getPaginationParams(c, 20)

	whereConditions := []string{"o.user_id = $1"}
	args := []interface{}{userID}
	paramIndex := 2

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !services.ValidOrderStatus(status) {
			c.JSON(400, gin.H{"success": false, "message": "Invalid status filter"})
			return
		}
		whereConditions = append(whereConditions, fmt.Sprintf("o.status = $%d", paramIndex))
		args = append(args, status)
		paramIndex++
	}

	whereClause := " WHERE " + strings.Join(whereConditions, " AND ")
	ctx := context.Background()

	var total int
	if err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders o"+whereClause, args...).Scan(&total); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to count orders"})
		return
	}

	query := fmt.Sprintf(
		"SELECT %s FROM orders o JOIN menus m ON o.menu_id = m.id%s ORDER BY o.ordered_at DESC LIMIT $%d OFFSET $%d",
		orderMenuColumns, whereClause, paramIndex, paramIndex+1)
	args = append(args, limit, offset)

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to list orders"})
		return
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrderWithMenu(rows)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to read orders"})
			return
		}
		orders = append(orders, o)
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Orders retrieved",
		"data":    gin.H{"orders": orders, "total": total},
		"meta": models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// GetMyOrderByID godoc
// @Summary Get own order details
// @Tags Customer - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /customer/orders/{id} [get]
func (ctrl *OrderController) GetMyOrderByID(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := scanOrderWithMenu(models.DB.QueryRow(context.Background(),
		"SELECT "+orderMenuColumns+" FROM orders o JOIN menus m ON o.menu_id = m.id WHERE o.id=$1 AND o.user_id=$2",
		id, userID))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": order})
}

// CancelOrder godoc
// @Summary Cancel own order
// @Description Only pending orders can be cancelled
// @Tags Customer - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /customer/orders/{id}/cancel [put]
func (ctrl *OrderController) CancelOrder(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, _ := strconv.Atoi(c.Param("id"))

	ctx := context.Background()

	var status string
	err := models.DB.QueryRow(ctx,
		"SELECT status FROM orders WHERE id=$1 AND user_id=$2", id, userID).Scan(&status)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	if !services.CanCancel(status) {
		c.JSON(400, gin.H{"success": false, "message": services.ErrNotCancellable.Error()})
		return
	}

	_, err = models.DB.Exec(ctx,
		"UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3",
		models.OrderStatusCancelled, time.Now(), id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to cancel order"})
		return
	}

	order, err := scanOrderWithMenu(models.DB.QueryRow(ctx,
		"SELECT "+orderMenuColumns+" FROM orders o JOIN menus m ON o.menu_id = m.id WHERE o.id=$1", id))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load cancelled order"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order cancelled", "data": order})
}

// GetAllOrders godoc
// @Summary List all orders (store)
// @Description Paginated order list with customer and menu details, newest first
// @Tags Store - Orders
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param start_date query string false "Start date (YYYY-MM-DD)"
// @Param end_date query string false "End date (YYYY-MM-DD)"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /store/orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit, offset := getPaginationParams(c, 20)

	whereConditions := []string{}
	args := []interface{}{}
	paramIndex := 1

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		if !services.ValidOrderStatus(status) {
			c.JSON(400, gin.H{"success": false, "message": "Invalid status filter"})
			return
		}
		whereConditions = append(whereConditions, fmt.Sprintf("o.status = $%d", paramIndex))
		args = append(args, status)
		paramIndex++
	}

	if startDate := strings.TrimSpace(c.Query("start_date")); startDate != "" {
		start, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid start_date format. Use YYYY-MM-DD"})
			return
		}
		whereConditions = append(whereConditions, fmt.Sprintf("o.ordered_at >= $%d", paramIndex))
		args = append(args, start)
		paramIndex++
	}

	if endDate := strings.TrimSpace(c.Query("end_date")); endDate != "" {
		end, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid end_date format. Use YYYY-MM-DD"})
			return
		}
		whereConditions = append(whereConditions, fmt.Sprintf("o.ordered_at < $%d", paramIndex))
		args = append(args, end.AddDate(0, 0, 1))
		paramIndex++
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = " WHERE " + strings.Join(whereConditions, " AND ")
	}

	ctx := context.Background()

	var total int
	if err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders o"+whereClause, args...).Scan(&total); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to count orders"})
		return
	}

	query := fmt.Sprintf(
		"SELECT %s, %s FROM orders o JOIN menus m ON o.menu_id = m.id JOIN users u ON o.user_id = u.id%s ORDER BY o.ordered_at DESC LIMIT $%d OFFSET $%d",
		orderMenuColumns, orderUserColumns, whereClause, paramIndex, paramIndex+1)
	args = append(args, limit, offset)

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to list orders"})
		return
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrderWithMenuAndUser(rows)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to read orders"})
			return
		}
		orders = append(orders, o)
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Orders retrieved",
		"data":    gin.H{"orders": orders, "total": total},
		"meta": models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

// GetOrderByID godoc
// @Summary Get order details (store)
// @Tags Store - Orders
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /store/orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := scanOrderWithMenuAndUser(models.DB.QueryRow(context.Background(),
		"SELECT "+orderMenuColumns+", "+orderUserColumns+
			" FROM orders o JOIN menus m ON o.menu_id = m.id JOIN users u ON o.user_id = u.id WHERE o.id=$1", id))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": order})
}

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Sets the order status to any of the six enumerated values
// @Tags Store - Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /store/orders/{id}/status [put]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid status", "error": err.Error()})
		return
	}

	ctx := context.Background()

	var exists int
	err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM orders WHERE id=$1", id).Scan(&exists)
	if err != nil || exists == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	_, err = models.DB.Exec(ctx,
		"UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3", req.Status, time.Now(), id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update order status"})
		return
	}

	order, err := scanOrderWithMenuAndUser(models.DB.QueryRow(ctx,
		"SELECT "+orderMenuColumns+", "+orderUserColumns+
			" FROM orders o JOIN menus m ON o.menu_id = m.id JOIN users u ON o.user_id = u.id WHERE o.id=$1", id))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to load updated order"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order status updated successfully", "data": order})
}
