package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"bento-shop/models"
	"bento-shop/services"
	"bento-shop/utils"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type MenuController struct{}

const menuColumns = "id, name, price, COALESCE(description,''), COALESCE(image_url,''), is_available, created_at, updated_at"

func scanMenu(row pgx.Row) (models.Menu, error) {
	var m models.Menu
	err := row.Scan(&m.ID, &m.Name, &m.Price, &m.Description, &m.ImageURL,
		&m.IsAvailable, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func menuCacheKey(available string, priceMin, priceMax int, search string, page, limit int) string {
	return fmt.Sprintf("menus_list_a%s_min%d_max%d_q%s_p%d_l%d",
		available, priceMin, priceMax, search, page, limit)
}

func invalidateMenuCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "menus_list_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

func (ctrl *MenuController) listMenus(c *gin.Context, customerView bool) {
	page, limit, offset := getPaginationParams(c, 20)

	available := strings.TrimSpace(c.Query("is_available"))
	search := strings.TrimSpace(c.Query("search"))

	var priceMin, priceMax int
	if raw := strings.TrimSpace(c.Query("price_min")); raw != "" {
		var err error
		if priceMin, err = strconv.Atoi(raw); err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid price_min value"})
			return
		}
	}
	if raw := strings.TrimSpace(c.Query("price_max")); raw != "" {
		var err error
		if priceMax, err = strconv.Atoi(raw); err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid price_max value"})
			return
		}
	}

	cacheKey := ""
	ctx := context.Background()
	if customerView && models.RedisClient != nil {
		cacheKey = menuCacheKey(available, priceMin, priceMax, search, page, limit)
		if cached, err := models.RedisClient.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	whereConditions := []string{}
	args := []interface{}{}
	paramIndex := 1

	if available != "" {
		wantAvailable, err := strconv.ParseBool(available)
		if err != nil {
			c.JSON(400, gin.H{"success": false, "message": "Invalid is_available value"})
			return
		}
		whereConditions = append(whereConditions, fmt.Sprintf("is_available = $%d", paramIndex))
		args = append(args, wantAvailable)
		paramIndex++
	} else if customerView {
		// customers only see available menus unless they ask otherwise
		whereConditions = append(whereConditions, "is_available = true")
	}

	if priceMin > 0 {
		whereConditions = append(whereConditions, fmt.Sprintf("price >= $%d", paramIndex))
		args = append(args, priceMin)
		paramIndex++
	}

	if priceMax > 0 {
		whereConditions = append(whereConditions, fmt.Sprintf("price <= $%d", paramIndex))
		args = append(args, priceMax)
		paramIndex++
	}

	if search != "" {
		whereConditions = append(whereConditions, fmt.Sprintf("LOWER(name) LIKE LOWER($%d)", paramIndex))
		args = append(args, "%"+search+"%")
		paramIndex++
	}

	whereClause := ""
	if len(whereConditions) > 0 {
		whereClause = " WHERE " + strings.Join(whereConditions, " AND ")
	}

	var total int
	err := models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM menus"+whereClause, args...).Scan(&total)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to count menus"})
		return
	}

	query := fmt.Sprintf("SELECT %s FROM menus%s ORDER BY id LIMIT $%d OFFSET $%d",
		menuColumns, whereClause, paramIndex, paramIndex+1)
	args = append(args, limit, offset)

	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to list menus"})
		return
	}
	defer rows.Close()

	menus := []models.Menu{}
	for rows.Next() {
		m, err := scanMenu(rows)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to read menus"})
			return
		}
		menus = append(menus, m)
	}

	response := gin.H{
		"success": true,
		"message": "Menus retrieved",
		"data":    gin.H{"menus": menus, "total": total},
		"meta": models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}

	if cacheKey != "" {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// GetCustomerMenus godoc
// @Summary List menus
// @Description Paginated menu list for customers. Only available menus unless is_available is passed.
// @Tags Customer - Menus
// @Security BearerAuth
// @Produce json
// @Param is_available query bool false "Filter by availability"
// @Param price_min query int false "Minimum price"
// @Param price_max query int false "Maximum price"
// @Param search query string false "Search by menu name"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /customer/menus [get]
func (ctrl *MenuController) GetCustomerMenus(c *gin.Context) {
	ctrl.listMenus(c, true)
}

// GetCustomerMenuByID godoc
// @Summary Get menu details
// @Description Menu details, available menus only
// @Tags Customer - Menus
// @Security BearerAuth
// @Produce json
// @Param id path int true "Menu ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /customer/menus/{id} [get]
func (ctrl *MenuController) GetCustomerMenuByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	m, err := scanMenu(models.DB.QueryRow(context.Background(),
		"SELECT "+menuColumns+" FROM menus WHERE id=$1 AND is_available=true", id))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Menu not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Menu retrieved", "data": m})
}

// GetStoreMenus godoc
// @Summary List all menus (store)
// @Description Paginated menu list for store staff, any availability
// @Tags Store - Menus
// @Security BearerAuth
// @Produce json
// @Param is_available query bool false "Filter by availability"
// @Param price_min query int false "Minimum price"
// @Param price_max query int false "Maximum price"
// @Param search query string false "Search by menu name"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /store/menus [get]
func (ctrl *MenuController) GetStoreMenus(c *gin.Context) {
	ctrl.listMenus(c, false)
}

// GetStoreMenuByID godoc
// @Summary Get menu details (store)
// @Tags Store - Menus
// @Security BearerAuth
// @Produce json
// @Param id path int true "Menu ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /store/menus/{id} [get]
func (ctrl *MenuController) GetStoreMenuByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	m, err := scanMenu(models.DB.QueryRow(context.Background(),
		"SELECT "+menuColumns+" FROM menus WHERE id=$1", id))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Menu not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Menu retrieved", "data": m})
}

// CreateMenu godoc
// @Summary Create menu
// @Tags Store - Menus
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateMenuRequest true "Menu data"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /store/menus [post]
func (ctrl *MenuController) CreateMenu(c *gin.Context) {
	var req models.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	now := time.Now()
	m := models.Menu{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsAvailable: isAvailable,
	}
	err := models.DB.QueryRow(context.Background(),
		"INSERT INTO menus (name, price, description, image_url, is_available, created_at, updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id, created_at, updated_at",
		req.Name, req.Price, req.Description, req.ImageURL, isAvailable, now, now).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)

	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create menu"})
		return
	}

	invalidateMenuCache()

	c.JSON(201, gin.H{"success": true, "message": "Menu created successfully", "data": m})
}

// UpdateMenu godoc
// @Summary Update menu
// @Description Partial update, only provided fields change
// @Tags Store - Menus
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Menu ID"
// @Param request body models.UpdateMenuRequest true "Menu fields"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /store/menus/{id} [put]
func (ctrl *MenuController) UpdateMenu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	ctx := context.Background()

	existing, err := scanMenu(models.DB.QueryRow(ctx,
		"SELECT "+menuColumns+" FROM menus WHERE id=$1", id))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Menu not found"})
		return
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Price != nil {
		existing.Price = *req.Price
	}
	if req.Description != nil {
		existing.Description = *req.Description
	}
	if req.ImageURL != nil {
		existing.ImageURL = *req.ImageURL
	}
	if req.IsAvailable != nil {
		existing.IsAvailable = *req.IsAvailable
	}

	existing.UpdatedAt = time.Now()
	_, err = models.DB.Exec(ctx,
		"UPDATE menus SET name=$1, price=$2, description=$3, image_url=$4, is_available=$5, updated_at=$6 WHERE id=$7",
		existing.Name, existing.Price, existing.Description, existing.ImageURL,
		existing.IsAvailable, existing.UpdatedAt, id)

	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update menu"})
		return
	}

	invalidateMenuCache()

	c.JSON(200, gin.H{"success": true, "message": "Menu updated successfully", "data": existing})
}

// DeleteMenu godoc
// @Summary Delete menu
// @Description Hard-deletes the menu unless orders reference it, in which case it is disabled instead
// @Tags Store - Menus
// @Security BearerAuth
// @Produce json
// @Param id path int true "Menu ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /store/menus/{id} [delete]
func (ctrl *MenuController) DeleteMenu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	ctx := context.Background()
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to start transaction"})
		return
	}
	defer tx.Rollback(ctx)

	var exists int
	err = tx.QueryRow(ctx, "SELECT COUNT(*) FROM menus WHERE id=$1", id).Scan(&exists)
	if err != nil || exists == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Menu not found"})
		return
	}

	var referencingOrders int
	if err = tx.QueryRow(ctx, "SELECT COUNT(*) FROM orders WHERE menu_id=$1", id).Scan(&referencingOrders); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to check menu orders"})
		return
	}

	message := "Menu deleted successfully"
	if services.ShouldSoftDelete(referencingOrders) {
		_, err = tx.Exec(ctx, "UPDATE menus SET is_available=false, updated_at=$1 WHERE id=$2", time.Now(), id)
		message = "Menu disabled due to existing orders"
	} else {
		_, err = tx.Exec(ctx, "DELETE FROM menus WHERE id=$1", id)
	}
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete menu"})
		return
	}

	if err = tx.Commit(ctx); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to commit transaction"})
		return
	}

	invalidateMenuCache()

	c.JSON(200, gin.H{"success": true, "message": message})
}

// UploadMenuImage godoc
// @Summary Upload menu image
// @Tags Store - Menus
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Menu ID"
// @Param image formData file true "Image file"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /store/menus/{id}/image [post]
func (ctrl *MenuController) UploadMenuImage(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	ctx := context.Background()

	var oldImage string
	err := models.DB.QueryRow(ctx, "SELECT COALESCE(image_url,'') FROM menus WHERE id=$1", id).Scan(&oldImage)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Menu not found"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Image file required"})
		return
	}

	imageURL, err := utils.UploadFile(c, file, "menus")
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": err.Error()})
		return
	}

	_, err = models.DB.Exec(ctx,
		"UPDATE menus SET image_url=$1, updated_at=$2 WHERE id=$3", imageURL, time.Now(), id)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to update menu image"})
		return
	}

	utils.DeleteFile(oldImage)
	invalidateMenuCache()

	c.JSON(200, gin.H{"success": true, "message": "Menu image updated", "data": gin.H{"image_url": imageURL}})
}
