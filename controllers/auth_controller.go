package controllers

import (
	"context"
	"strconv"
	"time"

	"bento-shop/models"
	"bento-shop/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{}

func getPaginationParams(c *gin.Context, defaultLimit int) (page, limit, offset int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}

	offset = (page - 1) * limit
	return page, limit, offset
}

// Register godoc
// @Summary Register new user
// @Description Register a new customer or store staff account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	ctx := context.Background()

	var exists int
	models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE username=$1", req.Username).Scan(&exists)
	if exists > 0 {
		c.JSON(400, gin.H{"success": false, "message": "Username already registered"})
		return
	}

	models.DB.QueryRow(ctx, "SELECT COUNT(*) FROM users WHERE email=$1", req.Email).Scan(&exists)
	if exists > 0 {
		c.JSON(400, gin.H{"success": false, "message": "Email already registered"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
		FullName: req.FullName,
		IsActive: true,
	}
	err = models.DB.QueryRow(ctx,
		"INSERT INTO users (username, email, hashed_password, role, full_name, is_active, created_at) VALUES ($1,$2,$3,$4,$5,true,$6) RETURNING id, created_at",
		req.Username, req.Email, hash, req.Role, req.FullName, time.Now()).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Registration failed"})
		return
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Registration successful",
		"data":    user,
	})
}

// Login godoc
// @Summary User login
// @Description Login with username and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	var user models.User
	err := models.DB.QueryRow(context.Background(),
		"SELECT id, username, email, hashed_password, role, full_name, is_active, created_at FROM users WHERE username=$1",
		req.Username).Scan(&user.ID, &user.Username, &user.Email, &user.HashedPassword,
		&user.Role, &user.FullName, &user.IsActive, &user.CreatedAt)

	if err != nil || !utils.VerifyPassword(user.HashedPassword, req.Password) {
		c.JSON(401, gin.H{"success": false, "message": "Incorrect username or password"})
		return
	}

	if !user.IsActive {
		c.JSON(400, gin.H{"success": false, "message": "Inactive user"})
		return
	}

	token, err := utils.GenerateToken(&user)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Login failed"})
		return
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Login successful",
		"data": models.TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
			User:        user,
		},
	})
}

// Logout godoc
// @Summary User logout
// @Description Logout. Tokens are stateless, clients discard them locally.
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Successfully logged out"})
}
