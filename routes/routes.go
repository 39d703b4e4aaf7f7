package routes

import (
	"bento-shop/controllers"
	"bento-shop/middleware"
	"bento-shop/models"
	"bento-shop/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	authSvc := services.NewAuthService()

	authCtrl := &controllers.AuthController{}
	menuCtrl := &controllers.MenuController{}
	orderCtrl := &controllers.OrderController{}
	reportCtrl := &controllers.ReportController{}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "message": "Bento Order System is running"})
	})

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/logout", authCtrl.Logout)

	customer := router.Group("/customer")
	customer.Use(middleware.AuthMiddleware(authSvc), middleware.RequireRole(models.RoleCustomer))
	{
		customer.GET("/menus", menuCtrl.GetCustomerMenus)
		customer.GET("/menus/:id", menuCtrl.GetCustomerMenuByID)

		customer.POST("/orders", orderCtrl.CreateOrder)
		customer.GET("/orders", orderCtrl.GetMyOrders)
		customer.GET("/orders/:id", orderCtrl.GetMyOrderByID)
		customer.PUT("/orders/:id/cancel", orderCtrl.CancelOrder)
	}

	store := router.Group("/store")
	store.Use(middleware.AuthMiddleware(authSvc), middleware.RequireRole(models.RoleStore))
	{
		store.GET("/dashboard", reportCtrl.GetDashboard)
		store.GET("/reports/sales", reportCtrl.GetSalesReport)

		store.GET("/menus", menuCtrl.GetStoreMenus)
		store.GET("/menus/:id", menuCtrl.GetStoreMenuByID)
		store.POST("/menus", menuCtrl.CreateMenu)
		store.PUT("/menus/:id", menuCtrl.UpdateMenu)
		store.DELETE("/menus/:id", menuCtrl.DeleteMenu)
		store.POST("/menus/:id/image", menuCtrl.UploadMenuImage)

		store.GET("/orders", orderCtrl.GetAllOrders)
		store.GET("/orders/:id", orderCtrl.GetOrderByID)
		store.PUT("/orders/:id/status", orderCtrl.UpdateOrderStatus)
	}

	router.Static("/uploads", "./uploads")
}
