package main

import (
	"os"

	"bento-shop/config"
	_ "bento-shop/docs"
	"bento-shop/middleware"
	"bento-shop/models"
	"bento-shop/routes"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// @title Bento Order System API
// @version 1.0
// @description Bento ordering backend for customers and store staff
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	models.InitDB()
	defer models.CloseDB()

	models.InitRedis()
	defer models.CloseRedis()

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Infof("Server starting on port %s", port)
	log.Infof("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
