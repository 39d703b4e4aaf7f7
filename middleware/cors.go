package middleware

import (
	"bento-shop/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the origins from config (CORS_ORIGINS env,
// comma-separated) to call the API with credentialed requests.
func CORSMiddleware() gin.HandlerFunc {
	allowedOrigins := []string{"http://localhost:3000"}
	if config.AppConfig != nil && len(config.AppConfig.AllowedOrigins) > 0 {
		allowedOrigins = config.AppConfig.AllowedOrigins
	}

	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	})
}
