package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bento-shop/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{AllowedOrigins: origins}

	router := gin.New()
	router.Use(CORSMiddleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestCORSMiddlewareAllowsConfiguredOrigin(t *testing.T) {
	router := corsRouter([]string{"https://bento.example.com"})
	defer func() { config.AppConfig = nil }()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://bento.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://bento.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddlewareRejectsUnknownOrigin(t *testing.T) {
	router := corsRouter([]string{"https://bento.example.com"})
	defer func() { config.AppConfig = nil }()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddlewareDefaultOrigin(t *testing.T) {
	router := corsRouter(nil)
	defer func() { config.AppConfig = nil }()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
