package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bento-shop/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuthenticator struct {
	user *models.AuthUser
	err  error
}

func (s *stubAuthenticator) Authenticate(_ context.Context, _ string) (*models.AuthUser, error) {
	return s.user, s.err
}

func setupRouter(auth Authenticator, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/protected", AuthMiddleware(auth))
	if role != "" {
		group.Use(RequireRole(role))
	}
	group.GET("", func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		username, _ := c.Get("username")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "username": username})
	})
	return router
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := setupRouter(&stubAuthenticator{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header required")
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	router := setupRouter(&stubAuthenticator{}, "")

	tests := []string{"sometoken", "Basic abc123", "Bearer"}
	for _, header := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid authorization header format")
	}
}

func TestAuthMiddlewareRejectedToken(t *testing.T) {
	router := setupRouter(&stubAuthenticator{err: errors.New("token is expired")}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthMiddlewareSetsUserContext(t *testing.T) {
	auth := &stubAuthenticator{user: &models.AuthUser{ID: 7, Username: "hana", Role: models.RoleCustomer}}
	router := setupRouter(auth, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
	assert.Contains(t, w.Body.String(), `"username":"hana"`)
}

func TestRequireRoleMismatch(t *testing.T) {
	auth := &stubAuthenticator{user: &models.AuthUser{ID: 7, Username: "hana", Role: models.RoleCustomer}}
	router := setupRouter(auth, models.RoleStore)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "store role required")
}

func TestRequireRoleMatch(t *testing.T) {
	auth := &stubAuthenticator{user: &models.AuthUser{ID: 3, Username: "owner", Role: models.RoleStore}}
	router := setupRouter(auth, models.RoleStore)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
