package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func menuListRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := &MenuController{}

	router := gin.New()
	router.GET("/store/menus", ctrl.GetStoreMenus)
	return router
}

func TestListMenusInvalidPriceFilters(t *testing.T) {
	router := menuListRouter()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "price_min not a number", query: "price_min=abc", want: "Invalid price_min value"},
		{name: "price_max not a number", query: "price_max=1.5x", want: "Invalid price_max value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/store/menus?"+tt.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestListMenusInvalidAvailabilityFilter(t *testing.T) {
	router := menuListRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/store/menus?is_available=maybe", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid is_available value")
}
