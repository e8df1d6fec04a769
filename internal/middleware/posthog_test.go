package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/storefront_totals/internal/middleware"
	"github.com/SscSPs/storefront_totals/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPosthogMiddleware_DisabledClientPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	client := utils.InitializePosthogClient("", "", slog.Default())

	for name, c := range map[string]*utils.PosthogClientWrapper{"nil client": nil, "no api key": client} {
		t.Run(name, func(t *testing.T) {
			r := gin.New()
			r.Use(middleware.PosthogMiddleware(c))
			r.GET("/api/v1/store/cart", func(c *gin.Context) { c.Status(http.StatusOK) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/store/cart", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}
