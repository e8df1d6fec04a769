package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/storefront_totals/internal/core/ports/services"
	"github.com/SscSPs/storefront_totals/internal/dto"
	"github.com/SscSPs/storefront_totals/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencyResolverSvc
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencyResolverSvc) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencyResolverSvc) {
	h := newCurrencyHandler(currencyService)

	currency := rg.Group("/currency")
	{
		currency.POST("/resolve", h.resolveCurrency)
	}
}

// resolveCurrency godoc
// @Summary Resolve a currency descriptor
// @Description Reads the currency block of a Store API response fragment. An empty block resolves to the store default currency.
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   fragment body dto.ResolveCurrencyRequest true "Currency block"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /currency/resolve [post]
func (h *currencyHandler) resolveCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResolveCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ResolveCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	currency := h.currencyService.Resolve(req.CurrencyResponseInfo)
	logger.Debug("Currency resolved", slog.String("currency_code", currency.Code))
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}
