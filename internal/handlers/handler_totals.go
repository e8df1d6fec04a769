package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/storefront_totals/internal/core/domain"
	portssvc "github.com/SscSPs/storefront_totals/internal/core/ports/services"
	"github.com/SscSPs/storefront_totals/internal/dto"
	"github.com/SscSPs/storefront_totals/internal/middleware"
	"github.com/gin-gonic/gin"
)

type totalsHandler struct {
	cartService portssvc.CartRendererSvc
}

func newTotalsHandler(cs portssvc.CartRendererSvc) *totalsHandler {
	return &totalsHandler{cartService: cs}
}

// registerTotalsRoutes registers the stateless composition routes.
func registerTotalsRoutes(rg *gin.RouterGroup, cartService portssvc.CartRendererSvc) {
	h := newTotalsHandler(cartService)

	rg.POST("/totals", h.composeTotals)
	rg.POST("/cart/render", h.renderCart)
}

// composeTotals godoc
// @Summary Compose discount and tax rows
// @Description Builds the discount row and the tax rows of a cart totals fragment. Values are minor units of the totals currency.
// @Tags totals
// @Accept  json
// @Produce  json
// @Param   request body dto.ComposeTotalsRequest true "Totals fragment, coupons and optional config override"
// @Success 200 {object} dto.TotalsResponse
// @Failure 400 {object} map[string]string "Invalid input or malformed amount"
// @Failure 500 {object} map[string]string "Failed to compose totals"
// @Router /totals [post]
func (h *totalsHandler) composeTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ComposeTotalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ComposeTotals", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cfg, err := req.Config.Apply(h.cartService.Config())
	if err != nil {
		respondError(c, logger, err, "Failed to compose totals")
		return
	}

	rows, currency, err := h.cartService.RenderTotals(c.Request.Context(), req.Totals, req.Coupons, &cfg)
	if err != nil {
		respondError(c, logger, err, "Failed to compose totals")
		return
	}

	logger.Debug("Totals composed", slog.Int("rows", len(rows)))
	c.JSON(http.StatusOK, dto.ToTotalsResponse(rows, currency))
}

// renderCart godoc
// @Summary Render a cart
// @Description Composes the summary rows and line items of a full Store API cart response.
// @Tags totals
// @Accept  json
// @Produce  json
// @Param   cart body domain.CartResponse true "Store API cart response"
// @Success 200 {object} dto.CartViewResponse
// @Failure 400 {object} map[string]string "Invalid input or malformed amount"
// @Failure 500 {object} map[string]string "Failed to render cart"
// @Router /cart/render [post]
func (h *totalsHandler) renderCart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var cart domain.CartResponse
	if err := c.ShouldBindJSON(&cart); err != nil {
		logger.Warn("Failed to bind JSON for RenderCart", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	view, err := h.cartService.RenderCart(c.Request.Context(), cart)
	if err != nil {
		respondError(c, logger, err, "Failed to render cart")
		return
	}

	logger.Debug("Cart rendered", slog.Int("items", len(view.Items)))
	c.JSON(http.StatusOK, dto.ToCartViewResponse(view))
}
