package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/storefront_totals/internal/core/ports/services"
	"github.com/SscSPs/storefront_totals/internal/dto"
	"github.com/SscSPs/storefront_totals/internal/middleware"
	"github.com/gin-gonic/gin"
)

// storeCartHandler proxies cart mutations to the Store API and renders the
// returned cart.
type storeCartHandler struct {
	cartService portssvc.CartMutatorSvc
}

func newStoreCartHandler(cs portssvc.CartMutatorSvc) *storeCartHandler {
	return &storeCartHandler{cartService: cs}
}

// registerStoreCartRoutes registers the Store API proxy routes. rg must already
// carry the Cart-Token middleware.
func registerStoreCartRoutes(rg *gin.RouterGroup, cartService portssvc.CartMutatorSvc) {
	h := newStoreCartHandler(cartService)

	cart := rg.Group("/cart")
	{
		cart.GET("", h.getCart)
		cart.POST("/items/:key/quantity", h.setItemQuantity)
		cart.DELETE("/items/:key", h.removeItem)
		cart.POST("/coupons", h.applyCoupon)
		cart.DELETE("/coupons/:code", h.removeCoupon)
	}
}

// cartIdentity reads the cart token and session id set by the Cart-Token middleware.
func cartIdentity(c *gin.Context) (string, string, bool) {
	token, ok := middleware.GetCartTokenFromContext(c)
	if !ok {
		return "", "", false
	}
	sessionID, _ := middleware.GetSessionIDFromContext(c)
	return token, sessionID, true
}

// getCart godoc
// @Summary Get the current cart
// @Description Fetches the shopper cart from the Store API and renders it.
// @Tags store
// @Produce  json
// @Param   Cart-Token header string true "Store API cart token"
// @Success 200 {object} dto.CartViewResponse
// @Failure 401 {object} map[string]string "Missing or invalid cart token"
// @Failure 502 {object} map[string]string "Store API unavailable"
// @Router /store/cart [get]
func (h *storeCartHandler) getCart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	token, _, ok := cartIdentity(c)
	if !ok {
		logger.Error("Cart token not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	view, err := h.cartService.GetCart(c.Request.Context(), token)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve cart")
		return
	}
	c.JSON(http.StatusOK, dto.ToCartViewResponse(view))
}

// setItemQuantity godoc
// @Summary Change the quantity of a cart item
// @Tags store
// @Accept  json
// @Produce  json
// @Param   Cart-Token header string true "Store API cart token"
// @Param   key path string true "Cart item key"
// @Param   request body dto.SetItemQuantityRequest true "New quantity"
// @Success 200 {object} dto.CartViewResponse
// @Failure 400 {object} map[string]string "Quantity outside the item limits"
// @Failure 401 {object} map[string]string "Missing or invalid cart token"
// @Failure 404 {object} map[string]string "Item not in cart"
// @Failure 502 {object} map[string]string "Store API unavailable"
// @Router /store/cart/items/{key}/quantity [post]
func (h *storeCartHandler) setItemQuantity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	token, sessionID, ok := cartIdentity(c)
	if !ok {
		logger.Error("Cart token not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SetItemQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetItemQuantity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	itemKey := c.Param("key")
	logger = logger.With(slog.String("item_key", itemKey))
	logger.Info("Received request to set item quantity", slog.Int64("quantity", req.Quantity))

	view, err := h.cartService.SetItemQuantity(c.Request.Context(), token, sessionID, itemKey, req.Quantity)
	if err != nil {
		respondError(c, logger, err, "Failed to update item quantity")
		return
	}
	c.JSON(http.StatusOK, dto.ToCartViewResponse(view))
}

// removeItem godoc
// @Summary Remove an item from the cart
// @Tags store
// @Produce  json
// @Param   Cart-Token header string true "Store API cart token"
// @Param   key path string true "Cart item key"
// @Success 200 {object} dto.CartViewResponse
// @Failure 401 {object} map[string]string "Missing or invalid cart token"
// @Failure 404 {object} map[string]string "Item not in cart"
// @Failure 502 {object} map[string]string "Store API unavailable"
// @Router /store/cart/items/{key} [delete]
func (h *storeCartHandler) removeItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	token, sessionID, ok := cartIdentity(c)
	if !ok {
		logger.Error("Cart token not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	itemKey := c.Param("key")
	logger = logger.With(slog.String("item_key", itemKey))
	logger.Info("Received request to remove item")

	view, err := h.cartService.RemoveItem(c.Request.Context(), token, sessionID, itemKey)
	if err != nil {
		respondError(c, logger, err, "Failed to remove item")
		return
	}
	c.JSON(http.StatusOK, dto.ToCartViewResponse(view))
}

// applyCoupon godoc
// @Summary Apply a coupon to the cart
// @Tags store
// @Accept  json
// @Produce  json
// @Param   Cart-Token header string true "Store API cart token"
// @Param   request body dto.ApplyCouponRequest true "Coupon code"
// @Success 200 {object} dto.CartViewResponse
// @Failure 400 {object} map[string]string "Coupon rejected by the store"
// @Failure 401 {object} map[string]string "Missing or invalid cart token"
// @Failure 502 {object} map[string]string "Store API unavailable"
// @Router /store/cart/coupons [post]
func (h *storeCartHandler) applyCoupon(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	token, sessionID, ok := cartIdentity(c)
	if !ok {
		logger.Error("Cart token not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ApplyCoupon", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("coupon", req.Code))
	logger.Info("Received request to apply coupon")

	view, err := h.cartService.ApplyCoupon(c.Request.Context(), token, sessionID, req.Code)
	if err != nil {
		respondError(c, logger, err, "Failed to apply coupon")
		return
	}
	c.JSON(http.StatusOK, dto.ToCartViewResponse(view))
}

// removeCoupon godoc
// @Summary Remove a coupon from the cart
// @Tags store
// @Produce  json
// @Param   Cart-Token header string true "Store API cart token"
// @Param   code path string true "Coupon code"
// @Success 200 {object} dto.CartViewResponse
// @Failure 400 {object} map[string]string "Coupon not applied"
// @Failure 401 {object} map[string]string "Missing or invalid cart token"
// @Failure 502 {object} map[string]string "Store API unavailable"
// @Router /store/cart/coupons/{code} [delete]
func (h *storeCartHandler) removeCoupon(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	token, sessionID, ok := cartIdentity(c)
	if !ok {
		logger.Error("Cart token not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	code := c.Param("code")
	logger = logger.With(slog.String("coupon", code))
	logger.Info("Received request to remove coupon")

	view, err := h.cartService.RemoveCoupon(c.Request.Context(), token, sessionID, code)
	if err != nil {
		respondError(c, logger, err, "Failed to remove coupon")
		return
	}
	c.JSON(http.StatusOK, dto.ToCartViewResponse(view))
}
