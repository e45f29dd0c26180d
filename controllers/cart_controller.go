package controllers

import (
	"net/http"

	"play-cards-store/middleware"
	"play-cards-store/services"

	"github.com/gin-gonic/gin"
)

// CartController handles session cart HTTP requests.
type CartController struct {
	cartService *services.CartService
	pricing     *services.PricingEngine
}

// NewCartController creates a new CartController.
func NewCartController(cartService *services.CartService, pricing *services.PricingEngine) *CartController {
	return &CartController{cartService: cartService, pricing: pricing}
}

type cartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// GetCart handles GET /cart. The cart view resolves entries against the
// catalog and shows a running (undiscounted) total.
func (cc *CartController) GetCart(ctx *gin.Context) {
	sessionID := middleware.GetSessionID(ctx)

	snapshot, svcErr := cc.cartService.Snapshot(ctx.Request.Context(), sessionID)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}

	totals := services.RoundTotals(cc.pricing.ComputeTotals(snapshot, nil))

	count := 0
	for _, item := range snapshot {
		count += item.Quantity
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":      snapshot,
		"cart_count": count,
		"totals":     totals,
	})
}

// AddItem handles POST /cart/add.
func (cc *CartController) AddItem(ctx *gin.Context) {
	var req cartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	count, svcErr := cc.cartService.Add(ctx.Request.Context(), middleware.GetSessionID(ctx), req.ProductID, req.Quantity)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "cart_count": count})
}

// UpdateItem handles POST /cart/update.
func (cc *CartController) UpdateItem(ctx *gin.Context) {
	var req cartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	count, svcErr := cc.cartService.Update(ctx.Request.Context(), middleware.GetSessionID(ctx), req.ProductID, req.Quantity)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "cart_count": count})
}

// RemoveItem handles POST /cart/remove.
func (cc *CartController) RemoveItem(ctx *gin.Context) {
	var req struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	count, svcErr := cc.cartService.Remove(ctx.Request.Context(), middleware.GetSessionID(ctx), req.ProductID)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "cart_count": count})
}

// ClearCart handles POST /cart/clear.
func (cc *CartController) ClearCart(ctx *gin.Context) {
	if svcErr := cc.cartService.Clear(ctx.Request.Context(), middleware.GetSessionID(ctx)); svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared"})
}
