package controllers

import (
	"net/http"

	"play-cards-store/middleware"
	"play-cards-store/models"
	"play-cards-store/services"

	"github.com/gin-gonic/gin"
)

// OrderController handles the checkout pipeline and order lookups.
type OrderController struct {
	orderService *services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(orderService *services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// PreviewOrder handles POST /order/preview.
func (oc *OrderController) PreviewOrder(ctx *gin.Context) {
	var req models.PreviewOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	customer := models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}

	pending, svcErr := oc.orderService.PreviewOrder(ctx.Request.Context(), middleware.GetSessionID(ctx), customer, req.Coupon)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"pending_order": pending})
}

// ConfirmOrder handles POST /order/confirm.
func (oc *OrderController) ConfirmOrder(ctx *gin.Context) {
	order, svcErr := oc.orderService.ConfirmOrder(ctx.Request.Context(), middleware.GetSessionID(ctx))
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"order": order})
}

// GetOrder handles GET /order/:id.
func (oc *OrderController) GetOrder(ctx *gin.Context) {
	order, svcErr := oc.orderService.GetOrder(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"order": order})
}

// GetMyOrders handles POST /my-orders, the email-based order history.
func (oc *OrderController) GetMyOrders(ctx *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	orders, svcErr := oc.orderService.GetOrdersByEmail(ctx.Request.Context(), req.Email)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"orders": orders})
}

// ListOrders handles GET /admin/orders.
func (oc *OrderController) ListOrders(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)

	orders, total, svcErr := oc.orderService.ListOrders(ctx.Request.Context(), page, limit)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}

	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"meta": gin.H{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": totalPages,
			"has_more":    total > int64(page*limit),
		},
	})
}

// UpdateOrderStatus handles POST /admin/orders/:id/status.
func (oc *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var req models.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, svcErr := oc.orderService.TransitionStatus(ctx.Request.Context(), ctx.Param("id"), models.OrderStatus(req.Status))
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"order": order})
}
