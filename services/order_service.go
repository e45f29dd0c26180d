package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"play-cards-store/models"
	"play-cards-store/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// OrderService owns the cart-to-order pipeline: snapshot, pricing, pending
// order, confirmation and status transitions.
type OrderService struct {
	orderRepo      repository.OrderRepository
	cartRepo       repository.CartRepository
	cartService    *CartService
	pricing        *PricingEngine
	couponResolver CouponResolver
	logger         *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	cartService *CartService,
	pricing *PricingEngine,
	couponResolver CouponResolver,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:      orderRepo,
		cartRepo:       cartRepo,
		cartService:    cartService,
		pricing:        pricing,
		couponResolver: couponResolver,
		logger:         logger,
	}
}

func validateCustomer(c models.Customer) *ServiceError {
	fields := map[string]string{
		"name":    c.Name,
		"email":   c.Email,
		"phone":   c.Phone,
		"address": c.Address,
	}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return &ServiceError{
				Kind:       KindValidationFailure,
				StatusCode: 400,
				Message:    "Customer " + name + " is required",
			}
		}
	}
	return nil
}

// PreviewOrder snapshots the cart, prices it with an optional coupon and
// stores the resulting pending order under the session. Line items carry
// the catalog prices read here; confirmation never re-reads them.
func (s *OrderService) PreviewOrder(ctx context.Context, sessionID string, customer models.Customer, couponCode string) (*models.PendingOrder, *ServiceError) {
	if svcErr := validateCustomer(customer); svcErr != nil {
		return nil, svcErr
	}

	snapshot, svcErr := s.cartService.Snapshot(ctx, sessionID)
	if svcErr != nil {
		return nil, svcErr
	}
	if len(snapshot) == 0 {
		return nil, &ServiceError{Kind: KindEmptyOrder, StatusCode: 400, Message: "Cart is empty"}
	}

	coupon, err := s.couponResolver.Resolve(ctx, couponCode)
	if err != nil {
		s.logger.Error("Coupon resolution failed", zap.String("code", couponCode), zap.Error(err))
		return nil, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to apply coupon"}
	}

	totals := RoundTotals(s.pricing.ComputeTotals(snapshot, coupon))

	items := make([]models.OrderLineItem, 0, len(snapshot))
	for _, entry := range snapshot {
		items = append(items, models.OrderLineItem{
			ProductID: entry.Product.ID.Hex(),
			Name:      entry.Product.Name,
			Price:     entry.Product.Price,
			Quantity:  entry.Quantity,
			LineTotal: entry.LineTotal,
		})
	}

	pending := &models.PendingOrder{
		SessionID: sessionID,
		Customer:  customer,
		Items:     items,
		Totals:    totals,
		CreatedAt: time.Now().UTC(),
	}
	if coupon != nil {
		pending.CouponCode = coupon.Code
	}

	if err := s.cartRepo.SavePendingOrder(ctx, pending); err != nil {
		s.logger.Error("Failed to store pending order", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to store pending order"}
	}

	return pending, nil
}

// ConfirmOrder persists the session's pending order as an immutable Order
// and clears the cart. Validation happens before any write.
func (s *OrderService) ConfirmOrder(ctx context.Context, sessionID string) (*models.Order, *ServiceError) {
	pending, err := s.cartRepo.GetPendingOrder(ctx, sessionID)
	if err != nil {
		s.logger.Error("Failed to load pending order", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to load pending order"}
	}
	if pending == nil || len(pending.Items) == 0 {
		return nil, &ServiceError{Kind: KindEmptyOrder, StatusCode: 400, Message: "No pending order to confirm"}
	}

	if svcErr := validateCustomer(pending.Customer); svcErr != nil {
		return nil, svcErr
	}
	for _, item := range pending.Items {
		if item.Quantity < 1 || item.Price < 0 {
			return nil, &ServiceError{
				Kind:       KindValidationFailure,
				StatusCode: 400,
				Message:    "Order contains an invalid line item",
			}
		}
	}

	order := &models.Order{
		Customer:   pending.Customer,
		Items:      pending.Items,
		Totals:     pending.Totals,
		CouponCode: pending.CouponCode,
		Status:     models.StatusPlaced,
	}

	if err := s.orderRepo.Insert(ctx, order); err != nil {
		s.logger.Error("Failed to persist order", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to place order"}
	}

	// The order is placed; a leftover cart is a cleanup problem, not a
	// reason to fail the request.
	if err := s.cartRepo.DeleteCart(ctx, sessionID); err != nil {
		s.logger.Warn("Failed to clear cart after confirmation", zap.String("session_id", sessionID), zap.Error(err))
	}
	if err := s.cartRepo.DeletePendingOrder(ctx, sessionID); err != nil {
		s.logger.Warn("Failed to clear pending order", zap.String("session_id", sessionID), zap.Error(err))
	}

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID.Hex()),
		zap.Float64("total", order.Totals.Total),
		zap.String("coupon", order.CouponCode),
	)
	return order, nil
}

// GetOrder retrieves a single order by ID.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*models.Order, *ServiceError) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &ServiceError{Kind: KindNotFound, StatusCode: 404, Message: "Order not found"}
	}
	if err != nil {
		s.logger.Error("Failed to fetch order", zap.String("order_id", orderID), zap.Error(err))
		return nil, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to fetch order"}
	}
	return order, nil
}

// GetOrdersByEmail returns a customer's order history, newest first.
func (s *OrderService) GetOrdersByEmail(ctx context.Context, email string) ([]models.Order, *ServiceError) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, &ServiceError{Kind: KindValidationFailure, StatusCode: 400, Message: "Email is required"}
	}

	orders, err := s.orderRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("Failed to fetch orders by email", zap.Error(err))
		return nil, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to fetch orders"}
	}
	return orders, nil
}

// ListOrders returns paginated orders for the admin view, newest first.
func (s *OrderService) ListOrders(ctx context.Context, page, limit int) ([]models.Order, int64, *ServiceError) {
	orders, total, err := s.orderRepo.FindAll(ctx, page, limit)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.Error(err))
		return nil, 0, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to fetch orders"}
	}
	return orders, total, nil
}

// TransitionStatus applies a forward-only status change to an order. The
// order's status is left untouched when the transition is rejected.
func (s *OrderService) TransitionStatus(ctx context.Context, orderID string, requested models.OrderStatus) (*models.Order, *ServiceError) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &ServiceError{Kind: KindNotFound, StatusCode: 404, Message: "Order not found"}
	}
	if err != nil {
		s.logger.Error("Failed to fetch order", zap.String("order_id", orderID), zap.Error(err))
		return nil, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to fetch order"}
	}

	if svcErr := ValidateTransition(order.Status, requested); svcErr != nil {
		return nil, svcErr
	}

	if order.Status == requested {
		// Idempotent re-apply of the current status.
		return order, nil
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, requested); err != nil {
		s.logger.Error("Failed to update order status",
			zap.String("order_id", orderID),
			zap.String("status", string(requested)),
			zap.Error(err),
		)
		return nil, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to update order status"}
	}

	s.logger.Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("from", string(order.Status)),
		zap.String("to", string(requested)),
	)
	order.Status = requested
	return order, nil
}
