package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the lifecycle state of a placed order.
type OrderStatus string

const (
	StatusPlaced     OrderStatus = "Placed"
	StatusProcessing OrderStatus = "Processing"
	StatusDelivered  OrderStatus = "Delivered"
)

// Customer holds the buyer details captured at checkout. All fields required.
type Customer struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
}

// OrderLineItem is a product snapshot frozen at preview time. The price and
// line total are never recomputed from the live catalog.
type OrderLineItem struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
	LineTotal float64 `json:"line_total" bson:"line_total"`
}

// OrderTotals is the full price breakdown for a cart snapshot.
type OrderTotals struct {
	Subtotal float64 `json:"subtotal" bson:"subtotal"`
	Tax      float64 `json:"tax" bson:"tax"`
	Shipping float64 `json:"shipping" bson:"shipping"`
	Discount float64 `json:"discount" bson:"discount"`
	Total    float64 `json:"total" bson:"total"`
}

// Order is the persisted record of a confirmed purchase. Immutable except
// for Status.
type Order struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Customer   Customer           `json:"customer" bson:"customer"`
	Items      []OrderLineItem    `json:"items" bson:"items"`
	Totals     OrderTotals        `json:"totals" bson:"totals,inline"`
	CouponCode string             `json:"coupon_code,omitempty" bson:"coupon_code,omitempty"`
	Status     OrderStatus        `json:"status" bson:"status"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

// PendingOrder is the ephemeral, unpersisted order held in Redis between
// preview and confirmation.
type PendingOrder struct {
	SessionID  string          `json:"session_id"`
	Customer   Customer        `json:"customer"`
	Items      []OrderLineItem `json:"items"`
	Totals     OrderTotals     `json:"totals"`
	CouponCode string          `json:"coupon_code,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// PreviewOrderRequest is the checkout form payload.
type PreviewOrderRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
	Coupon  string `json:"coupon"`
}

// UpdateStatusRequest is the admin payload for a status transition.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
