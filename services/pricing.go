package services

import (
	"math"

	"play-cards-store/models"
)

// PricingEngine derives order totals from a cart snapshot. ComputeTotals is
// pure: identical inputs always yield identical outputs.
type PricingEngine struct {
	taxRate     float64
	shippingFee float64
}

// NewPricingEngine creates a PricingEngine with the configured tax rate and
// flat shipping fee.
func NewPricingEngine(taxRate, shippingFee float64) *PricingEngine {
	return &PricingEngine{taxRate: taxRate, shippingFee: shippingFee}
}

// ComputeTotals calculates the price breakdown for a snapshot. A nil coupon
// means no discount. Intermediate values are kept at full precision;
// rounding to currency precision happens once, via Round.
func (p *PricingEngine) ComputeTotals(snapshot []models.SnapshotItem, coupon *models.Coupon) models.OrderTotals {
	subtotal := 0.0
	for _, item := range snapshot {
		subtotal += item.Product.Price * float64(item.Quantity)
	}

	tax := subtotal * p.taxRate

	shipping := 0.0
	if subtotal > 0 {
		shipping = p.shippingFee
	}

	discount := 0.0
	if coupon != nil {
		discount = subtotal * coupon.Rate
	}

	return models.OrderTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Discount: discount,
		Total:    subtotal + tax + shipping - discount,
	}
}

// Round2 rounds a monetary amount to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RoundTotals applies currency rounding to every field of a breakdown. Used
// once, at the preview boundary, before totals are shown or persisted. Total
// is recomputed from the rounded components so the stored breakdown always
// sums to its own total.
func RoundTotals(t models.OrderTotals) models.OrderTotals {
	rounded := models.OrderTotals{
		Subtotal: Round2(t.Subtotal),
		Tax:      Round2(t.Tax),
		Shipping: Round2(t.Shipping),
		Discount: Round2(t.Discount),
	}
	rounded.Total = Round2(rounded.Subtotal + rounded.Tax + rounded.Shipping - rounded.Discount)
	return rounded
}
