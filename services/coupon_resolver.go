package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"play-cards-store/models"
	"play-cards-store/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CouponResolver maps a coupon code to its discount rule. A nil coupon with
// a nil error means the code is unknown, inactive or expired; pricing treats
// that as zero discount rather than an error.
type CouponResolver interface {
	Resolve(ctx context.Context, code string) (*models.Coupon, error)
}

// RepositoryCouponResolver resolves coupons from the Postgres coupon store.
type RepositoryCouponResolver struct {
	repo   repository.CouponRepository
	logger *zap.Logger
}

// NewRepositoryCouponResolver creates a resolver backed by a CouponRepository.
func NewRepositoryCouponResolver(repo repository.CouponRepository, logger *zap.Logger) *RepositoryCouponResolver {
	return &RepositoryCouponResolver{repo: repo, logger: logger}
}

func (r *RepositoryCouponResolver) Resolve(ctx context.Context, code string) (*models.Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}

	coupon, err := r.repo.FindByCode(ctx, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Unknown codes are not an error; the order proceeds undiscounted.
		r.logger.Debug("coupon not resolved", zap.String("code", code))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if coupon.ExpiresAt != nil && time.Now().After(*coupon.ExpiresAt) {
		return nil, nil
	}
	return coupon, nil
}

// StaticCouponResolver resolves coupons from a fixed in-memory table. It
// serves tests and deployments without a coupon database.
type StaticCouponResolver struct {
	rates map[string]float64
}

// NewStaticCouponResolver creates a resolver over a code → rate table.
// Lookups are case-insensitive.
func NewStaticCouponResolver(rates map[string]float64) *StaticCouponResolver {
	normalized := make(map[string]float64, len(rates))
	for code, rate := range rates {
		normalized[strings.ToUpper(code)] = rate
	}
	return &StaticCouponResolver{rates: normalized}
}

// DefaultCouponResolver returns the built-in coupon table: SAVE10, 10% off.
func DefaultCouponResolver() *StaticCouponResolver {
	return NewStaticCouponResolver(map[string]float64{"SAVE10": 0.10})
}

func (r *StaticCouponResolver) Resolve(_ context.Context, code string) (*models.Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	rate, ok := r.rates[code]
	if !ok {
		return nil, nil
	}
	return &models.Coupon{Code: code, Rate: rate, Active: true}, nil
}
