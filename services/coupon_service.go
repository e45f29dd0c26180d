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

// CouponService covers the admin side of coupon management. Storefront
// pricing only ever sees coupons through the CouponResolver interface.
type CouponService struct {
	repo   repository.CouponRepository
	logger *zap.Logger
}

// NewCouponService creates a new CouponService.
func NewCouponService(repo repository.CouponRepository, logger *zap.Logger) *CouponService {
	return &CouponService{repo: repo, logger: logger}
}

// CreateCoupon registers a new percentage-off code. Rates at or above 100%
// are rejected so totals can never go negative.
func (s *CouponService) CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) (*models.Coupon, *ServiceError) {
	if req.Rate <= 0 || req.Rate >= 1 {
		return nil, &ServiceError{
			Kind:       KindValidationFailure,
			StatusCode: 400,
			Message:    "Coupon rate must be between 0 and 1 exclusive",
		}
	}
	if req.ExpiresAt != nil && req.ExpiresAt.Before(time.Now()) {
		return nil, &ServiceError{
			Kind:       KindValidationFailure,
			StatusCode: 400,
			Message:    "Expiry date must be in the future",
		}
	}

	coupon := &models.Coupon{
		Code:      strings.ToUpper(strings.TrimSpace(req.Code)),
		Rate:      req.Rate,
		ExpiresAt: req.ExpiresAt,
		Active:    true,
	}
	if err := s.repo.Create(ctx, coupon); err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "unique") {
			return nil, &ServiceError{Kind: KindValidationFailure, StatusCode: 409, Message: "Coupon code already exists"}
		}
		s.logger.Error("Failed to create coupon", zap.Error(err))
		return nil, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to create coupon"}
	}

	s.logger.Info("Coupon created", zap.String("code", coupon.Code), zap.Float64("rate", coupon.Rate))
	return coupon, nil
}

// DeactivateCoupon retires a code; subsequent pricing resolves it to zero
// discount.
func (s *CouponService) DeactivateCoupon(ctx context.Context, code string) *ServiceError {
	if err := s.repo.Deactivate(ctx, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &ServiceError{Kind: KindNotFound, StatusCode: 404, Message: "Coupon not found"}
		}
		s.logger.Error("Failed to deactivate coupon", zap.String("code", code), zap.Error(err))
		return &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to deactivate coupon"}
	}

	s.logger.Info("Coupon deactivated", zap.String("code", code))
	return nil
}

// ListCoupons returns paginated coupons for the admin view.
func (s *CouponService) ListCoupons(ctx context.Context, page, limit int) ([]models.Coupon, int64, *ServiceError) {
	coupons, total, err := s.repo.FindAll(ctx, page, limit)
	if err != nil {
		s.logger.Error("Failed to list coupons", zap.Error(err))
		return nil, 0, &ServiceError{Kind: KindInternal, StatusCode: 500, Message: "Failed to list coupons"}
	}
	return coupons, total, nil
}
