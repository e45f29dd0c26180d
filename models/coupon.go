package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Coupon is a percentage-off promotion stored in Postgres. Rate is a
// fraction in [0, 1); a rate of 0.10 means 10% off the subtotal.
type Coupon struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code      string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"code"`
	Rate      float64        `gorm:"not null" json:"rate"`
	ExpiresAt *time.Time     `json:"expires_at,omitempty"`
	Active    bool           `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// CreateCouponRequest is the admin payload for creating a coupon.
type CreateCouponRequest struct {
	Code      string     `json:"code" binding:"required,min=3,max=64"`
	Rate      float64    `json:"rate" binding:"required,gt=0,lt=1"`
	ExpiresAt *time.Time `json:"expires_at"`
}
