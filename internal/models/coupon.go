package models

import (
	"fmt"
	"strings"
	"time"
)

// CouponKind determines how a coupon's value is applied to a subtotal
type CouponKind string

const (
	CouponFlat    CouponKind = "flat"    // fixed monetary amount
	CouponPercent CouponKind = "percent" // percentage of subtotal, 0-100
)

// Coupon represents a discount descriptor resolved by code at checkout
// time. Coupons are never mutated as part of an order.
type Coupon struct {
	ID        int        `json:"id" db:"id"`
	Code      string     `json:"code" db:"code"`
	Kind      CouponKind `json:"kind" db:"kind"`
	Value     float64    `json:"value" db:"value"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// NormalizeCouponCode upper-cases and trims a coupon code. Codes are
// persisted upper-cased, so lookups must normalize the same way.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CouponCreateRequest represents the data needed to create a coupon
type CouponCreateRequest struct {
	Code  string     `json:"code"`
	Kind  CouponKind `json:"kind"`
	Value float64    `json:"value"`
}

// Validate validates the coupon data
func (r *CouponCreateRequest) Validate() error {
	if NormalizeCouponCode(r.Code) == "" {
		return fmt.Errorf("%w: coupon code is required", ErrInvalidInput)
	}
	switch r.Kind {
	case CouponFlat:
		if r.Value < 0 {
			return fmt.Errorf("%w: flat discount cannot be negative", ErrInvalidInput)
		}
	case CouponPercent:
		if r.Value < 0 || r.Value > 100 {
			return fmt.Errorf("%w: percent discount must be between 0 and 100", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: coupon kind must be flat or percent", ErrInvalidInput)
	}
	return nil
}
