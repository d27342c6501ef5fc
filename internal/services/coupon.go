package services

import "github.com/Kenji-One/tikd/internal/models"

// CouponRegistry is the full coupon store used by organizer admin
type CouponRegistry interface {
	CouponStore
	Create(req *models.CouponCreateRequest) (*models.Coupon, error)
	List() ([]*models.Coupon, error)
}

// CouponService handles coupon business logic
type CouponService struct {
	repo CouponRegistry
}

// NewCouponService creates a new coupon service
func NewCouponService(repo CouponRegistry) *CouponService {
	return &CouponService{repo: repo}
}

// CreateCoupon creates a new coupon; duplicate codes surface as
// models.ErrDuplicateCoupon
func (s *CouponService) CreateCoupon(req *models.CouponCreateRequest) (*models.Coupon, error) {
	return s.repo.Create(req)
}

// ListCoupons returns all coupons
func (s *CouponService) ListCoupons() ([]*models.Coupon, error) {
	return s.repo.List()
}

// Resolve looks up a coupon by code; absence is (nil, nil)
func (s *CouponService) Resolve(code string) (*models.Coupon, error) {
	return s.repo.FindByCode(code)
}
