package handlers

import (
	"net/http"

	"github.com/Kenji-One/tikd/internal/middleware"
	"github.com/Kenji-One/tikd/internal/models"
	"github.com/Kenji-One/tikd/internal/services"
)

// CouponsHandler handles organizer coupon administration
type CouponsHandler struct {
	couponService services.CouponServiceInterface
}

// NewCouponsHandler creates a new coupons handler
func NewCouponsHandler(couponService services.CouponServiceInterface) *CouponsHandler {
	return &CouponsHandler{couponService: couponService}
}

// Create creates a new coupon. Duplicate codes are a 409.
func (h *CouponsHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		writeError(w, models.ErrUnauthorized)
		return
	}

	var req models.CouponCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, err)
		return
	}

	coupon, err := h.couponService.CreateCoupon(&req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, coupon)
}

// List returns all coupons
func (h *CouponsHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		writeError(w, models.ErrUnauthorized)
		return
	}

	coupons, err := h.couponService.ListCoupons()
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"coupons": coupons,
	})
}
