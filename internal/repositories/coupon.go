package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Kenji-One/tikd/internal/models"
)

// CouponRepository handles coupon data operations
type CouponRepository struct {
	db *sql.DB
}

// NewCouponRepository creates a new coupon repository
func NewCouponRepository(db *sql.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

// FindByCode looks up a coupon by its code, normalizing to upper case
// the same way codes are persisted. A missing coupon is not an error:
// the caller treats (nil, nil) as "no discount".
func (r *CouponRepository) FindByCode(code string) (*models.Coupon, error) {
	query := `
		SELECT id, code, kind, value, created_at
		FROM coupons
		WHERE code = $1`

	coupon := &models.Coupon{}
	err := r.db.QueryRow(query, models.NormalizeCouponCode(code)).Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.Kind,
		&coupon.Value,
		&coupon.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find coupon: %w", err)
	}

	return coupon, nil
}

// Create persists a new coupon with an upper-cased code. A duplicate
// code maps to models.ErrDuplicateCoupon.
func (r *CouponRepository) Create(req *models.CouponCreateRequest) (*models.Coupon, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO coupons (code, kind, value)
		VALUES ($1, $2, $3)
		RETURNING id, code, kind, value, created_at`

	coupon := &models.Coupon{}
	err := r.db.QueryRow(query, models.NormalizeCouponCode(req.Code), req.Kind, req.Value).Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.Kind,
		&coupon.Value,
		&coupon.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, models.ErrDuplicateCoupon
		}
		return nil, fmt.Errorf("failed to create coupon: %w", err)
	}

	return coupon, nil
}

// List returns all coupons ordered by creation time
func (r *CouponRepository) List() ([]*models.Coupon, error) {
	rows, err := r.db.Query(`
		SELECT id, code, kind, value, created_at
		FROM coupons
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons: %w", err)
	}
	defer rows.Close()

	var coupons []*models.Coupon
	for rows.Next() {
		coupon := &models.Coupon{}
		if err := rows.Scan(
			&coupon.ID,
			&coupon.Code,
			&coupon.Kind,
			&coupon.Value,
			&coupon.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan coupon: %w", err)
		}
		coupons = append(coupons, coupon)
	}

	return coupons, rows.Err()
}
