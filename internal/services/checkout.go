package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Kenji-One/tikd/internal/models"
)

// TicketTypeStore is the authoritative ticket-type record source
type TicketTypeStore interface {
	GetByEvent(eventID int) ([]*models.TicketType, error)
}

// CouponStore resolves coupons by code. A missing coupon is (nil, nil).
type CouponStore interface {
	FindByCode(code string) (*models.Coupon, error)
}

// CheckoutService revalidates client-submitted carts against the
// authoritative ticket-type records and creates payment intents. It is
// the single place that classifies checkout failures: prices can change
// between cart population and submission, and the drift check here is
// the only defense against a stale or manipulated cart price.
type CheckoutService struct {
	ticketTypes TicketTypeStore
	coupons     CouponStore
	pricing     *PricingEngine
	payments    PaymentService
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	ticketTypes TicketTypeStore,
	coupons CouponStore,
	pricing *PricingEngine,
	payments PaymentService,
) *CheckoutService {
	return &CheckoutService{
		ticketTypes: ticketTypes,
		coupons:     coupons,
		pricing:     pricing,
		payments:    payments,
	}
}

// CheckoutResult is returned on successful payment-intent creation
type CheckoutResult struct {
	ClientSecret string                `json:"client_secret"`
	Reference    string                `json:"reference"`
	Breakdown    models.PriceBreakdown `json:"breakdown"`
}

// CreatePaymentIntent validates the cart, prices it, and creates a
// payment intent with the provider. Provider failures are not retried;
// the client retries the whole request.
func (s *CheckoutService) CreatePaymentIntent(req *models.CheckoutRequest) (*CheckoutResult, error) {
	if len(req.Items) == 0 {
		return nil, models.ErrEmptyCart
	}

	currency := req.Items[0].NormalizedCurrency()
	for _, item := range req.Items {
		if item.NormalizedCurrency() != currency {
			return nil, models.ErrMixedCurrency
		}
	}

	if err := s.validateAgainstAuthoritative(req.Items); err != nil {
		return nil, err
	}

	var coupon *models.Coupon
	if req.CouponCode != "" {
		var err error
		coupon, err = s.coupons.FindByCode(req.CouponCode)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve coupon: %w", err)
		}
		// An unknown code is not an error, just no discount.
	}

	breakdown := s.pricing.ComputeBreakdown(req.Items, coupon)

	// The only minor-unit conversion happens here, at the provider
	// boundary, after all 2-decimal rounding is done.
	amount := models.MinorUnits(breakdown.Total)
	reference := uuid.New().String()

	intent, err := s.payments.CreatePaymentIntent(&PaymentIntentRequest{
		Amount:       amount,
		Currency:     breakdown.Currency,
		Description:  fmt.Sprintf("Ticket order %s", reference),
		ReceiptEmail: req.Email,
		Reference:    reference,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPaymentProvider, err)
	}

	return &CheckoutResult{
		ClientSecret: intent.ClientSecret,
		Reference:    reference,
		Breakdown:    breakdown,
	}, nil
}

// validateAgainstAuthoritative checks every cart line against the
// current ticket-type records, rejecting on any drift
func (s *CheckoutService) validateAgainstAuthoritative(items []models.CartItem) error {
	byEvent := make(map[int]map[int]*models.TicketType)

	for _, item := range items {
		ticketTypes, ok := byEvent[item.EventID]
		if !ok {
			fetched, err := s.ticketTypes.GetByEvent(item.EventID)
			if err != nil {
				return err
			}
			ticketTypes = make(map[int]*models.TicketType, len(fetched))
			for _, tt := range fetched {
				ticketTypes[tt.ID] = tt
			}
			byEvent[item.EventID] = ticketTypes
		}

		authoritative, ok := ticketTypes[item.TicketTypeID]
		if !ok {
			return fmt.Errorf("%w: ticket type %d for event %d", models.ErrTicketTypeNotFound, item.TicketTypeID, item.EventID)
		}

		// Compare at cent precision so float scanning noise cannot
		// cause false drift.
		if models.MinorUnits(authoritative.Price) != models.MinorUnits(item.UnitPrice) ||
			authoritative.Currency != item.NormalizedCurrency() {
			return fmt.Errorf("%w: ticket type %d", models.ErrPriceDrift, item.TicketTypeID)
		}
	}

	return nil
}
