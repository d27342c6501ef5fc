package services

import (
	"fmt"

	"github.com/Kenji-One/tikd/internal/models"
)

// DefaultPerTicketFee is the service fee charged per ticket, in major
// units, when no fee is configured.
const DefaultPerTicketFee = 1.99

// DefaultCurrency is the breakdown currency for empty carts
const DefaultCurrency = "USD"

// PricingEngine computes price breakdowns for validated carts. It is a
// pure calculator: malformed input (negative prices, mixed currencies)
// is the checkout service's responsibility, never the engine's.
type PricingEngine struct {
	perTicketFee    float64
	defaultCurrency string
}

// NewPricingEngine creates a new pricing engine
func NewPricingEngine(perTicketFee float64, defaultCurrency string) *PricingEngine {
	if defaultCurrency == "" {
		defaultCurrency = DefaultCurrency
	}
	return &PricingEngine{
		perTicketFee:    perTicketFee,
		defaultCurrency: defaultCurrency,
	}
}

// ComputeBreakdown prices a cart with an optional resolved coupon.
// Every monetary combination is rounded to 2 decimals as it happens,
// the discount is clamped to the subtotal, and the total never goes
// negative.
func (e *PricingEngine) ComputeBreakdown(items []models.CartItem, coupon *models.Coupon) models.PriceBreakdown {
	if len(items) == 0 {
		return models.PriceBreakdown{
			Currency: e.defaultCurrency,
			Lines:    []models.PriceLine{},
		}
	}

	// Currency comes from the first item; the checkout service has
	// already rejected mixed-currency carts.
	currency := items[0].NormalizedCurrency()

	var subtotal float64
	var ticketCount int
	for _, item := range items {
		subtotal = models.Round2(subtotal + models.Round2(item.UnitPrice*float64(item.Quantity)))
		ticketCount += item.Quantity
	}

	fees := models.Round2(float64(ticketCount) * e.perTicketFee)

	var discount float64
	if coupon != nil {
		switch coupon.Kind {
		case models.CouponFlat:
			discount = coupon.Value
		case models.CouponPercent:
			discount = subtotal * coupon.Value / 100
		}
		discount = models.Round2(discount)
		// A discount can never exceed the subtotal, whatever the
		// coupon says.
		if discount > subtotal {
			discount = subtotal
		}
	}

	total := models.Round2(subtotal + fees - discount)
	if total < 0 {
		total = 0
	}

	label := fmt.Sprintf("%d Tickets", ticketCount)
	if ticketCount == 1 {
		label = "1 Ticket"
	}

	return models.PriceBreakdown{
		Currency:    currency,
		Subtotal:    subtotal,
		Fees:        fees,
		Discount:    discount,
		Total:       total,
		TicketCount: ticketCount,
		Lines: []models.PriceLine{
			{Label: label, Amount: subtotal},
		},
	}
}
