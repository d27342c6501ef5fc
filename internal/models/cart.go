package models

import (
	"fmt"
	"strings"
)

// CartItem represents one line of a checkout cart as submitted by the
// client: which ticket type of which event, at what claimed price
type CartItem struct {
	EventID      int     `json:"event_id"`
	TicketTypeID int     `json:"ticket_type_id"`
	UnitPrice    float64 `json:"unit_price"`
	Currency     string  `json:"currency"`
	Quantity     int     `json:"quantity"`
}

// Validate validates a single cart line
func (i *CartItem) Validate() error {
	if i.EventID <= 0 {
		return fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}
	if i.TicketTypeID <= 0 {
		return fmt.Errorf("%w: ticket type id is required", ErrInvalidInput)
	}
	if i.UnitPrice < 0 {
		return fmt.Errorf("%w: unit price cannot be negative", ErrInvalidInput)
	}
	if len(i.Currency) != 3 {
		return fmt.Errorf("%w: currency must be a 3-letter code", ErrInvalidInput)
	}
	if i.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	return nil
}

// NormalizedCurrency returns the item currency upper-cased
func (i *CartItem) NormalizedCurrency() string {
	return strings.ToUpper(i.Currency)
}

// PriceLine is one human-readable summary row of a price breakdown
type PriceLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// PriceBreakdown is the immutable result of pricing a cart. All
// monetary fields are rounded to 2 decimal places.
type PriceBreakdown struct {
	Currency    string      `json:"currency"`
	Subtotal    float64     `json:"subtotal"`
	Fees        float64     `json:"fees"`
	Discount    float64     `json:"discount"`
	Total       float64     `json:"total"`
	TicketCount int         `json:"ticket_count"`
	Lines       []PriceLine `json:"lines"`
}
