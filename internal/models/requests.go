package models

import (
	"fmt"
	"regexp"
)

var requestEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CheckoutRequest represents a client-submitted cart to turn into a
// payment intent. Email is optional; when present it is forwarded to
// the payment provider for the receipt.
type CheckoutRequest struct {
	Items      []CartItem `json:"items"`
	CouponCode string     `json:"coupon_code,omitempty"`
	Email      string     `json:"email,omitempty"`
}

// Validate validates the shape of the request body. Cart-level rules
// (empty cart, mixed currencies, price drift) are the checkout
// service's responsibility.
func (r *CheckoutRequest) Validate() error {
	for i := range r.Items {
		if err := r.Items[i].Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	if r.Email != "" && !requestEmailRegex.MatchString(r.Email) {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	return nil
}

// FriendRequestCreate represents a request to open friendship edges
// with one recipient or a batch of them
type FriendRequestCreate struct {
	RecipientID  int   `json:"recipient_id,omitempty"`
	RecipientIDs []int `json:"recipient_ids,omitempty"`
}

// Recipients merges the single and batch forms into one list
func (r *FriendRequestCreate) Recipients() []int {
	recipients := make([]int, 0, len(r.RecipientIDs)+1)
	if r.RecipientID > 0 {
		recipients = append(recipients, r.RecipientID)
	}
	recipients = append(recipients, r.RecipientIDs...)
	return recipients
}

// Validate validates the friend request body
func (r *FriendRequestCreate) Validate() error {
	recipients := r.Recipients()
	if len(recipients) == 0 {
		return fmt.Errorf("%w: at least one recipient is required", ErrInvalidInput)
	}
	for _, id := range recipients {
		if id <= 0 {
			return fmt.Errorf("%w: recipient id must be positive", ErrInvalidInput)
		}
	}
	return nil
}
