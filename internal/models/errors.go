package models

import "errors"

// Common errors used throughout the application
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrFriendshipNotFound = errors.New("friendship not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUnauthorized       = errors.New("unauthorized access")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrDuplicateCoupon    = errors.New("coupon code already exists")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrMixedCurrency      = errors.New("cart contains more than one currency")
	ErrPriceDrift         = errors.New("cart is out of date with current ticket prices")
	ErrPaymentProvider    = errors.New("payment provider error")
)
