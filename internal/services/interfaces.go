package services

import "github.com/Kenji-One/tikd/internal/models"

// PaymentIntentRequest represents a request to create a payment intent
// with the payment provider. Amount is in integer minor units (cents).
type PaymentIntentRequest struct {
	Amount       int64
	Currency     string
	Description  string
	ReceiptEmail string
	Reference    string
}

// PaymentIntent represents a created payment intent. ClientSecret is
// the client-side confirmation handle returned to the browser.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
}

// PaymentService abstracts the payment provider
type PaymentService interface {
	CreatePaymentIntent(req *PaymentIntentRequest) (*PaymentIntent, error)
}

// CheckoutServiceInterface is implemented by CheckoutService
type CheckoutServiceInterface interface {
	CreatePaymentIntent(req *models.CheckoutRequest) (*CheckoutResult, error)
}

// FriendshipServiceInterface is implemented by FriendshipService
type FriendshipServiceInterface interface {
	Request(requesterID, recipientID int) (*models.Friendship, RequestOutcome, error)
	BatchRequest(requesterID int, recipientIDs []int) []BatchRequestResult
	Accept(friendshipID, actingUserID int) (*models.Friendship, error)
	Decline(friendshipID, actingUserID int) (*models.Friendship, error)
	Remove(userA, userB int) error
	List(userID int) ([]models.FriendView, error)
}

// CouponServiceInterface is implemented by CouponService
type CouponServiceInterface interface {
	CreateCoupon(req *models.CouponCreateRequest) (*models.Coupon, error)
	ListCoupons() ([]*models.Coupon, error)
	Resolve(code string) (*models.Coupon, error)
}
