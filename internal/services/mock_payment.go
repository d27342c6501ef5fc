package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/Kenji-One/tikd/internal/config"
)

// MockPaymentService provides a payment service that uses Stripe when
// credentials are configured and falls back to a mock otherwise, so the
// application runs without provider credentials in development.
type MockPaymentService struct {
	stripeService *StripeService
	useStripe     bool
}

// NewMockPaymentService creates a new mock payment service with Stripe support
func NewMockPaymentService(stripeConfig *config.StripeConfig) *MockPaymentService {
	service := &MockPaymentService{}

	if stripeConfig != nil && stripeConfig.SecretKey != "" {
		service.stripeService = NewStripeService(StripeConfig{
			SecretKey:      stripeConfig.SecretKey,
			PublishableKey: stripeConfig.PublishableKey,
			Environment:    stripeConfig.Environment,
		})
		service.useStripe = true
		log.Printf("Payment service: Using Stripe API (%s environment)", stripeConfig.Environment)
	} else {
		log.Println("Payment service: Using mock (no Stripe credentials provided)")
	}

	return service
}

// CreatePaymentIntent creates a payment intent
func (s *MockPaymentService) CreatePaymentIntent(req *PaymentIntentRequest) (*PaymentIntent, error) {
	if s.useStripe && s.stripeService != nil {
		return s.stripeService.CreatePaymentIntent(req)
	}

	// Mock implementation - simulate a created intent
	id := fmt.Sprintf("pi_mock_%s", strings.ReplaceAll(uuid.New().String(), "-", ""))

	log.Printf("Mock Payment: Created intent for %d %s (%s)", req.Amount, req.Currency, req.Description)

	return &PaymentIntent{
		ID:           id,
		ClientSecret: fmt.Sprintf("%s_secret_%s", id, strings.ReplaceAll(uuid.New().String(), "-", "")),
		Status:       "requires_payment_method",
	}, nil
}

// TestConnection tests the payment service connection
func (s *MockPaymentService) TestConnection() error {
	if s.useStripe && s.stripeService != nil {
		return s.stripeService.TestConnection()
	}

	// Mock always works
	return nil
}
