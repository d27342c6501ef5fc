package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// StripeConfig represents Stripe payment service configuration
type StripeConfig struct {
	SecretKey      string
	PublishableKey string
	Environment    string // "test" or "live"
}

// StripeService creates payment intents via the Stripe API
type StripeService struct {
	config  StripeConfig
	client  *http.Client
	baseURL string
}

// NewStripeService creates a new Stripe payment service
func NewStripeService(config StripeConfig) *StripeService {
	return &StripeService{
		config:  config,
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: "https://api.stripe.com",
	}
}

// stripePaymentIntent is the subset of Stripe's payment intent object
// that we consume
type stripePaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// StripeError represents an error response from Stripe
type StripeError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *StripeError) Error() string {
	return fmt.Sprintf("Stripe error: %s", e.Message)
}

type stripeErrorResponse struct {
	Error StripeError `json:"error"`
}

// CreatePaymentIntent creates a payment intent with Stripe. Amount must
// already be in integer minor units.
func (s *StripeService) CreatePaymentIntent(req *PaymentIntentRequest) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.Amount, 10))
	form.Set("currency", strings.ToLower(req.Currency))
	form.Set("description", req.Description)
	form.Set("metadata[reference]", req.Reference)
	if req.ReceiptEmail != "" {
		form.Set("receipt_email", req.ReceiptEmail)
	}

	httpReq, err := http.NewRequest("POST", s.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+s.config.SecretKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("payment intent request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read payment intent response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp stripeErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			return nil, &errResp.Error
		}
		return nil, fmt.Errorf("payment intent creation failed with status %d", resp.StatusCode)
	}

	var intent stripePaymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("failed to parse payment intent response: %w", err)
	}

	return &PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       intent.Status,
	}, nil
}

// TestConnection verifies the API key by listing a single payment intent
func (s *StripeService) TestConnection() error {
	httpReq, err := http.NewRequest("GET", s.baseURL+"/v1/payment_intents?limit=1", nil)
	if err != nil {
		return fmt.Errorf("failed to create test request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.config.SecretKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("test request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("test request returned status %d", resp.StatusCode)
	}
	return nil
}
