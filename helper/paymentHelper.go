package helper

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// IntentCreator creates a charge intent with the payment provider and
// returns its client secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// StripeService is a stateless call-through to Stripe. No idempotency
// key is sent, so a duplicate request allocates a duplicate intent;
// callers dedupe client-side.
type StripeService struct {
	api *client.API
}

func NewStripeService(secretKey string) *StripeService {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeService{api: api}
}

func (s *StripeService) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	params.Context = ctx

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
