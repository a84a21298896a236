package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripeGateway implements PaymentGateway against the Stripe API.
type StripeGateway struct{}

// NewStripeGateway configures the Stripe client with the secret API key.
func NewStripeGateway(apiKey string) *StripeGateway {
	stripe.Key = apiKey
	return &StripeGateway{}
}

// CreateIntent creates a card payment intent and returns its client secret.
// Each request carries a fresh idempotency key so a transport-level retry
// by the SDK cannot double-create intents.
func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.IdempotencyKey = stripe.String(uuid.NewString())

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
