// Package payments talks to the external card-payment provider. The rest
// of the application only sees the IntentCreator interface, so the
// provider can be faked in tests.
package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// ErrProvider wraps any failure reported by the payment provider.
// Provider failures are surfaced to the caller and never retried here.
var ErrProvider = errors.New("payments: provider error")

// IntentCreator requests a card-payment intent for an amount in minor
// units and returns the provider's client secret unmodified.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error)
}

// StripeClient implements IntentCreator against the Stripe API.
type StripeClient struct {
	api *client.API
}

// NewStripeClient builds a client with the given secret key.
func NewStripeClient(secretKey string) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{api: api}
}

// CreateIntent requests a card payment intent. amountMinor is in the
// currency's smallest unit (cents for usd).
func (s *StripeClient) CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinor),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}
	return intent.ClientSecret, nil
}
