package processor

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Intent is the part of a processor payment intent the client needs to confirm the charge.
type Intent struct {
	ID           string
	ClientSecret string
}

// IntentCreator creates card payment intents for an amount in minor units.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64) (*Intent, error)
}

// StripeProcessor creates payment intents through the Stripe API.
type StripeProcessor struct {
	api      *client.API
	currency string
}

// NewStripeProcessor creates a processor bound to one secret key and currency.
func NewStripeProcessor(secretKey, currency string) *StripeProcessor {
	return newStripeProcessor(secretKey, currency, &stripe.BackendConfig{})
}

func newStripeProcessor(secretKey, currency string, cfg *stripe.BackendConfig) *StripeProcessor {
	// failures surface to the caller as-is
	cfg.MaxNetworkRetries = stripe.Int64(0)
	api := &client.API{}
	api.Init(secretKey, &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, cfg),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, cfg),
	})
	return &StripeProcessor{api: api, currency: currency}
}

// CreateIntent creates a card-only intent. Nothing is retried.
func (p *StripeProcessor) CreateIntent(ctx context.Context, amount int64) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(p.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
