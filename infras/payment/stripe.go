package payment

import (
	"context"
	"encoding/json"
	"fmt"

	"cruisevoyager/config"
	"cruisevoyager/infras/otel"
	"cruisevoyager/shared/constant"
	"cruisevoyager/shared/logger"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/paymentintent"
	"github.com/stripe/stripe-go/v78/webhook"
)

type stripeProvider struct {
	webhookSecret string
	otel          otel.Otel
}

// NewStripeProvider configures the global Stripe client with the secret key
// and returns a Provider backed by the Stripe API.
func NewStripeProvider(cfg *config.Config, otl otel.Otel) Provider {
	stripe.Key = cfg.Stripe.SecretKey

	return &stripeProvider{
		webhookSecret: cfg.Stripe.WebhookSecret,
		otel:          otl,
	}
}

func (p *stripeProvider) Enabled() bool {
	return true
}

func (p *stripeProvider) CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (Intent, error) {
	_, scope := p.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".stripe.CreateIntent")
	defer scope.End()

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	for key, value := range metadata {
		params.AddMetadata(key, value)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return Intent{}, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func (p *stripeProvider) ConstructEvent(payload []byte, sigHeader string) (Event, error) {
	if p.webhookSecret == "" {
		return parseUnverifiedEvent(payload)
	}

	stripeEvent, err := webhook.ConstructEvent(payload, sigHeader, p.webhookSecret)
	if err != nil {
		return Event{}, fmt.Errorf("failed to verify webhook signature: %w", err)
	}

	var object struct {
		ID       string            `json:"id"`
		Metadata map[string]string `json:"metadata"`
	}

	if err = json.Unmarshal(stripeEvent.Data.Raw, &object); err != nil {
		return Event{}, fmt.Errorf("failed to decode webhook payload: %w", err)
	}

	return Event{
		ID:       stripeEvent.ID,
		Type:     string(stripeEvent.Type),
		ObjectID: object.ID,
		Metadata: object.Metadata,
	}, nil
}

// parseUnverifiedEvent decodes the raw webhook body without signature
// verification. Only reached when no webhook secret is configured.
func parseUnverifiedEvent(payload []byte) (Event, error) {
	var body struct {
		ID   string `json:"id"`
		Type string `json:"type"`
		Data struct {
			Object struct {
				ID       string            `json:"id"`
				Metadata map[string]string `json:"metadata"`
			} `json:"object"`
		} `json:"data"`
	}

	if err := json.Unmarshal(payload, &body); err != nil {
		return Event{}, fmt.Errorf("failed to decode webhook payload: %w", err)
	}

	return Event{
		ID:       body.ID,
		Type:     body.Type,
		ObjectID: body.Data.Object.ID,
		Metadata: body.Data.Object.Metadata,
	}, nil
}
