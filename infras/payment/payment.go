package payment

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=./mocks/payment_mock.go -package=mocks

import (
	"context"

	"cruisevoyager/config"
	"cruisevoyager/infras/otel"

	"github.com/rs/zerolog/log"
)

// EventTypePaymentSucceeded is the webhook event emitted when a payment
// intent settles successfully.
const EventTypePaymentSucceeded = "payment_intent.succeeded"

// Intent is the provider-agnostic view of a created payment intent.
type Intent struct {
	ID           string
	ClientSecret string
}

// Event is the provider-agnostic view of a verified webhook event.
type Event struct {
	ID       string
	Type     string
	ObjectID string
	Metadata map[string]string
}

// Provider abstracts the payment processor so the booking flow works both
// against Stripe and against the offline stand-in used in development.
type Provider interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string, metadata map[string]string) (Intent, error)
	ConstructEvent(payload []byte, sigHeader string) (Event, error)
	Enabled() bool
}

// New selects the Stripe-backed provider when a secret key is configured,
// and the offline provider otherwise.
func New(cfg *config.Config, otl otel.Otel) Provider {
	if cfg.Stripe.SecretKey == "" {
		log.Warn().Msg("No payment secret key configured, using offline payment provider")

		return NewOfflineProvider()
	}

	return NewStripeProvider(cfg, otl)
}
