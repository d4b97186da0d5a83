package payment_test

import (
	"context"
	"strings"
	"testing"

	"cruisevoyager/infras/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfflineProvider_CreateIntent(t *testing.T) {
	provider := payment.NewOfflineProvider()

	intent, err := provider.CreateIntent(context.Background(), 160000, "usd", nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(intent.ID, "mock_pi_"))
	assert.NotEmpty(t, intent.ClientSecret)
	assert.False(t, provider.Enabled())
}

func TestOfflineProvider_ConstructEvent(t *testing.T) {
	provider := payment.NewOfflineProvider()

	body := `{
		"id": "evt_1",
		"type": "payment_intent.succeeded",
		"data": {
			"object": {
				"id": "pi_123",
				"metadata": {"bookingId": "booking-1"}
			}
		}
	}`

	event, err := provider.ConstructEvent([]byte(body), "")
	require.NoError(t, err)

	assert.Equal(t, "evt_1", event.ID)
	assert.Equal(t, payment.EventTypePaymentSucceeded, event.Type)
	assert.Equal(t, "pi_123", event.ObjectID)
	assert.Equal(t, "booking-1", event.Metadata["bookingId"])
}

func TestOfflineProvider_ConstructEvent_Malformed(t *testing.T) {
	provider := payment.NewOfflineProvider()

	_, err := provider.ConstructEvent([]byte("not json"), "")
	assert.Error(t, err)
}
