package service_test

import (
	"context"
	"math"
	"net/http"
	"testing"
	"time"

	"cruisevoyager/config"
	"cruisevoyager/infras/otel/mocks"
	"cruisevoyager/infras/payment"
	bookingModel "cruisevoyager/internal/domains/booking/model"
	"cruisevoyager/internal/domains/booking/model/dto"
	bookingRepository "cruisevoyager/internal/domains/booking/repository"
	"cruisevoyager/internal/domains/payment/service"
	"cruisevoyager/shared/constant"
	"cruisevoyager/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type providerRecorder struct {
	intent      payment.Intent
	intentErr   error
	event       payment.Event
	eventErr    error
	amountCents int64
	currency    string
	metadata    map[string]string
}

func (p *providerRecorder) CreateIntent(_ context.Context, amountCents int64, currency string, metadata map[string]string) (payment.Intent, error) {
	p.amountCents = amountCents
	p.currency = currency
	p.metadata = metadata

	return p.intent, p.intentErr
}

func (p *providerRecorder) ConstructEvent([]byte, string) (payment.Event, error) {
	return p.event, p.eventErr
}

func (p *providerRecorder) Enabled() bool {
	return true
}

type producerRecorder struct {
	events chan any
}

func (p *producerRecorder) Publish(_ context.Context, _ string, value any) error {
	p.events <- value

	return nil
}

func (p *producerRecorder) Close() error {
	return nil
}

type fixture struct {
	svc      service.Payment
	bookings bookingRepository.Booking
	provider *providerRecorder
	producer *producerRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		bookings: bookingRepository.NewMemory(),
		provider: &providerRecorder{
			intent: payment.Intent{ID: "pi_123", ClientSecret: "pi_123_secret"},
		},
		producer: &producerRecorder{events: make(chan any, 4)},
	}

	cfg := &config.Config{}
	cfg.Stripe.Currency = "usd"

	f.svc = service.New(f.bookings, f.provider, f.producer, cfg, mocks.NewOtel())

	require.NoError(t, f.bookings.Insert(context.Background(), bookingModel.Booking{
		ID:            "booking-1",
		UserID:        "user-1",
		CruiseID:      "caribbean",
		TotalPrice:    1600.50,
		PaymentStatus: constant.PaymentStatusPending,
	}))

	return f
}

func userContext(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestPaymentService_CreateIntent(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.CreateIntent(userContext("user-1"), dto.CreatePaymentIntentRequest{BookingID: "booking-1"})
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret", res.ClientSecret)

	// Amounts are charged in the smallest currency unit.
	assert.Equal(t, int64(math.Round(1600.50*100)), f.provider.amountCents)
	assert.Equal(t, "usd", f.provider.currency)
	assert.Equal(t, map[string]string{
		"bookingId": "booking-1",
		"cruiseId":  "caribbean",
		"userId":    "user-1",
	}, f.provider.metadata)

	booking, err := f.bookings.GetByID(context.Background(), "booking-1")
	require.NoError(t, err)
	assert.Equal(t, "pi_123", booking.PaymentIntentID)
	assert.Equal(t, "pi_123_secret", booking.ClientSecret)
	assert.Equal(t, constant.PaymentStatusPending, booking.PaymentStatus)
}

func TestPaymentService_CreateIntent_UnknownBooking(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateIntent(userContext("user-1"), dto.CreatePaymentIntentRequest{BookingID: "missing"})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestPaymentService_CreateIntent_WrongOwner(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateIntent(userContext("user-2"), dto.CreatePaymentIntentRequest{BookingID: "booking-1"})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))

	booking, err := f.bookings.GetByID(context.Background(), "booking-1")
	require.NoError(t, err)
	assert.Empty(t, booking.PaymentIntentID)
}

func TestPaymentService_CreateIntent_ProviderFailure(t *testing.T) {
	f := newFixture(t)
	f.provider.intentErr = assert.AnError

	_, err := f.svc.CreateIntent(userContext("user-1"), dto.CreatePaymentIntentRequest{BookingID: "booking-1"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
}

func TestPaymentService_HandleWebhook(t *testing.T) {
	f := newFixture(t)
	f.provider.event = payment.Event{
		ID:       "evt_1",
		Type:     payment.EventTypePaymentSucceeded,
		ObjectID: "pi_123",
		Metadata: map[string]string{"bookingId": "booking-1"},
	}

	err := f.svc.HandleWebhook(context.Background(), []byte(`{}`), "sig")
	require.NoError(t, err)

	booking, err := f.bookings.GetByID(context.Background(), "booking-1")
	require.NoError(t, err)
	assert.Equal(t, constant.PaymentStatusCompleted, booking.PaymentStatus)

	select {
	case <-f.producer.events:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a payment event")
	}
}

func TestPaymentService_HandleWebhook_BadSignature(t *testing.T) {
	f := newFixture(t)
	f.provider.eventErr = assert.AnError

	err := f.svc.HandleWebhook(context.Background(), []byte(`{}`), "sig")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestPaymentService_HandleWebhook_IgnoredEvent(t *testing.T) {
	f := newFixture(t)
	f.provider.event = payment.Event{
		ID:       "evt_1",
		Type:     "payment_intent.created",
		Metadata: map[string]string{"bookingId": "booking-1"},
	}

	require.NoError(t, f.svc.HandleWebhook(context.Background(), []byte(`{}`), "sig"))

	booking, err := f.bookings.GetByID(context.Background(), "booking-1")
	require.NoError(t, err)
	assert.Equal(t, constant.PaymentStatusPending, booking.PaymentStatus)
}

func TestPaymentService_HandleWebhook_MissingBookingReference(t *testing.T) {
	f := newFixture(t)
	f.provider.event = payment.Event{
		ID:   "evt_1",
		Type: payment.EventTypePaymentSucceeded,
	}

	// Reconciliation problems after verification are acknowledged, never
	// bounced back for redelivery.
	require.NoError(t, f.svc.HandleWebhook(context.Background(), []byte(`{}`), "sig"))
}

func TestPaymentService_HandleWebhook_UnknownBooking(t *testing.T) {
	f := newFixture(t)
	f.provider.event = payment.Event{
		ID:       "evt_1",
		Type:     payment.EventTypePaymentSucceeded,
		Metadata: map[string]string{"bookingId": "ghost"},
	}

	require.NoError(t, f.svc.HandleWebhook(context.Background(), []byte(`{}`), "sig"))
}

func TestPaymentService_HandleWebhook_RedeliveryIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.provider.event = payment.Event{
		ID:       "evt_1",
		Type:     payment.EventTypePaymentSucceeded,
		Metadata: map[string]string{"bookingId": "booking-1"},
	}

	require.NoError(t, f.svc.HandleWebhook(context.Background(), []byte(`{}`), "sig"))
	<-f.producer.events

	require.NoError(t, f.svc.HandleWebhook(context.Background(), []byte(`{}`), "sig"))

	// The completed booking stays completed and no second event goes out.
	select {
	case <-f.producer.events:
		t.Fatal("unexpected event on redelivery")
	case <-time.After(100 * time.Millisecond):
	}

	booking, err := f.bookings.GetByID(context.Background(), "booking-1")
	require.NoError(t, err)
	assert.Equal(t, constant.PaymentStatusCompleted, booking.PaymentStatus)
}
