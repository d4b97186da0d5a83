package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"cruisevoyager/config"
	"cruisevoyager/infras/otel/mocks"
	bookingModel "cruisevoyager/internal/domains/booking/model"
	"cruisevoyager/internal/domains/booking/model/dto"
	bookingRepository "cruisevoyager/internal/domains/booking/repository"
	"cruisevoyager/internal/domains/booking/service"
	cruiseModel "cruisevoyager/internal/domains/cruise/model"
	cruiseRepository "cruisevoyager/internal/domains/cruise/repository"
	reviewModel "cruisevoyager/internal/domains/review/model"
	reviewRepository "cruisevoyager/internal/domains/review/repository"
	userModel "cruisevoyager/internal/domains/user/model"
	"cruisevoyager/shared/constant"
	"cruisevoyager/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notificationRecorder struct {
	err           error
	confirmations chan string
}

func (n *notificationRecorder) SendBookingConfirmation(_ context.Context, booking bookingModel.Booking, _ cruiseModel.Cruise) error {
	n.confirmations <- booking.ID

	return n.err
}

func (n *notificationRecorder) SendVerificationEmail(context.Context, userModel.User, string) error {
	return n.err
}

func (n *notificationRecorder) SendPasswordResetEmail(context.Context, userModel.User, string) error {
	return n.err
}

type producerRecorder struct {
	err    error
	events chan any
}

func (p *producerRecorder) Publish(_ context.Context, _ string, value any) error {
	p.events <- value

	return p.err
}

func (p *producerRecorder) Close() error {
	return nil
}

type fixture struct {
	svc      service.Booking
	bookings bookingRepository.Booking
	cruises  cruiseRepository.Cruise
	reviews  reviewRepository.Review
	notif    *notificationRecorder
	producer *producerRecorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		bookings: bookingRepository.NewMemory(),
		cruises:  cruiseRepository.NewMemory(),
		reviews:  reviewRepository.NewMemory(),
		notif:    &notificationRecorder{confirmations: make(chan string, 4)},
		producer: &producerRecorder{events: make(chan any, 4)},
	}

	f.svc = service.New(f.bookings, f.cruises, f.reviews, f.notif, f.producer, &config.Config{}, mocks.NewOtel())

	salePrice := 800.0
	require.NoError(t, f.cruises.Insert(context.Background(), cruiseModel.Cruise{
		ID:             "caribbean",
		Title:          "Caribbean Paradise",
		DepartureDate:  time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:     time.Date(2026, 11, 8, 0, 0, 0, 0, time.UTC),
		PricePerPerson: 899,
		SalePrice:      &salePrice,
	}))

	return f
}

func userContext(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		CruiseID:       "caribbean",
		NumberOfGuests: 2,
		CabinType:      "Balcony",
		ContactEmail:   "demo@example.com",
		Passengers: []dto.PassengerRequest{
			{FirstName: "Alice", LastName: "Doe", DateOfBirth: "1990-01-01", Nationality: "US"},
			{FirstName: "Bob", LastName: "Doe", DateOfBirth: "1988-05-05", Nationality: "US"},
		},
	}
}

func TestBookingService_Create(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.Create(userContext("user-1"), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "user-1", res.UserID)
	assert.Equal(t, constant.PaymentStatusPending, res.PaymentStatus)
	assert.InDelta(t, 1600.0, res.TotalPrice, 0.001)

	// Confirmation email and booking event go out asynchronously.
	select {
	case id := <-f.notif.confirmations:
		assert.Equal(t, res.ID, id)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a booking confirmation")
	}

	select {
	case <-f.producer.events:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a booking event")
	}
}

func TestBookingService_Create_PassengerCountMismatch(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Passengers = req.Passengers[:1]

	_, err := f.svc.Create(userContext("user-1"), req)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestBookingService_Create_UnknownCruise(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.CruiseID = "ghost-ship"

	_, err := f.svc.Create(userContext("user-1"), req)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_Create_SideEffectFailuresDoNotBlock(t *testing.T) {
	f := newFixture(t)
	f.notif.err = assert.AnError
	f.producer.err = assert.AnError

	res, err := f.svc.Create(userContext("user-1"), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
}

func TestBookingService_Get(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Create(userContext("user-1"), validRequest())
	require.NoError(t, err)

	res, err := f.svc.Get(userContext("user-1"), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, res.ID)

	_, err = f.svc.Get(userContext("user-1"), "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	_, err = f.svc.Get(userContext("user-2"), created.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}

func TestBookingService_ListMine(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.Create(userContext("user-1"), validRequest())
	require.NoError(t, err)

	_, err = f.svc.Create(userContext("user-2"), validRequest())
	require.NoError(t, err)

	require.NoError(t, f.reviews.Insert(context.Background(), reviewModel.Review{
		ID: "r1", CruiseID: "caribbean", Rating: 4,
	}))

	res, err := f.svc.ListMine(userContext("user-1"))
	require.NoError(t, err)
	require.Len(t, res.Bookings, 1)
	assert.Equal(t, created.ID, res.Bookings[0].ID)

	// Each booking embeds its cruise with the derived rating.
	require.NotNil(t, res.Bookings[0].Cruise)
	assert.Equal(t, "Caribbean Paradise", res.Bookings[0].Cruise.Title)
	assert.InDelta(t, 4.0, res.Bookings[0].Cruise.Rating, 0.001)
	assert.Equal(t, 1, res.Bookings[0].Cruise.ReviewCount)
}
