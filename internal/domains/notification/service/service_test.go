package service_test

import (
	"context"
	"testing"
	"time"

	"cruisevoyager/config"
	mailerMocks "cruisevoyager/infras/mailer/mocks"
	"cruisevoyager/infras/otel/mocks"
	bookingModel "cruisevoyager/internal/domains/booking/model"
	cruiseModel "cruisevoyager/internal/domains/cruise/model"
	"cruisevoyager/internal/domains/notification/service"
	userModel "cruisevoyager/internal/domains/user/model"
	"cruisevoyager/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationService_SendBookingConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMailer := mailerMocks.NewMockMailer(ctrl)
	svc := service.New(mockMailer, &config.Config{}, mocks.NewOtel())

	booking := bookingModel.Booking{
		ID:             "booking-1",
		DepartureDate:  time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:     time.Date(2026, 11, 8, 0, 0, 0, 0, time.UTC),
		NumberOfGuests: 2,
		CabinType:      "Balcony",
		TotalPrice:     1600,
		PaymentStatus:  constant.PaymentStatusPending,
		ContactEmail:   "demo@example.com",
	}

	cruise := cruiseModel.Cruise{
		Title:         "Caribbean Paradise",
		ShipName:      "Ocean Star",
		Destination:   "Caribbean",
		DeparturePort: "Miami",
	}

	var sentBody string

	mockMailer.EXPECT().
		Send(gomock.Any(), "demo@example.com", "Booking Confirmation - Caribbean Paradise", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, htmlBody string) error {
			sentBody = htmlBody
			return nil
		})

	require.NoError(t, svc.SendBookingConfirmation(context.Background(), booking, cruise))

	assert.Contains(t, sentBody, "booking-1")
	assert.Contains(t, sentBody, "Ocean Star")
	assert.Contains(t, sentBody, "$1600.00")
	assert.Contains(t, sentBody, "2026-11-01")
}

func TestNotificationService_SendVerificationEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMailer := mailerMocks.NewMockMailer(ctrl)

	cfg := &config.Config{}
	cfg.App.BaseURL = "https://cruisevoyager.example"

	svc := service.New(mockMailer, cfg, mocks.NewOtel())

	user := userModel.User{
		Username:  "demo",
		Email:     "demo@example.com",
		FirstName: "Demo",
	}

	var sentBody string

	mockMailer.EXPECT().
		Send(gomock.Any(), "demo@example.com", "Verify your email address", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, htmlBody string) error {
			sentBody = htmlBody
			return nil
		})

	require.NoError(t, svc.SendVerificationEmail(context.Background(), user, "token-123"))

	assert.Contains(t, sentBody, "Demo")
	assert.Contains(t, sentBody, "https://cruisevoyager.example/verify-email?token=token-123")
}

func TestNotificationService_SendPasswordResetEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMailer := mailerMocks.NewMockMailer(ctrl)

	cfg := &config.Config{}
	cfg.App.BaseURL = "https://cruisevoyager.example"

	svc := service.New(mockMailer, cfg, mocks.NewOtel())

	// Falls back to the username when no first name is set.
	user := userModel.User{
		Username: "demo",
		Email:    "demo@example.com",
	}

	var sentBody string

	mockMailer.EXPECT().
		Send(gomock.Any(), "demo@example.com", "Reset your password", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, htmlBody string) error {
			sentBody = htmlBody
			return nil
		})

	require.NoError(t, svc.SendPasswordResetEmail(context.Background(), user, "token-456"))

	assert.Contains(t, sentBody, "demo")
	assert.Contains(t, sentBody, "https://cruisevoyager.example/reset-password?token=token-456")
}
