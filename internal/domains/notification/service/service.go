package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"cruisevoyager/config"
	"cruisevoyager/infras/mailer"
	"cruisevoyager/infras/otel"
	bookingModel "cruisevoyager/internal/domains/booking/model"
	cruiseModel "cruisevoyager/internal/domains/cruise/model"
	userModel "cruisevoyager/internal/domains/user/model"
	"cruisevoyager/shared/constant"
)

// Notification sends transactional email. Callers treat delivery as
// best-effort: a failed send is logged upstream, never surfaced to guests.
type Notification interface {
	SendBookingConfirmation(ctx context.Context, booking bookingModel.Booking, cruise cruiseModel.Cruise) error
	SendVerificationEmail(ctx context.Context, user userModel.User, token string) error
	SendPasswordResetEmail(ctx context.Context, user userModel.User, token string) error
}

type serviceImpl struct {
	mailer mailer.Mailer
	cfg    *config.Config
	otel   otel.Otel
}

func New(mail mailer.Mailer, cfg *config.Config, otl otel.Otel) Notification {
	return &serviceImpl{
		mailer: mail,
		cfg:    cfg,
		otel:   otl,
	}
}

func (s *serviceImpl) SendBookingConfirmation(ctx context.Context, booking bookingModel.Booking, cruise cruiseModel.Cruise) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendBookingConfirmation")
	defer scope.End()
	defer scope.TraceIfError(err)

	subject := fmt.Sprintf("Booking Confirmation - %s", cruise.Title)
	body, err := renderBookingConfirmation(booking, cruise)
	if err != nil {
		return fmt.Errorf("failed to render confirmation email: %w", err)
	}

	return s.mailer.Send(ctx, booking.ContactEmail, subject, body) //nolint:wrapcheck
}

func (s *serviceImpl) SendVerificationEmail(ctx context.Context, user userModel.User, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendVerificationEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	link := fmt.Sprintf("%s/verify-email?token=%s", s.cfg.App.BaseURL, token)

	body, err := renderVerificationEmail(user, link)
	if err != nil {
		return fmt.Errorf("failed to render verification email: %w", err)
	}

	return s.mailer.Send(ctx, user.Email, "Verify your email address", body) //nolint:wrapcheck
}

func (s *serviceImpl) SendPasswordResetEmail(ctx context.Context, user userModel.User, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendPasswordResetEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	link := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.App.BaseURL, token)

	body, err := renderPasswordResetEmail(user, link)
	if err != nil {
		return fmt.Errorf("failed to render reset email: %w", err)
	}

	return s.mailer.Send(ctx, user.Email, "Reset your password", body) //nolint:wrapcheck
}
