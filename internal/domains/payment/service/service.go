package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"math"

	"cruisevoyager/config"
	"cruisevoyager/infras/kafka"
	"cruisevoyager/infras/otel"
	"cruisevoyager/infras/payment"
	bookingModel "cruisevoyager/internal/domains/booking/model"
	"cruisevoyager/internal/domains/booking/model/dto"
	bookingRepo "cruisevoyager/internal/domains/booking/repository"
	"cruisevoyager/shared/constant"
	"cruisevoyager/shared/failure"
	"cruisevoyager/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	EventPaymentCompleted = "booking.payment_completed"

	metadataBookingID = "bookingId"
	metadataCruiseID  = "cruiseId"
	metadataUserID    = "userId"
)

type Payment interface {
	CreateIntent(ctx context.Context, req dto.CreatePaymentIntentRequest) (dto.PaymentIntentResponse, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type paymentEvent struct {
	Type      string `json:"type"`
	BookingID string `json:"bookingId"`
	EventID   string `json:"eventId"`
}

type serviceImpl struct {
	repo     bookingRepo.Booking
	provider payment.Provider
	producer kafka.Producer
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo bookingRepo.Booking, provider payment.Provider, producer kafka.Producer, cfg *config.Config, otel otel.Otel) Payment {
	return &serviceImpl{
		repo:     repo,
		provider: provider,
		producer: producer,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) CreateIntent(ctx context.Context, req dto.CreatePaymentIntentRequest) (res dto.PaymentIntentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.GetByID(ctx, req.BookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	if booking.UserID != userID {
		return res, failure.Forbidden("Not authorized to pay for this booking") // nolint:wrapcheck
	}

	amountCents := int64(math.Round(booking.TotalPrice * 100))

	metadata := map[string]string{
		metadataBookingID: booking.ID,
		metadataCruiseID:  booking.CruiseID,
		metadataUserID:    booking.UserID,
	}

	intent, err := s.provider.CreateIntent(ctx, amountCents, s.cfg.Stripe.Currency, metadata)
	if err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to create payment intent")

		return res, failure.Upstream("payment processor unavailable, please retry") // nolint:wrapcheck
	}

	fields := map[string]any{
		bookingModel.FieldPaymentIntentID: intent.ID,
		bookingModel.FieldClientSecret:    intent.ClientSecret,
		constant.FieldModifiedAt:          timezone.Now(),
		constant.FieldModifiedBy:          userID,
	}

	if err = s.repo.Update(ctx, fields, booking.ID); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to persist payment intent")

		return res, fmt.Errorf("failed to persist payment intent: %w", err)
	}

	res.ClientSecret = intent.ClientSecret

	return res, nil
}

// HandleWebhook reconciles an asynchronous processor callback. A signature
// verification failure is returned to the caller; reconciliation problems
// after verification are logged and swallowed so the processor is always
// acknowledged and does not redeliver in a storm.
func (s *serviceImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HandleWebhook")
	defer scope.End()
	defer scope.TraceIfError(err)

	event, err := s.provider.ConstructEvent(payload, signature)
	if err != nil {
		log.Error().Err(err).Msg("failed to verify webhook event")

		return failure.BadRequestFromString("invalid webhook payload") // nolint:wrapcheck
	}

	if event.Type != payment.EventTypePaymentSucceeded {
		log.Info().Str("type", event.Type).Msg("ignoring webhook event")

		return nil
	}

	bookingID := event.Metadata[metadataBookingID]
	if bookingID == constant.Empty {
		log.Error().Str("eventID", event.ID).Msg("webhook event has no booking reference")

		return nil
	}

	booking, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to get booking for webhook")

		return nil
	}

	if booking.ID == constant.Empty {
		log.Error().Str("bookingID", bookingID).Msg("webhook references unknown booking")

		return nil
	}

	// Redeliveries of the same succeeded event are no-ops.
	if booking.PaymentStatus == constant.PaymentStatusCompleted {
		log.Info().Str("bookingID", bookingID).Msg("booking already completed, skipping webhook")

		return nil
	}

	fields := map[string]any{
		bookingModel.FieldPaymentStatus: constant.PaymentStatusCompleted,
		constant.FieldModifiedAt:        timezone.Now(),
		constant.FieldModifiedBy:        booking.UserID,
	}

	if err := s.repo.Update(ctx, fields, bookingID); err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to complete booking from webhook")

		return nil
	}

	log.Info().Str("bookingID", bookingID).Msg("booking payment completed")

	go func() {
		c := context.WithoutCancel(ctx)

		completed := paymentEvent{
			Type:      EventPaymentCompleted,
			BookingID: bookingID,
			EventID:   event.ID,
		}

		if err := s.producer.Publish(c, bookingID, completed); err != nil {
			log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to publish payment event")
		}
	}()

	return nil
}
