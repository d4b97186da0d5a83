package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"cruisevoyager/config"
	"cruisevoyager/infras/kafka"
	"cruisevoyager/infras/otel"
	"cruisevoyager/internal/domains/booking/model/dto"
	"cruisevoyager/internal/domains/booking/repository"
	cruiseDto "cruisevoyager/internal/domains/cruise/model/dto"
	cruiseRepo "cruisevoyager/internal/domains/cruise/repository"
	notification "cruisevoyager/internal/domains/notification/service"
	reviewRepo "cruisevoyager/internal/domains/review/repository"
	"cruisevoyager/shared/constant"
	"cruisevoyager/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	EventBookingCreated = "booking.created"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	ListMine(ctx context.Context) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
}

type bookingEvent struct {
	Type       string  `json:"type"`
	BookingID  string  `json:"bookingId"`
	CruiseID   string  `json:"cruiseId"`
	UserID     string  `json:"userId"`
	TotalPrice float64 `json:"totalPrice"`
}

type serviceImpl struct {
	repo         repository.Booking
	cruiseRepo   cruiseRepo.Cruise
	reviewRepo   reviewRepo.Review
	notification notification.Notification
	producer     kafka.Producer
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	cruiseRepo cruiseRepo.Cruise,
	reviewRepo reviewRepo.Review,
	notif notification.Notification,
	producer kafka.Producer,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		cruiseRepo:   cruiseRepo,
		reviewRepo:   reviewRepo,
		notification: notif,
		producer:     producer,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if len(req.Passengers) != req.NumberOfGuests {
		return res, failure.BadRequestFromString("passenger details must be provided for every guest") // nolint:wrapcheck
	}

	cruise, err := s.cruiseRepo.GetByID(ctx, req.CruiseID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cruise")

		return res, fmt.Errorf("failed to get cruise: %w", err)
	}

	if cruise.ID == constant.Empty {
		return res, failure.NotFound("Cruise not found") // nolint:wrapcheck
	}

	booking := req.ToModel(userID, cruise)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	// Confirmation email and event publishing are best-effort and never
	// block or fail the booking response.
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.notification.SendBookingConfirmation(c, booking, cruise); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to send booking confirmation")
		}

		event := bookingEvent{
			Type:       EventBookingCreated,
			BookingID:  booking.ID,
			CruiseID:   booking.CruiseID,
			UserID:     booking.UserID,
			TotalPrice: booking.TotalPrice,
		}

		if err := s.producer.Publish(c, booking.ID, event); err != nil {
			log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to publish booking event")
		}
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) ListMine(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	bookings, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	ratings, err := s.reviewRepo.Aggregates(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to aggregate reviews")

		return res, fmt.Errorf("failed to aggregate reviews: %w", err)
	}

	res.Bookings = make([]dto.BookingResponse, len(bookings))

	for i, booking := range bookings {
		res.Bookings[i].FromModel(booking)

		cruise, err := s.cruiseRepo.GetByID(ctx, booking.CruiseID)
		if err != nil {
			log.Error().Err(err).Msg("failed to get cruise for booking")

			return res, fmt.Errorf("failed to get cruise for booking: %w", err)
		}

		if cruise.ID != constant.Empty {
			rating := ratings[cruise.ID]

			var cruiseRes cruiseDto.CruiseResponse
			cruiseRes.FromModel(cruise, rating.Average, rating.Count)
			res.Bookings[i].Cruise = &cruiseRes
		}
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("Booking not found") // nolint:wrapcheck
	}

	if booking.UserID != userID {
		return res, failure.Forbidden("Not authorized to view this booking") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}
