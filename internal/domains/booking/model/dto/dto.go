package dto

import (
	"cruisevoyager/internal/domains/booking/model"
	cruiseModel "cruisevoyager/internal/domains/cruise/model"
	cruiseDto "cruisevoyager/internal/domains/cruise/model/dto"
	"cruisevoyager/shared/constant"
	gModel "cruisevoyager/shared/model"
	"cruisevoyager/shared/timezone"

	"github.com/google/uuid"
)

type PassengerRequest struct {
	FirstName      string `json:"firstName"      validate:"required,max=100"`
	LastName       string `json:"lastName"       validate:"required,max=100"`
	DateOfBirth    string `json:"dateOfBirth"    validate:"required"`
	Nationality    string `json:"nationality"    validate:"required,max=100"`
	PassportNumber string `json:"passportNumber" validate:"omitempty,max=50"`
}

type CreateBookingRequest struct {
	CruiseID        string             `json:"cruiseId"        validate:"required"`
	NumberOfGuests  int                `json:"numberOfGuests"  validate:"required,min=1,max=10"`
	CabinType       string             `json:"cabinType"       validate:"required"`
	ContactEmail    string             `json:"contactEmail"    validate:"required,email"`
	ContactPhone    string             `json:"contactPhone"    validate:"omitempty,max=30"`
	SpecialRequests string             `json:"specialRequests" validate:"omitempty,max=500"`
	Passengers      []PassengerRequest `json:"passengers"      validate:"required,min=1,dive"`
}

// ToModel builds the booking record, snapshotting the cruise dates and the
// effective per-person price at the moment of booking.
func (c *CreateBookingRequest) ToModel(userID string, cruise cruiseModel.Cruise) model.Booking {
	passengers := make(model.Passengers, len(c.Passengers))
	for i, passenger := range c.Passengers {
		passengers[i] = model.Passenger{
			FirstName:      passenger.FirstName,
			LastName:       passenger.LastName,
			DateOfBirth:    passenger.DateOfBirth,
			Nationality:    passenger.Nationality,
			PassportNumber: passenger.PassportNumber,
		}
	}

	now := timezone.Now()

	return model.Booking{
		ID:              uuid.NewString(),
		UserID:          userID,
		CruiseID:        cruise.ID,
		BookingDate:     now,
		DepartureDate:   cruise.DepartureDate,
		ReturnDate:      cruise.ReturnDate,
		NumberOfGuests:  c.NumberOfGuests,
		CabinType:       c.CabinType,
		TotalPrice:      cruise.EffectivePrice() * float64(c.NumberOfGuests),
		PaymentStatus:   constant.PaymentStatusPending,
		SpecialRequests: c.SpecialRequests,
		ContactEmail:    c.ContactEmail,
		ContactPhone:    c.ContactPhone,
		Passengers:      passengers,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type PassengerResponse struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DateOfBirth    string `json:"dateOfBirth"`
	Nationality    string `json:"nationality"`
	PassportNumber string `json:"passportNumber,omitempty"`
}

type BookingResponse struct {
	ID              string                    `json:"id"`
	UserID          string                    `json:"userId"`
	CruiseID        string                    `json:"cruiseId"`
	BookingDate     string                    `json:"bookingDate"`
	DepartureDate   string                    `json:"departureDate"`
	ReturnDate      string                    `json:"returnDate"`
	NumberOfGuests  int                       `json:"numberOfGuests"`
	CabinType       string                    `json:"cabinType"`
	TotalPrice      float64                   `json:"totalPrice"`
	PaymentStatus   string                    `json:"paymentStatus"`
	SpecialRequests string                    `json:"specialRequests,omitempty"`
	ContactEmail    string                    `json:"contactEmail"`
	ContactPhone    string                    `json:"contactPhone,omitempty"`
	Passengers      []PassengerResponse       `json:"passengers"`
	Cruise          *cruiseDto.CruiseResponse `json:"cruise,omitempty"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.CruiseID = model.CruiseID
	r.BookingDate = timezone.Format(model.BookingDate, constant.DateFormat)
	r.DepartureDate = timezone.Format(model.DepartureDate, constant.DateOnlyFormat)
	r.ReturnDate = timezone.Format(model.ReturnDate, constant.DateOnlyFormat)
	r.NumberOfGuests = model.NumberOfGuests
	r.CabinType = model.CabinType
	r.TotalPrice = model.TotalPrice
	r.PaymentStatus = model.PaymentStatus
	r.SpecialRequests = model.SpecialRequests
	r.ContactEmail = model.ContactEmail
	r.ContactPhone = model.ContactPhone

	r.Passengers = make([]PassengerResponse, len(model.Passengers))
	for i, passenger := range model.Passengers {
		r.Passengers[i] = PassengerResponse(passenger)
	}
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

type CreatePaymentIntentRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
