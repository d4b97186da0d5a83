package dto_test

import (
	"testing"
	"time"

	"cruisevoyager/internal/domains/booking/model/dto"
	cruiseModel "cruisevoyager/internal/domains/cruise/model"
	"cruisevoyager/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	salePrice := 800.0

	cruise := cruiseModel.Cruise{
		ID:             "caribbean",
		DepartureDate:  time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		ReturnDate:     time.Date(2026, 11, 8, 0, 0, 0, 0, time.UTC),
		PricePerPerson: 899,
		SalePrice:      &salePrice,
	}

	req := dto.CreateBookingRequest{
		CruiseID:       "caribbean",
		NumberOfGuests: 2,
		CabinType:      "Balcony",
		ContactEmail:   "demo@example.com",
		Passengers: []dto.PassengerRequest{
			{FirstName: "Alice", LastName: "Doe", DateOfBirth: "1990-01-01", Nationality: "US"},
			{FirstName: "Bob", LastName: "Doe", DateOfBirth: "1988-05-05", Nationality: "US"},
		},
	}

	booking := req.ToModel("user-1", cruise)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "user-1", booking.UserID)
	assert.Equal(t, "caribbean", booking.CruiseID)
	assert.Equal(t, constant.PaymentStatusPending, booking.PaymentStatus)
	assert.Equal(t, cruise.DepartureDate, booking.DepartureDate)
	assert.Equal(t, cruise.ReturnDate, booking.ReturnDate)
	assert.Len(t, booking.Passengers, 2)

	// The sale price wins over the base price: 800 * 2 guests.
	assert.InDelta(t, 1600.0, booking.TotalPrice, 0.001)
}

func TestCreateBookingRequest_ToModel_NoSalePrice(t *testing.T) {
	cruise := cruiseModel.Cruise{
		ID:             "alaska",
		PricePerPerson: 1899,
	}

	req := dto.CreateBookingRequest{
		CruiseID:       "alaska",
		NumberOfGuests: 3,
		Passengers: []dto.PassengerRequest{
			{FirstName: "Alice"}, {FirstName: "Bob"}, {FirstName: "Carol"},
		},
	}

	booking := req.ToModel("user-1", cruise)

	assert.InDelta(t, 5697.0, booking.TotalPrice, 0.001)
}
