package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cruisevoyager/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldCruiseID        = "cruise_id"
	FieldBookingDate     = "booking_date"
	FieldDepartureDate   = "departure_date"
	FieldReturnDate      = "return_date"
	FieldNumberOfGuests  = "number_of_guests"
	FieldCabinType       = "cabin_type"
	FieldTotalPrice      = "total_price"
	FieldPaymentStatus   = "payment_status"
	FieldPaymentIntentID = "payment_intent_id"
	FieldClientSecret    = "client_secret"
	FieldSpecialRequests = "special_requests"
	FieldContactEmail    = "contact_email"
	FieldContactPhone    = "contact_phone"
	FieldPassengers      = "passengers"
)

type Passenger struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DateOfBirth    string `json:"dateOfBirth"`
	Nationality    string `json:"nationality"`
	PassportNumber string `json:"passportNumber,omitempty"`
}

// Passengers is stored as a JSON column.
type Passengers []Passenger

func (p Passengers) Value() (driver.Value, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal passengers: %w", err)
	}

	return data, nil
}

func (p *Passengers) Scan(src any) error {
	switch value := src.(type) {
	case nil:
		*p = nil

		return nil
	case []byte:
		return json.Unmarshal(value, p) //nolint:wrapcheck
	case string:
		return json.Unmarshal([]byte(value), p) //nolint:wrapcheck
	default:
		return errors.New("unsupported passengers column type")
	}
}

type Booking struct {
	ID              string     `db:"id"`
	UserID          string     `db:"user_id"`
	CruiseID        string     `db:"cruise_id"`
	BookingDate     time.Time  `db:"booking_date"`
	DepartureDate   time.Time  `db:"departure_date"`
	ReturnDate      time.Time  `db:"return_date"`
	NumberOfGuests  int        `db:"number_of_guests"`
	CabinType       string     `db:"cabin_type"`
	TotalPrice      float64    `db:"total_price"`
	PaymentStatus   string     `db:"payment_status"`
	PaymentIntentID string     `db:"payment_intent_id"`
	ClientSecret    string     `db:"client_secret"`
	SpecialRequests string     `db:"special_requests"`
	ContactEmail    string     `db:"contact_email"`
	ContactPhone    string     `db:"contact_phone"`
	Passengers      Passengers `db:"passengers"`
	model.Metadata
}
