package model

import (
	"time"

	"cruisevoyager/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "cruises"
	EntityName = "cruise"

	FieldID             = "id"
	FieldTitle          = "title"
	FieldDescription    = "description"
	FieldDestination    = "destination"
	FieldImageURL       = "image_url"
	FieldCruiseLine     = "cruise_line"
	FieldShipName       = "ship_name"
	FieldDeparturePort  = "departure_port"
	FieldDepartureDate  = "departure_date"
	FieldReturnDate     = "return_date"
	FieldDuration       = "duration"
	FieldPricePerPerson = "price_per_person"
	FieldSalePrice      = "sale_price"
	FieldIsBestSeller   = "is_best_seller"
	FieldIsSpecialOffer = "is_special_offer"
	FieldAmenities      = "amenities"
	FieldCabinTypes     = "cabin_types"
)

type Cruise struct {
	ID             string         `db:"id"`
	Title          string         `db:"title"`
	Description    string         `db:"description"`
	Destination    string         `db:"destination"`
	ImageURL       string         `db:"image_url"`
	CruiseLine     string         `db:"cruise_line"`
	ShipName       string         `db:"ship_name"`
	DeparturePort  string         `db:"departure_port"`
	DepartureDate  time.Time      `db:"departure_date"`
	ReturnDate     time.Time      `db:"return_date"`
	Duration       int            `db:"duration"`
	PricePerPerson float64        `db:"price_per_person"`
	SalePrice      *float64       `db:"sale_price"`
	IsBestSeller   bool           `db:"is_best_seller"`
	IsSpecialOffer bool           `db:"is_special_offer"`
	Amenities      pq.StringArray `db:"amenities"`
	CabinTypes     pq.StringArray `db:"cabin_types"`
	model.Metadata
}

// EffectivePrice is the per-person price a guest actually pays.
func (c *Cruise) EffectivePrice() float64 {
	if c.SalePrice != nil {
		return *c.SalePrice
	}

	return c.PricePerPerson
}
