package dto

import (
	"net/http"
	"strconv"
	"strings"

	"cruisevoyager/internal/domains/cruise/model"
	"cruisevoyager/shared/constant"
	"cruisevoyager/shared/timezone"
)

const (
	DurationBandShort    = "1-5"
	DurationBandMedium   = "6-9"
	DurationBandLong     = "10-14"
	DurationBandExtended = "15+"
)

// SearchFilters carries the optional catalog search predicates. Scalar
// fields combine with AND; values inside a list field combine with OR.
type SearchFilters struct {
	Destination   string   `json:"destination"`
	DeparturePort string   `json:"departure_port"`
	DepartureDate string   `json:"departure_date"`
	Duration      string   `json:"duration"`
	MinPrice      *float64 `json:"min_price"`
	MaxPrice      *float64 `json:"max_price"`
	CruiseLines   []string `json:"cruise_lines"`
	Amenities     []string `json:"amenities"`
	CabinTypes    []string `json:"cabin_types"`
	MinRating     *float64 `json:"min_rating"`
}

// FromRequest populates SearchFilters from listing query parameters.
// List-valued parameters accept both repeated keys and comma-separated
// values.
func (f *SearchFilters) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.Destination = query.Get("destination")
	f.DeparturePort = query.Get("departurePort")
	f.DepartureDate = query.Get("departureDate")
	f.Duration = query.Get("duration")
	f.CruiseLines = splitValues(query["cruiseLine"])
	f.Amenities = splitValues(query["amenities"])
	f.CabinTypes = splitValues(query["cabinTypes"])

	if minPrice := query.Get("minPrice"); minPrice != "" {
		if value, err := strconv.ParseFloat(minPrice, 64); err == nil {
			f.MinPrice = &value
		}
	}

	if maxPrice := query.Get("maxPrice"); maxPrice != "" {
		if value, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			f.MaxPrice = &value
		}
	}

	if rating := query.Get("rating"); rating != "" {
		if value, err := strconv.ParseFloat(rating, 64); err == nil {
			f.MinRating = &value
		}
	}
}

// IsZero reports whether no predicate is set.
func (f *SearchFilters) IsZero() bool {
	return f.Destination == "" && f.DeparturePort == "" && f.DepartureDate == "" &&
		f.Duration == "" && f.MinPrice == nil && f.MaxPrice == nil &&
		len(f.CruiseLines) == 0 && len(f.Amenities) == 0 && len(f.CabinTypes) == 0 &&
		f.MinRating == nil
}

// DurationRange maps the duration band onto a closed numeric range. The
// upper bound is 0 for the open-ended band. ok is false for an unknown band.
func (f *SearchFilters) DurationRange() (minNights, maxNights int, ok bool) {
	switch f.Duration {
	case DurationBandShort:
		return 1, 5, true
	case DurationBandMedium:
		return 6, 9, true
	case DurationBandLong:
		return 10, 14, true
	case DurationBandExtended:
		return 15, 0, true
	default:
		return 0, 0, false
	}
}

func splitValues(values []string) []string {
	var out []string

	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}

	return out
}

type CruiseResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Destination    string   `json:"destination"`
	ImageURL       string   `json:"imageUrl"`
	CruiseLine     string   `json:"cruiseLine"`
	ShipName       string   `json:"shipName"`
	DeparturePort  string   `json:"departurePort"`
	DepartureDate  string   `json:"departureDate"`
	ReturnDate     string   `json:"returnDate"`
	Duration       int      `json:"duration"`
	PricePerPerson float64  `json:"pricePerPerson"`
	SalePrice      *float64 `json:"salePrice,omitempty"`
	IsBestSeller   bool     `json:"isBestSeller"`
	IsSpecialOffer bool     `json:"isSpecialOffer"`
	Amenities      []string `json:"amenities"`
	CabinTypes     []string `json:"cabinTypes"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"reviewCount"`
}

func (r *CruiseResponse) FromModel(model model.Cruise, rating float64, reviewCount int) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Destination = model.Destination
	r.ImageURL = model.ImageURL
	r.CruiseLine = model.CruiseLine
	r.ShipName = model.ShipName
	r.DeparturePort = model.DeparturePort
	r.DepartureDate = timezone.Format(model.DepartureDate, constant.DateOnlyFormat)
	r.ReturnDate = timezone.Format(model.ReturnDate, constant.DateOnlyFormat)
	r.Duration = model.Duration
	r.PricePerPerson = model.PricePerPerson
	r.SalePrice = model.SalePrice
	r.IsBestSeller = model.IsBestSeller
	r.IsSpecialOffer = model.IsSpecialOffer
	r.Amenities = model.Amenities
	r.CabinTypes = model.CabinTypes
	r.Rating = rating
	r.ReviewCount = reviewCount
}

type GetCruisesResponse struct {
	Cruises   []CruiseResponse `json:"cruises"`
	TotalData int              `json:"total_data"`
}
