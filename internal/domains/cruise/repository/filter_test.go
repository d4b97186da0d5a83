package repository_test

import (
	"testing"

	"cruisevoyager/internal/domains/cruise/model/dto"
	"cruisevoyager/internal/domains/cruise/repository"

	"github.com/stretchr/testify/assert"
)

func TestBuildFilterGroup_Empty(t *testing.T) {
	group := repository.BuildFilterGroup(dto.SearchFilters{})

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildFilterGroup_ScalarFilters(t *testing.T) {
	minPrice := 500.0
	maxPrice := 1500.0

	filters := dto.SearchFilters{
		Destination:   "Caribbean",
		DeparturePort: "Miami",
		DepartureDate: "2026-10-01",
		MinPrice:      &minPrice,
		MaxPrice:      &maxPrice,
	}

	group := repository.BuildFilterGroup(filters)
	where, args := group.GetWhereClause()

	assert.Contains(t, where, "LOWER(cruises.destination) LIKE LOWER(:destination)")
	assert.Contains(t, where, "LOWER(cruises.departure_port) LIKE LOWER(:departure_port)")
	assert.Contains(t, where, "cruises.departure_date >= :departure_date")
	assert.Contains(t, where, "COALESCE(cruises.sale_price, cruises.price_per_person) >= :min_price")
	assert.Contains(t, where, "COALESCE(cruises.sale_price, cruises.price_per_person) <= :max_price")
	assert.Contains(t, where, " AND ")

	assert.Equal(t, "%Caribbean%", args["destination"])
	assert.Equal(t, "2026-10-01", args["departure_date"])
	assert.Equal(t, minPrice, args["min_price"])
	assert.Equal(t, maxPrice, args["max_price"])
}

func TestBuildFilterGroup_DurationBands(t *testing.T) {
	tests := []struct {
		band    string
		wantMin any
		wantMax any
	}{
		{band: dto.DurationBandShort, wantMin: 1, wantMax: 5},
		{band: dto.DurationBandMedium, wantMin: 6, wantMax: 9},
		{band: dto.DurationBandLong, wantMin: 10, wantMax: 14},
		{band: dto.DurationBandExtended, wantMin: 15, wantMax: nil},
	}

	for _, tt := range tests {
		t.Run(tt.band, func(t *testing.T) {
			group := repository.BuildFilterGroup(dto.SearchFilters{Duration: tt.band})
			where, args := group.GetWhereClause()

			assert.Contains(t, where, "cruises.duration >= :duration_min")
			assert.Equal(t, tt.wantMin, args["duration_min"])

			if tt.wantMax == nil {
				assert.NotContains(t, where, ":duration_max")
			} else {
				assert.Contains(t, where, "cruises.duration <= :duration_max")
				assert.Equal(t, tt.wantMax, args["duration_max"])
			}
		})
	}
}

func TestBuildFilterGroup_UnknownDurationBandIgnored(t *testing.T) {
	group := repository.BuildFilterGroup(dto.SearchFilters{Duration: "7-11"})
	where, _ := group.GetWhereClause()

	assert.Empty(t, where)
}

func TestBuildFilterGroup_ListFilters(t *testing.T) {
	filters := dto.SearchFilters{
		CruiseLines: []string{"Royal Voyages", "Azure Line"},
		Amenities:   []string{"Pool", "Spa"},
		CabinTypes:  []string{"Balcony"},
	}

	group := repository.BuildFilterGroup(filters)
	where, args := group.GetWhereClause()

	assert.Contains(t, where, "cruises.cruise_line IN (:cruise_line_0, :cruise_line_1)")
	assert.Contains(t, where, "(cruises.amenities @> ARRAY[:amenity_0]::text[] OR cruises.amenities @> ARRAY[:amenity_1]::text[])")
	assert.Contains(t, where, "(cruises.cabin_types @> ARRAY[:cabin_type_0]::text[])")

	assert.Equal(t, "Royal Voyages", args["cruise_line_0"])
	assert.Equal(t, "Azure Line", args["cruise_line_1"])
	assert.Equal(t, "Pool", args["amenity_0"])
	assert.Equal(t, "Spa", args["amenity_1"])
	assert.Equal(t, "Balcony", args["cabin_type_0"])
}

func TestBuildFilterGroup_MinRatingExcluded(t *testing.T) {
	minRating := 4.0

	group := repository.BuildFilterGroup(dto.SearchFilters{MinRating: &minRating})
	where, _ := group.GetWhereClause()

	assert.Empty(t, where)
}
