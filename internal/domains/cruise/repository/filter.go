package repository

import (
	"cruisevoyager/internal/domains/cruise/model"
	"cruisevoyager/internal/domains/cruise/model/dto"
	gDto "cruisevoyager/shared/dto"
)

// effectivePriceColumn is the per-person price a guest actually pays, with
// the sale price taking precedence over the base price.
const effectivePriceColumn = "COALESCE(cruises.sale_price, cruises.price_per_person)"

// DefaultSort orders listings by promoted flags first, then soonest
// departure.
const DefaultSort = model.FieldIsBestSeller + " DESC, " + model.FieldIsSpecialOffer + " DESC, " + model.FieldDepartureDate

// BuildFilterGroup translates catalog search predicates into a typed where
// clause. Scalar fields AND together; list fields match any value (OR).
// MinRating is not part of the result: it applies to the derived review
// aggregate and is evaluated by the service after the query.
func BuildFilterGroup(filters dto.SearchFilters) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if filters.Destination != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldDestination,
			Value:    filters.Destination,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	if filters.DeparturePort != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldDeparturePort,
			Value:    filters.DeparturePort,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	if filters.DepartureDate != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldDepartureDate,
			Value:    filters.DepartureDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if minNights, maxNights, ok := filters.DurationRange(); ok {
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  "duration_min",
			Field:    model.FieldDuration,
			Value:    minNights,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})

		if maxNights > 0 {
			group.Filters = append(group.Filters, gDto.Filter{
				ArgName:  "duration_max",
				Field:    model.FieldDuration,
				Value:    maxNights,
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			})
		}
	}

	if filters.MinPrice != nil {
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  "min_price",
			Field:    effectivePriceColumn,
			Value:    *filters.MinPrice,
			Operator: gDto.FilterOperatorGreaterEq,
		})
	}

	if filters.MaxPrice != nil {
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  "max_price",
			Field:    effectivePriceColumn,
			Value:    *filters.MaxPrice,
			Operator: gDto.FilterOperatorLessEq,
		})
	}

	if len(filters.CruiseLines) > 0 {
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  "cruise_line",
			Field:    model.FieldCruiseLine,
			Value:    filters.CruiseLines,
			Operator: gDto.FilterOperatorIn,
			Table:    model.TableName,
		})
	}

	if len(filters.Amenities) > 0 {
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  "amenity",
			Field:    model.FieldAmenities,
			Value:    filters.Amenities,
			Operator: gDto.FilterOperatorContainsAny,
			Table:    model.TableName,
		})
	}

	if len(filters.CabinTypes) > 0 {
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  "cabin_type",
			Field:    model.FieldCabinTypes,
			Value:    filters.CabinTypes,
			Operator: gDto.FilterOperatorContainsAny,
			Table:    model.TableName,
		})
	}

	return group
}
