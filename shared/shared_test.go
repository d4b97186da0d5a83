package shared_test

import (
	"testing"

	"cruisevoyager/shared"
	"cruisevoyager/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "exact pages", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "empty result", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 10, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "cruises", shared.BuildCacheKey("cruises"))
	assert.Equal(t, "cruises:detail:abc", shared.BuildCacheKey("cruises", "detail", "abc"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	type params struct {
		Destination string
		Page        int
	}

	keyA := shared.BuildCacheKeyWithQuery("cruises:list", params{Destination: "Caribbean", Page: 1})
	keyB := shared.BuildCacheKeyWithQuery("cruises:list", params{Destination: "Alaska", Page: 1})
	keyARepeat := shared.BuildCacheKeyWithQuery("cruises:list", params{Destination: "Caribbean", Page: 1})

	assert.NotEqual(t, keyA, keyB)
	assert.Equal(t, keyA, keyARepeat)
	assert.Contains(t, keyA, "cruises:list:")
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("abc", "id", "cruises")
	where, args := group.GetWhereClause()

	assert.Equal(t, "(cruises.id = :id)", where)
	assert.Equal(t, "abc", args["id"])
}

func TestFilterGroupContainsAny(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "amenities",
				ArgName:  "amenity",
				Value:    []string{"Pool", "Spa"},
				Operator: dto.FilterOperatorContainsAny,
				Table:    "cruises",
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "((cruises.amenities @> ARRAY[:amenity_0]::text[] OR cruises.amenities @> ARRAY[:amenity_1]::text[]))", where)
	assert.Equal(t, "Pool", args["amenity_0"])
	assert.Equal(t, "Spa", args["amenity_1"])
}
