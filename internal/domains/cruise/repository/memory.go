package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"cruisevoyager/internal/domains/cruise/model"
	"cruisevoyager/internal/domains/cruise/model/dto"
	"cruisevoyager/shared/constant"
	gDto "cruisevoyager/shared/dto"
	"cruisevoyager/shared/timezone"
)

type memoryImpl struct {
	mutex   sync.RWMutex
	cruises map[string]model.Cruise
}

// NewMemory returns a map-backed cruise repository for development and
// tests. It mirrors the SQL search semantics exactly.
func NewMemory() Cruise {
	return &memoryImpl{
		cruises: make(map[string]model.Cruise),
	}
}

func (repo *memoryImpl) Insert(_ context.Context, cruise model.Cruise) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	repo.cruises[cruise.ID] = cruise

	return nil
}

func (repo *memoryImpl) InsertBulk(ctx context.Context, cruises []model.Cruise) error {
	for _, cruise := range cruises {
		if err := repo.Insert(ctx, cruise); err != nil {
			return err
		}
	}

	return nil
}

func (repo *memoryImpl) GetByID(_ context.Context, id string) (model.Cruise, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	return repo.cruises[id], nil
}

func (repo *memoryImpl) ExistByID(ctx context.Context, id string) (bool, error) {
	cruise, _ := repo.GetByID(ctx, id)

	return cruise.ID != constant.Empty, nil
}

func (repo *memoryImpl) Search(_ context.Context, filters dto.SearchFilters, params gDto.QueryParams) ([]model.Cruise, error) {
	repo.mutex.RLock()

	matched := make([]model.Cruise, 0)

	for _, cruise := range repo.cruises {
		if matchesFilters(cruise, filters) {
			matched = append(matched, cruise)
		}
	}

	repo.mutex.RUnlock()

	sortDefault(matched)

	return paginate(matched, params), nil
}

func (repo *memoryImpl) ListFeatured(_ context.Context, flagField string, limit int) ([]model.Cruise, error) {
	repo.mutex.RLock()

	matched := make([]model.Cruise, 0)

	for _, cruise := range repo.cruises {
		switch flagField {
		case model.FieldIsBestSeller:
			if cruise.IsBestSeller {
				matched = append(matched, cruise)
			}
		case model.FieldIsSpecialOffer:
			if cruise.IsSpecialOffer {
				matched = append(matched, cruise)
			}
		}
	}

	repo.mutex.RUnlock()

	sortDefault(matched)

	return truncate(matched, limit), nil
}

func (repo *memoryImpl) Recommended(_ context.Context, destination string, limit int) ([]model.Cruise, error) {
	repo.mutex.RLock()

	matched := make([]model.Cruise, 0)

	for _, cruise := range repo.cruises {
		if destination == "" || containsFold(cruise.Destination, destination) {
			matched = append(matched, cruise)
		}
	}

	repo.mutex.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]

		if a.IsBestSeller != b.IsBestSeller {
			return a.IsBestSeller
		}

		if a.IsSpecialOffer != b.IsSpecialOffer {
			return a.IsSpecialOffer
		}

		return a.EffectivePrice() < b.EffectivePrice()
	})

	return truncate(matched, limit), nil
}

func (repo *memoryImpl) Count(ctx context.Context, filters dto.SearchFilters) (int, error) {
	matched, err := repo.Search(ctx, filters, gDto.QueryParams{})
	if err != nil {
		return 0, err
	}

	return len(matched), nil
}

func matchesFilters(cruise model.Cruise, filters dto.SearchFilters) bool {
	if filters.Destination != "" && !containsFold(cruise.Destination, filters.Destination) {
		return false
	}

	if filters.DeparturePort != "" && !containsFold(cruise.DeparturePort, filters.DeparturePort) {
		return false
	}

	if filters.DepartureDate != "" {
		from, err := timezone.Parse(constant.DateOnlyFormat, filters.DepartureDate)
		if err == nil && cruise.DepartureDate.Before(from) {
			return false
		}
	}

	if minNights, maxNights, ok := filters.DurationRange(); ok {
		if cruise.Duration < minNights {
			return false
		}

		if maxNights > 0 && cruise.Duration > maxNights {
			return false
		}
	}

	price := cruise.EffectivePrice()
	if filters.MinPrice != nil && price < *filters.MinPrice {
		return false
	}

	if filters.MaxPrice != nil && price > *filters.MaxPrice {
		return false
	}

	if len(filters.CruiseLines) > 0 && !containsValue(filters.CruiseLines, cruise.CruiseLine) {
		return false
	}

	if len(filters.Amenities) > 0 && !containsAny(cruise.Amenities, filters.Amenities) {
		return false
	}

	if len(filters.CabinTypes) > 0 && !containsAny(cruise.CabinTypes, filters.CabinTypes) {
		return false
	}

	return true
}

func sortDefault(cruises []model.Cruise) {
	sort.SliceStable(cruises, func(i, j int) bool {
		a, b := cruises[i], cruises[j]

		if a.IsBestSeller != b.IsBestSeller {
			return a.IsBestSeller
		}

		if a.IsSpecialOffer != b.IsSpecialOffer {
			return a.IsSpecialOffer
		}

		return a.DepartureDate.Before(b.DepartureDate)
	})
}

func paginate(cruises []model.Cruise, params gDto.QueryParams) []model.Cruise {
	if params.Page > 0 && params.Limit > 0 {
		offset := (params.Page - 1) * params.Limit
		if offset >= len(cruises) {
			return []model.Cruise{}
		}

		cruises = cruises[offset:]
	}

	return truncate(cruises, params.Limit)
}

func truncate(cruises []model.Cruise, limit int) []model.Cruise {
	if limit > 0 && len(cruises) > limit {
		return cruises[:limit]
	}

	return cruises
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func containsValue(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}

	return false
}

func containsAny(have []string, want []string) bool {
	for _, tag := range want {
		if containsValue(have, tag) {
			return true
		}
	}

	return false
}
