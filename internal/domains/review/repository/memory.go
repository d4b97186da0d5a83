package repository

import (
	"context"
	"sort"
	"sync"

	"cruisevoyager/internal/domains/review/model"
	gDto "cruisevoyager/shared/dto"
)

type memoryImpl struct {
	mutex   sync.RWMutex
	reviews map[string]model.Review
}

// NewMemory returns a map-backed review repository for development and tests.
func NewMemory() Review {
	return &memoryImpl{
		reviews: make(map[string]model.Review),
	}
}

func (repo *memoryImpl) Insert(_ context.Context, review model.Review) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	repo.reviews[review.ID] = review

	return nil
}

func (repo *memoryImpl) ListByCruise(_ context.Context, cruiseID string, params gDto.QueryParams) ([]model.Review, error) {
	repo.mutex.RLock()

	matched := make([]model.Review, 0)

	for _, review := range repo.reviews {
		if review.CruiseID == cruiseID {
			matched = append(matched, review)
		}
	}

	repo.mutex.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if params.Limit > 0 && len(matched) > params.Limit {
		matched = matched[:params.Limit]
	}

	return matched, nil
}

func (repo *memoryImpl) Aggregate(_ context.Context, cruiseID string) (model.Rating, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	rating := model.Rating{CruiseID: cruiseID}
	sum := 0

	for _, review := range repo.reviews {
		if review.CruiseID == cruiseID {
			sum += review.Rating
			rating.Count++
		}
	}

	if rating.Count > 0 {
		rating.Average = float64(sum) / float64(rating.Count)
	}

	return rating, nil
}

func (repo *memoryImpl) Aggregates(_ context.Context) (map[string]model.Rating, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	sums := make(map[string]int)
	ratings := make(map[string]model.Rating)

	for _, review := range repo.reviews {
		rating := ratings[review.CruiseID]
		rating.CruiseID = review.CruiseID
		rating.Count++
		sums[review.CruiseID] += review.Rating
		ratings[review.CruiseID] = rating
	}

	for cruiseID, rating := range ratings {
		rating.Average = float64(sums[cruiseID]) / float64(rating.Count)
		ratings[cruiseID] = rating
	}

	return ratings, nil
}
