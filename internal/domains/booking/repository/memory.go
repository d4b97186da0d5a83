package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"cruisevoyager/internal/domains/booking/model"
	"cruisevoyager/shared/constant"
)

type memoryImpl struct {
	mutex    sync.RWMutex
	bookings map[string]model.Booking
}

// NewMemory returns a map-backed booking repository for development and
// tests.
func NewMemory() Booking {
	return &memoryImpl{
		bookings: make(map[string]model.Booking),
	}
}

func (repo *memoryImpl) Insert(_ context.Context, booking model.Booking) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	repo.bookings[booking.ID] = booking

	return nil
}

func (repo *memoryImpl) GetByID(_ context.Context, id string) (model.Booking, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	return repo.bookings[id], nil
}

func (repo *memoryImpl) ListByUser(_ context.Context, userID string) ([]model.Booking, error) {
	repo.mutex.RLock()

	matched := make([]model.Booking, 0)

	for _, booking := range repo.bookings {
		if booking.UserID == userID {
			matched = append(matched, booking)
		}
	}

	repo.mutex.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	return matched, nil
}

func (repo *memoryImpl) Update(_ context.Context, fields map[string]any, id string) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	booking, ok := repo.bookings[id]
	if !ok {
		return nil
	}

	for field, value := range fields {
		switch field {
		case model.FieldPaymentStatus:
			booking.PaymentStatus, _ = value.(string)
		case model.FieldPaymentIntentID:
			booking.PaymentIntentID, _ = value.(string)
		case model.FieldClientSecret:
			booking.ClientSecret, _ = value.(string)
		case constant.FieldModifiedAt:
			booking.ModifiedAt, _ = value.(time.Time)
		case constant.FieldModifiedBy:
			booking.ModifiedBy, _ = value.(string)
		}
	}

	repo.bookings[id] = booking

	return nil
}
