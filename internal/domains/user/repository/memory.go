package repository

import (
	"context"
	"sync"
	"time"

	"cruisevoyager/internal/domains/user/model"
	"cruisevoyager/shared/constant"
)

type memoryImpl struct {
	mutex sync.RWMutex
	users map[string]model.User
}

// NewMemory returns a map-backed user repository for development and tests.
func NewMemory() User {
	return &memoryImpl{
		users: make(map[string]model.User),
	}
}

func (repo *memoryImpl) Insert(_ context.Context, user model.User) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	repo.users[user.ID] = user

	return nil
}

func (repo *memoryImpl) GetByID(_ context.Context, id string) (model.User, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	return repo.users[id], nil
}

func (repo *memoryImpl) GetByUsername(_ context.Context, username string) (model.User, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	for _, user := range repo.users {
		if user.Username == username {
			return user, nil
		}
	}

	return model.User{}, nil
}

func (repo *memoryImpl) GetByEmail(_ context.Context, email string) (model.User, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	for _, user := range repo.users {
		if user.Email == email {
			return user, nil
		}
	}

	return model.User{}, nil
}

func (repo *memoryImpl) ExistByUsername(ctx context.Context, username string) (bool, error) {
	user, _ := repo.GetByUsername(ctx, username)

	return user.ID != constant.Empty, nil
}

func (repo *memoryImpl) ExistByEmail(ctx context.Context, email string) (bool, error) {
	user, _ := repo.GetByEmail(ctx, email)

	return user.ID != constant.Empty, nil
}

func (repo *memoryImpl) Update(_ context.Context, fields map[string]any, id string) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	user, ok := repo.users[id]
	if !ok {
		return nil
	}

	for field, value := range fields {
		switch field {
		case model.FieldUsername:
			user.Username, _ = value.(string)
		case model.FieldEmail:
			user.Email, _ = value.(string)
		case model.FieldPassword:
			user.Password, _ = value.(string)
		case model.FieldFirstName:
			user.FirstName, _ = value.(string)
		case model.FieldLastName:
			user.LastName, _ = value.(string)
		case model.FieldEmailVerified:
			user.EmailVerified, _ = value.(bool)
		case model.FieldStripeID:
			user.StripeCustomerID, _ = value.(string)
		case constant.FieldModifiedAt:
			user.ModifiedAt, _ = value.(time.Time)
		case constant.FieldModifiedBy:
			user.ModifiedBy, _ = value.(string)
		}
	}

	repo.users[id] = user

	return nil
}
