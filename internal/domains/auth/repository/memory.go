package repository

import (
	"context"
	"sync"

	"cruisevoyager/internal/domains/auth/model"
)

type memoryImpl struct {
	mutex  sync.RWMutex
	tokens map[string]model.Token
}

// NewMemory returns a map-backed token repository for development and tests.
func NewMemory() Token {
	return &memoryImpl{
		tokens: make(map[string]model.Token),
	}
}

func (repo *memoryImpl) Insert(_ context.Context, token model.Token) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	repo.tokens[token.ID] = token

	return nil
}

func (repo *memoryImpl) GetByToken(_ context.Context, token, kind string) (model.Token, error) {
	repo.mutex.RLock()
	defer repo.mutex.RUnlock()

	for _, record := range repo.tokens {
		if record.Token == token && record.Kind == kind {
			return record, nil
		}
	}

	return model.Token{}, nil
}

func (repo *memoryImpl) DeleteByID(_ context.Context, id string) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	delete(repo.tokens, id)

	return nil
}

func (repo *memoryImpl) DeleteByUser(_ context.Context, userID, kind string) error {
	repo.mutex.Lock()
	defer repo.mutex.Unlock()

	for id, record := range repo.tokens {
		if record.UserID == userID && record.Kind == kind {
			delete(repo.tokens, id)
		}
	}

	return nil
}
