package service_test

import (
	"context"
	"net/http"
	"testing"

	"cruisevoyager/config"
	"cruisevoyager/infras/otel/mocks"
	cruiseModel "cruisevoyager/internal/domains/cruise/model"
	cruiseRepository "cruisevoyager/internal/domains/cruise/repository"
	"cruisevoyager/internal/domains/review/model/dto"
	"cruisevoyager/internal/domains/review/repository"
	"cruisevoyager/internal/domains/review/service"
	cacheMocks "cruisevoyager/shared/cache/mocks"
	"cruisevoyager/shared/constant"
	gDto "cruisevoyager/shared/dto"
	"cruisevoyager/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewService(t *testing.T) service.Review {
	t.Helper()

	cruises := cruiseRepository.NewMemory()
	require.NoError(t, cruises.Insert(context.Background(), cruiseModel.Cruise{
		ID:    "caribbean",
		Title: "Caribbean Paradise",
	}))

	return service.New(
		repository.NewMemory(),
		cruises,
		&config.Config{},
		cacheMocks.NewRedisCache(),
		mocks.NewOtel(),
	)
}

func userContext(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestReviewService_Create(t *testing.T) {
	svc := newReviewService(t)

	res, err := svc.Create(userContext("user-1"), "caribbean", dto.CreateReviewRequest{
		Rating:  5,
		Comment: "Unforgettable trip",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "user-1", res.UserID)
	assert.Equal(t, "caribbean", res.CruiseID)
	assert.Equal(t, 5, res.Rating)
}

func TestReviewService_Create_UnknownCruise(t *testing.T) {
	svc := newReviewService(t)

	_, err := svc.Create(userContext("user-1"), "atlantis", dto.CreateReviewRequest{
		Rating:  4,
		Comment: "Nice",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestReviewService_ListByCruise(t *testing.T) {
	svc := newReviewService(t)

	_, err := svc.Create(userContext("user-1"), "caribbean", dto.CreateReviewRequest{Rating: 5, Comment: "Great"})
	require.NoError(t, err)
	_, err = svc.Create(userContext("user-2"), "caribbean", dto.CreateReviewRequest{Rating: 4, Comment: "Good"})
	require.NoError(t, err)

	res, err := svc.ListByCruise(context.Background(), "caribbean", gDto.QueryParams{})
	require.NoError(t, err)
	assert.Len(t, res.Reviews, 2)
	assert.InDelta(t, 4.5, res.Rating, 0.001)
	assert.Equal(t, 2, res.Count)
}

func TestReviewService_ListByCruise_UnknownCruise(t *testing.T) {
	svc := newReviewService(t)

	_, err := svc.ListByCruise(context.Background(), "atlantis", gDto.QueryParams{})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
