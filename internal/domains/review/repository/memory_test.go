package repository_test

import (
	"context"
	"testing"
	"time"

	"cruisevoyager/internal/domains/review/model"
	"cruisevoyager/internal/domains/review/repository"
	gDto "cruisevoyager/shared/dto"
	gModel "cruisevoyager/shared/model"
	"cruisevoyager/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAggregate(t *testing.T) {
	repo := repository.NewMemory()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, model.Review{ID: "r1", CruiseID: "caribbean", Rating: 5}))
	require.NoError(t, repo.Insert(ctx, model.Review{ID: "r2", CruiseID: "caribbean", Rating: 4}))
	require.NoError(t, repo.Insert(ctx, model.Review{ID: "r3", CruiseID: "alaska", Rating: 3}))

	rating, err := repo.Aggregate(ctx, "caribbean")
	require.NoError(t, err)
	assert.InDelta(t, 4.5, rating.Average, 0.001)
	assert.Equal(t, 2, rating.Count)
}

func TestMemoryAggregate_NoReviews(t *testing.T) {
	repo := repository.NewMemory()

	rating, err := repo.Aggregate(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Zero(t, rating.Average)
	assert.Zero(t, rating.Count)
}

func TestMemoryAggregates(t *testing.T) {
	repo := repository.NewMemory()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, model.Review{ID: "r1", CruiseID: "caribbean", Rating: 5}))
	require.NoError(t, repo.Insert(ctx, model.Review{ID: "r2", CruiseID: "caribbean", Rating: 4}))
	require.NoError(t, repo.Insert(ctx, model.Review{ID: "r3", CruiseID: "alaska", Rating: 3}))

	ratings, err := repo.Aggregates(ctx)
	require.NoError(t, err)
	require.Len(t, ratings, 2)
	assert.InDelta(t, 4.5, ratings["caribbean"].Average, 0.001)
	assert.Equal(t, 2, ratings["caribbean"].Count)
	assert.InDelta(t, 3.0, ratings["alaska"].Average, 0.001)

	// Cruises without reviews are simply absent.
	assert.NotContains(t, ratings, "mediterranean")
}

func TestMemoryListByCruise(t *testing.T) {
	repo := repository.NewMemory()
	ctx := context.Background()

	newer := timezone.Now()
	older := newer.Add(-time.Hour)

	require.NoError(t, repo.Insert(ctx, model.Review{
		ID: "r1", CruiseID: "caribbean", Rating: 5,
		Metadata: gModel.Metadata{CreatedAt: older},
	}))
	require.NoError(t, repo.Insert(ctx, model.Review{
		ID: "r2", CruiseID: "caribbean", Rating: 4,
		Metadata: gModel.Metadata{CreatedAt: newer},
	}))
	require.NoError(t, repo.Insert(ctx, model.Review{ID: "r3", CruiseID: "alaska", Rating: 3}))

	reviews, err := repo.ListByCruise(ctx, "caribbean", gDto.QueryParams{})
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	// Newest first.
	assert.Equal(t, "r2", reviews[0].ID)

	limited, err := repo.ListByCruise(ctx, "caribbean", gDto.QueryParams{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
