package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"cruisevoyager/config"
	"cruisevoyager/infras/otel"
	cruiseRepo "cruisevoyager/internal/domains/cruise/repository"
	cruiseService "cruisevoyager/internal/domains/cruise/service"
	"cruisevoyager/internal/domains/review/model/dto"
	"cruisevoyager/internal/domains/review/repository"
	"cruisevoyager/shared"
	"cruisevoyager/shared/cache"
	"cruisevoyager/shared/constant"
	gDto "cruisevoyager/shared/dto"
	"cruisevoyager/shared/failure"

	"github.com/rs/zerolog/log"
)

type Review interface {
	Create(ctx context.Context, cruiseID string, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	ListByCruise(ctx context.Context, cruiseID string, params gDto.QueryParams) (dto.GetReviewsResponse, error)
}

type serviceImpl struct {
	repo       repository.Review
	cruiseRepo cruiseRepo.Cruise
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(repo repository.Review, cruiseRepo cruiseRepo.Cruise, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Review {
	return &serviceImpl{
		repo:       repo,
		cruiseRepo: cruiseRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, cruiseID string, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.cruiseRepo.ExistByID(ctx, cruiseID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if cruise exists")

		return res, fmt.Errorf("failed to check if cruise exists: %w", err)
	}

	if !exists {
		return res, failure.NotFound("Cruise not found") // nolint:wrapcheck
	}

	review := req.ToModel(userID, cruiseID)

	if err = s.repo.Insert(ctx, review); err != nil {
		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	res.FromModel(review)

	// New reviews change derived ratings embedded in cruise payloads.
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cruiseService.CacheGetAllCruises, cruiseService.CacheFeaturedCruises)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cruiseService.CacheGetCruise, cruiseID)); err != nil {
			log.Error().Err(err).Msg("failed to delete cruise from cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ListByCruise(ctx context.Context, cruiseID string, params gDto.QueryParams) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByCruise")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.cruiseRepo.ExistByID(ctx, cruiseID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if cruise exists")

		return res, fmt.Errorf("failed to check if cruise exists: %w", err)
	}

	if !exists {
		return res, failure.NotFound("Cruise not found") // nolint:wrapcheck
	}

	reviews, err := s.repo.ListByCruise(ctx, cruiseID, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to list reviews")

		return res, fmt.Errorf("failed to list reviews: %w", err)
	}

	rating, err := s.repo.Aggregate(ctx, cruiseID)
	if err != nil {
		log.Error().Err(err).Msg("failed to aggregate reviews")

		return res, fmt.Errorf("failed to aggregate reviews: %w", err)
	}

	res.FromModels(reviews, rating)

	return res, nil
}
