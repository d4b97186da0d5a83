package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"cruisevoyager/config"
	"cruisevoyager/infras/otel"
	"cruisevoyager/internal/domains/cruise/model"
	"cruisevoyager/internal/domains/cruise/model/dto"
	"cruisevoyager/internal/domains/cruise/repository"
	reviewRepo "cruisevoyager/internal/domains/review/repository"
	"cruisevoyager/shared"
	"cruisevoyager/shared/cache"
	"cruisevoyager/shared/constant"
	gDto "cruisevoyager/shared/dto"
	"cruisevoyager/shared/failure"

	"github.com/rs/zerolog/log"
)

// Cache key prefixes, exported so the review flow can invalidate listings
// when a new review changes the derived ratings.
const (
	CacheGetCruise       = "cruise:get"
	CacheGetAllCruises   = "cruise:gets"
	CacheFeaturedCruises = "cruise:featured"
)

type Cruise interface {
	List(ctx context.Context, filters dto.SearchFilters, params gDto.QueryParams) (dto.GetCruisesResponse, error)
	Get(ctx context.Context, id string) (dto.CruiseResponse, error)
	BestSellers(ctx context.Context, limit int) ([]dto.CruiseResponse, error)
	SpecialOffers(ctx context.Context, limit int) ([]dto.CruiseResponse, error)
	Recommended(ctx context.Context, destination string, limit int) ([]dto.CruiseResponse, error)
}

type serviceImpl struct {
	repo       repository.Cruise
	reviewRepo reviewRepo.Review
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(repo repository.Cruise, reviewRepo reviewRepo.Review, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Cruise {
	return &serviceImpl{
		repo:       repo,
		reviewRepo: reviewRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, filters dto.SearchFilters, params gDto.QueryParams) (res dto.GetCruisesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(CacheGetAllCruises, filters, params)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cruises")

		return res, nil
	}

	cruises, err := s.repo.Search(ctx, filters, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to search cruises")

		return res, fmt.Errorf("failed to search cruises: %w", err)
	}

	responses, err := s.enrich(ctx, cruises)
	if err != nil {
		return res, err
	}

	if filters.MinRating != nil {
		filtered := make([]dto.CruiseResponse, 0, len(responses))

		for _, cruise := range responses {
			if cruise.Rating >= *filters.MinRating {
				filtered = append(filtered, cruise)
			}
		}

		responses = filtered
	}

	res.Cruises = responses
	res.TotalData = len(responses)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cruises to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CruiseResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(CacheGetCruise, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cruise")

		return res, nil
	}

	cruise, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cruise")

		return res, fmt.Errorf("failed to get cruise: %w", err)
	}

	if cruise.ID == constant.Empty {
		return res, failure.NotFound("Cruise not found") // nolint:wrapcheck
	}

	rating, err := s.reviewRepo.Aggregate(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to aggregate reviews")

		return res, fmt.Errorf("failed to aggregate reviews: %w", err)
	}

	res.FromModel(cruise, rating.Average, rating.Count)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cruise to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) BestSellers(ctx context.Context, limit int) ([]dto.CruiseResponse, error) {
	return s.featured(ctx, model.FieldIsBestSeller, limit)
}

func (s *serviceImpl) SpecialOffers(ctx context.Context, limit int) ([]dto.CruiseResponse, error) {
	return s.featured(ctx, model.FieldIsSpecialOffer, limit)
}

func (s *serviceImpl) featured(ctx context.Context, flagField string, limit int) (res []dto.CruiseResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".featured")
	defer scope.End()
	defer scope.TraceIfError(err)

	if limit <= 0 {
		limit = constant.DefaultFeaturedLimit
	}

	cacheKey := shared.BuildCacheKeyWithQuery(CacheFeaturedCruises, flagField, limit)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for featured cruises")

		return res, nil
	}

	cruises, err := s.repo.ListFeatured(ctx, flagField, limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to list featured cruises")

		return res, fmt.Errorf("failed to list featured cruises: %w", err)
	}

	res, err = s.enrich(ctx, cruises)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save featured cruises to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Recommended(ctx context.Context, destination string, limit int) (res []dto.CruiseResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Recommended")
	defer scope.End()
	defer scope.TraceIfError(err)

	if limit <= 0 {
		limit = constant.DefaultFeaturedLimit
	}

	cruises, err := s.repo.Recommended(ctx, destination, limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to list recommended cruises")

		return res, fmt.Errorf("failed to list recommended cruises: %w", err)
	}

	return s.enrich(ctx, cruises)
}

// enrich joins each cruise with its derived review aggregate.
func (s *serviceImpl) enrich(ctx context.Context, cruises []model.Cruise) ([]dto.CruiseResponse, error) {
	ratings, err := s.reviewRepo.Aggregates(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to aggregate reviews")

		return nil, fmt.Errorf("failed to aggregate reviews: %w", err)
	}

	responses := make([]dto.CruiseResponse, len(cruises))
	for i, cruise := range cruises {
		rating := ratings[cruise.ID]
		responses[i].FromModel(cruise, rating.Average, rating.Count)
	}

	return responses, nil
}
