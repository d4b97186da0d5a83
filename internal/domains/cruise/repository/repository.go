package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"cruisevoyager/config"
	"cruisevoyager/infras/otel"
	"cruisevoyager/infras/postgres"
	"cruisevoyager/internal/domains/cruise/model"
	"cruisevoyager/internal/domains/cruise/model/dto"
	"cruisevoyager/shared"
	"cruisevoyager/shared/constant"
	gDto "cruisevoyager/shared/dto"
	gRepo "cruisevoyager/shared/repository"
)

type Cruise interface {
	Insert(ctx context.Context, cruise model.Cruise) error
	InsertBulk(ctx context.Context, cruises []model.Cruise) error
	GetByID(ctx context.Context, id string) (model.Cruise, error)
	ExistByID(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, filters dto.SearchFilters, params gDto.QueryParams) ([]model.Cruise, error)
	ListFeatured(ctx context.Context, flagField string, limit int) ([]model.Cruise, error)
	Recommended(ctx context.Context, destination string, limit int) ([]model.Cruise, error)
	Count(ctx context.Context, filters dto.SearchFilters) (int, error)
}

func New(cfg *config.Config, db *postgres.Connection, otl otel.Otel) Cruise {
	if cfg.DB.Driver == constant.DBDriverMemory {
		return NewMemory()
	}

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Cruise](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

type repositoryImpl struct {
	gRepo.Repository[model.Cruise]
	db   *postgres.Connection
	otel otel.Otel
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.Cruise, error) {
	return repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) ExistByID(ctx context.Context, id string) (bool, error) {
	return repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) Search(ctx context.Context, filters dto.SearchFilters, params gDto.QueryParams) ([]model.Cruise, error) {
	if params.SortBy == "" {
		params.SortBy = DefaultSort
		params.SortDir = gDto.SortDirAsc
	}

	return repo.GetAll(ctx, params, BuildFilterGroup(filters)) //nolint:wrapcheck
}

func (repo *repositoryImpl) ListFeatured(ctx context.Context, flagField string, limit int) ([]model.Cruise, error) {
	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  DefaultSort,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    flagField,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) Recommended(ctx context.Context, destination string, limit int) ([]model.Cruise, error) {
	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.FieldIsBestSeller + " DESC, " + model.FieldIsSpecialOffer + " DESC, " + effectivePriceColumn,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{}
	if destination != "" {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldDestination,
			Value:    destination,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) Count(ctx context.Context, filters dto.SearchFilters) (int, error) {
	return repo.Repository.Count(ctx, BuildFilterGroup(filters)) //nolint:wrapcheck
}
