package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"cruisevoyager/config"
	"cruisevoyager/infras/otel"
	"cruisevoyager/infras/postgres"
	"cruisevoyager/internal/domains/review/model"
	"cruisevoyager/shared/constant"
	gDto "cruisevoyager/shared/dto"
	"cruisevoyager/shared/logger"
	gRepo "cruisevoyager/shared/repository"
)

type Review interface {
	Insert(ctx context.Context, review model.Review) error
	ListByCruise(ctx context.Context, cruiseID string, params gDto.QueryParams) ([]model.Review, error)
	Aggregate(ctx context.Context, cruiseID string) (model.Rating, error)
	Aggregates(ctx context.Context) (map[string]model.Rating, error)
}

func New(cfg *config.Config, db *postgres.Connection, otl otel.Otel) Review {
	if cfg.DB.Driver == constant.DBDriverMemory {
		return NewMemory()
	}

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
	db   *postgres.Connection
	otel otel.Otel
}

func (repo *repositoryImpl) ListByCruise(ctx context.Context, cruiseID string, params gDto.QueryParams) ([]model.Review, error) {
	if params.SortBy == "" {
		params.SortBy = constant.FieldCreatedAt
		params.SortDir = gDto.SortDirDesc
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCruiseID,
				Value:    cruiseID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) Aggregate(ctx context.Context, cruiseID string) (model.Rating, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.Aggregate")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT COALESCE(AVG(%s), 0) AS average, COUNT(*) AS count FROM %s WHERE %s = $1",
		model.FieldRating, model.TableName, model.FieldCruiseID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rating := model.Rating{CruiseID: cruiseID}

	err := repo.db.Read.GetContext(ctx, &rating, query, cruiseID)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return rating, fmt.Errorf("failed to aggregate reviews: %w", err)
	}

	rating.CruiseID = cruiseID

	return rating, nil
}

func (repo *repositoryImpl) Aggregates(ctx context.Context) (map[string]model.Rating, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.Aggregates")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT %s, COALESCE(AVG(%s), 0) AS average, COUNT(*) AS count FROM %s GROUP BY %s",
		model.FieldCruiseID, model.FieldRating, model.TableName, model.FieldCruiseID,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []model.Rating

	err := repo.db.Read.SelectContext(ctx, &rows, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to aggregate reviews: %w", err)
	}

	ratings := make(map[string]model.Rating, len(rows))
	for _, row := range rows {
		ratings[row.CruiseID] = row
	}

	return ratings, nil
}
