package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"cruisevoyager/config"
	"cruisevoyager/infras/otel"
	"cruisevoyager/infras/postgres"
	"cruisevoyager/internal/domains/booking/model"
	"cruisevoyager/shared"
	"cruisevoyager/shared/constant"
	gDto "cruisevoyager/shared/dto"
	gRepo "cruisevoyager/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	GetByID(ctx context.Context, id string) (model.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]model.Booking, error)
	Update(ctx context.Context, fields map[string]any, id string) error
}

func New(cfg *config.Config, db *postgres.Connection, otl otel.Otel) Booking {
	if cfg.DB.Driver == constant.DBDriverMemory {
		return NewMemory()
	}

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.Booking, error) {
	return repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) ListByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) Update(ctx context.Context, fields map[string]any, id string) error {
	return repo.Repository.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}
