package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"cruisevoyager/config"
	"cruisevoyager/infras/otel"
	"cruisevoyager/infras/postgres"
	"cruisevoyager/internal/domains/user/model"
	"cruisevoyager/shared"
	"cruisevoyager/shared/constant"
	gDto "cruisevoyager/shared/dto"
	gRepo "cruisevoyager/shared/repository"
)

type User interface {
	Insert(ctx context.Context, user model.User) error
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	ExistByUsername(ctx context.Context, username string) (bool, error)
	ExistByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, fields map[string]any, id string) error
}

func New(cfg *config.Config, db *postgres.Connection, otl otel.Otel) User {
	if cfg.DB.Driver == constant.DBDriverMemory {
		return NewMemory()
	}

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func (repo *repositoryImpl) GetByID(ctx context.Context, id string) (model.User, error) {
	return repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return repo.Get(ctx, fieldFilter(model.FieldUsername, username)) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return repo.Get(ctx, fieldFilter(model.FieldEmail, email)) //nolint:wrapcheck
}

func (repo *repositoryImpl) ExistByUsername(ctx context.Context, username string) (bool, error) {
	return repo.Exist(ctx, fieldFilter(model.FieldUsername, username)) //nolint:wrapcheck
}

func (repo *repositoryImpl) ExistByEmail(ctx context.Context, email string) (bool, error) {
	return repo.Exist(ctx, fieldFilter(model.FieldEmail, email)) //nolint:wrapcheck
}

func (repo *repositoryImpl) Update(ctx context.Context, fields map[string]any, id string) error {
	return repo.Repository.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func fieldFilter(field string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Value:    value,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
