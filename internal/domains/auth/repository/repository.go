package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"cruisevoyager/config"
	"cruisevoyager/infras/otel"
	"cruisevoyager/infras/postgres"
	"cruisevoyager/internal/domains/auth/model"
	"cruisevoyager/shared"
	"cruisevoyager/shared/constant"
	gDto "cruisevoyager/shared/dto"
	gRepo "cruisevoyager/shared/repository"
)

type Token interface {
	Insert(ctx context.Context, token model.Token) error
	GetByToken(ctx context.Context, token, kind string) (model.Token, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID, kind string) error
}

func New(cfg *config.Config, db *postgres.Connection, otl otel.Otel) Token {
	if cfg.DB.Driver == constant.DBDriverMemory {
		return NewMemory()
	}

	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Token](model.EntityName, model.TableName, model.FieldID, db, otl),
		db:         db,
		otel:       otl,
	}
}

type repositoryImpl struct {
	gRepo.Repository[model.Token]
	db   *postgres.Connection
	otel otel.Otel
}

func (repo *repositoryImpl) GetByToken(ctx context.Context, token, kind string) (model.Token, error) {
	return repo.Get(ctx, tokenFilter(token, kind)) //nolint:wrapcheck
}

func (repo *repositoryImpl) DeleteByID(ctx context.Context, id string) error {
	return repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (repo *repositoryImpl) DeleteByUser(ctx context.Context, userID, kind string) error {
	return repo.Delete(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Value:    userID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldKind,
				Value:    kind,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}) //nolint:wrapcheck
}

func tokenFilter(token, kind string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldToken,
				Value:    token,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldKind,
				Value:    kind,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
