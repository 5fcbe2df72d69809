package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"oasis/infras/otel"
	"oasis/infras/postgres"
	"oasis/internal/domains/cabin/model"
	gDto "oasis/shared/dto"
	gRepo "oasis/shared/repository"
)

type Cabin interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Cabin, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Cabin, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Cabin]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Cabin {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Cabin](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
