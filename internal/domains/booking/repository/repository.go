package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"oasis/infras/otel"
	"oasis/infras/postgres"
	"oasis/internal/domains/booking/model"
	gDto "oasis/shared/dto"
	gRepo "oasis/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) (model.Booking, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetAllWithCabin(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingWithCabin, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) (model.Booking, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	withCabin gRepo.Repository[model.BookingWithCabin]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		withCabin:  gRepo.NewRepository[model.BookingWithCabin](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetAllWithCabin reads bookings through the cabin join projection.
func (repo *repositoryImpl) GetAllWithCabin(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingWithCabin, error) {
	return repo.withCabin.GetAll(ctx, params, filter, columns...)
}
