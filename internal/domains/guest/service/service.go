package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"oasis/config"
	"oasis/infras/otel"
	"oasis/internal/domains/guest/model"
	"oasis/internal/domains/guest/model/dto"
	"oasis/internal/domains/guest/repository"
	"oasis/shared"
	"oasis/shared/cache"
	"oasis/shared/constant"
	"oasis/shared/failure"
)

const (
	cacheGetGuest = "guest:get"

	msgGuestLoadError   = "Guest could not be loaded"
	msgGuestCreateError = "Guest could not be created"
	msgGuestUpdateError = "Guest could not be updated"
	msgGuestNoFields    = "No guest fields to update"
)

type Guest interface {
	Get(ctx context.Context, id int64) (dto.GuestResponse, error)
	GetByEmail(ctx context.Context, email string) (*dto.GuestResponse, error)
	Create(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateGuestRequest) (dto.GuestResponse, error)
}

type serviceImpl struct {
	repo  repository.Guest
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGuest, strconv.FormatInt(id, 10))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get guest")

		return res, failure.InternalFromString(msgGuestLoadError) //nolint:wrapcheck
	}

	if guest.ID == 0 {
		return res, failure.NotFound(msgGuestLoadError) //nolint:wrapcheck
	}

	res.FromModel(guest)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest to cache")
		}
	}()

	return res, nil
}

// GetByEmail looks a guest up by email. A missing guest is an expected
// outcome during sign-in, so absence is reported as (nil, nil) and only a
// backend failure produces an error.
func (s *serviceImpl) GetByEmail(ctx context.Context, email string) (res *dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByEmail")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.repo.Get(ctx, shared.FilterByValue(email, model.FieldEmail, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to get guest by email")

		return nil, failure.InternalFromString(msgGuestLoadError) //nolint:wrapcheck
	}

	if guest.ID == 0 {
		return nil, nil
	}

	res = &dto.GuestResponse{}
	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	guest, err := s.repo.Insert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("failed to create guest")

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict(msgGuestCreateError) //nolint:wrapcheck
		}

		return res, failure.InternalFromString(msgGuestCreateError) //nolint:wrapcheck
	}

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	fields := shared.PatchFields(req)
	if len(fields) == 0 {
		return res, failure.BadRequestFromString(msgGuestNoFields) //nolint:wrapcheck
	}

	guest, err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update guest")

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict(msgGuestUpdateError) //nolint:wrapcheck
		}

		return res, failure.InternalFromString(msgGuestUpdateError) //nolint:wrapcheck
	}

	if guest.ID == 0 {
		return res, failure.NotFound(msgGuestUpdateError) //nolint:wrapcheck
	}

	res.FromModel(guest)

	go shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetGuest)

	return res, nil
}
