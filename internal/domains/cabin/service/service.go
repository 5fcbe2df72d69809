package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog/log"

	"oasis/config"
	"oasis/infras/otel"
	"oasis/infras/s3"
	"oasis/internal/domains/cabin/model"
	"oasis/internal/domains/cabin/model/dto"
	"oasis/internal/domains/cabin/repository"
	"oasis/shared"
	"oasis/shared/cache"
	"oasis/shared/constant"
	gDto "oasis/shared/dto"
	"oasis/shared/failure"
)

const (
	cacheGetCabin      = "cabin:get"
	cacheGetAllCabins  = "cabin:gets"
	cacheGetCabinPrice = "cabin:price"

	msgCabinNotFound   = "Cabin could not be found"
	msgCabinsLoadError = "Cabins could not be loaded"
)

type Cabin interface {
	Get(ctx context.Context, id int64) (dto.CabinResponse, error)
	GetPrice(ctx context.Context, id int64) (*dto.CabinPriceResponse, error)
	GetAll(ctx context.Context) ([]dto.CabinResponse, error)
}

type serviceImpl struct {
	repo   repository.Cabin
	cfg    *config.Config
	cache  cache.RedisCache
	images s3.ImageStore
	otel   otel.Otel
}

func New(repo repository.Cabin, cfg *config.Config, cache cache.RedisCache, images s3.ImageStore, otel otel.Otel) Cabin {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		images: images,
		otel:   otel,
	}
}

// Get returns a single cabin. A cabin that does not exist is a terminal
// not-found condition for the calling page.
func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.CabinResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCabin, strconv.FormatInt(id, 10))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	cabin, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get cabin")

		return res, failure.InternalFromString(msgCabinsLoadError) //nolint:wrapcheck
	}

	if cabin.ID == 0 {
		return res, failure.NotFound(msgCabinNotFound) //nolint:wrapcheck
	}

	cabin.Image = s.resolveImage(ctx, cabin.Image)
	res.FromModel(cabin)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cabin to cache")
		}
	}()

	return res, nil
}

// GetPrice returns the price projection of a cabin, or nil when the cabin
// does not exist. Absence is not an error here; the reservation form decides
// what to render.
func (s *serviceImpl) GetPrice(ctx context.Context, id int64) (res *dto.CabinPriceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPrice")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCabinPrice, strconv.FormatInt(id, 10))

	var cached dto.CabinPriceResponse
	if err = s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	cabin, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName), model.FieldID, model.FieldRegularPrice, model.FieldDiscount)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get cabin price")

		return nil, failure.InternalFromString(msgCabinsLoadError) //nolint:wrapcheck
	}

	if cabin.ID == 0 {
		return nil, nil
	}

	res = &dto.CabinPriceResponse{}
	res.FromModel(cabin)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cabin price to cache")
		}
	}()

	return res, nil
}

// GetAll returns every cabin ordered by name.
func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.CabinResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Get(ctx, cacheGetAllCabins, &res); err == nil {
		return res, nil
	}

	cabins, err := s.repo.GetAll(ctx, gDto.OrderedBy(model.FieldName), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get cabins")

		return res, failure.InternalFromString(msgCabinsLoadError) //nolint:wrapcheck
	}

	res = make([]dto.CabinResponse, len(cabins))
	for i, cabin := range cabins {
		cabin.Image = s.resolveImage(ctx, cabin.Image)
		res[i].FromModel(cabin)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllCabins, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cabins to cache")
		}
	}()

	return res, nil
}

// resolveImage swaps a stored object key for a fetchable URL. A failed
// resolution falls back to the raw reference so a broken image never fails
// the read.
func (s *serviceImpl) resolveImage(ctx context.Context, image string) string {
	if image == "" {
		return image
	}

	url, err := s.images.ImageURL(ctx, image)
	if err != nil {
		log.Error().Err(err).Str("image", image).Msg("failed to resolve cabin image")

		return image
	}

	return url
}
