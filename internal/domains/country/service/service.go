package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"oasis/config"
	"oasis/infras/otel"
	"oasis/internal/domains/country/client"
	"oasis/internal/domains/country/model"
	"oasis/shared/cache"
	"oasis/shared/constant"
	"oasis/shared/failure"
)

const (
	cacheGetCountries = "country:gets"

	msgCountriesFetchError = "Could not fetch countries"
)

type Country interface {
	GetAll(ctx context.Context) ([]model.Country, error)
}

type serviceImpl struct {
	client client.Countries
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(client client.Countries, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Country {
	return &serviceImpl{
		client: client,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

// GetAll proxies the external countries API. The list changes rarely, so a
// cached copy also rides over upstream outages within the TTL.
func (s *serviceImpl) GetAll(ctx context.Context) (res []model.Country, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Get(ctx, cacheGetCountries, &res); err == nil {
		return res, nil
	}

	res, err = s.client.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch countries")

		return nil, failure.BadGateway(msgCountriesFetchError) //nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetCountries, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save countries to cache")
		}
	}()

	return res, nil
}
