package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"oasis/config"
	"oasis/infras/otel"
	"oasis/internal/domains/settings/model/dto"
	"oasis/internal/domains/settings/repository"
	"oasis/shared/cache"
	"oasis/shared/constant"
	gDto "oasis/shared/dto"
	"oasis/shared/failure"
)

const (
	cacheGetSettings = "settings:get"

	msgSettingsLoadError = "Settings could not be loaded"
)

type Settings interface {
	Get(ctx context.Context) (dto.SettingsResponse, error)
}

type serviceImpl struct {
	repo  repository.Settings
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Settings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Settings {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Get returns the single settings row. A missing row means the instance was
// never provisioned, which is as much an operational failure as an
// unreachable database.
func (s *serviceImpl) Get(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.cache.Get(ctx, cacheGetSettings, &res); err == nil {
		return res, nil
	}

	settings, err := s.repo.Get(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return res, failure.InternalFromString(msgSettingsLoadError) //nolint:wrapcheck
	}

	if settings.ID == 0 {
		return res, failure.InternalFromString(msgSettingsLoadError) //nolint:wrapcheck
	}

	res.FromModel(settings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetSettings, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save settings to cache")
		}
	}()

	return res, nil
}
