//go:build wireinject
// +build wireinject

package di

import (
	"oasis/config"
	"oasis/infras/jwt"
	"oasis/infras/kafka"
	"oasis/infras/otel"
	"oasis/infras/postgres"
	"oasis/infras/redis"
	"oasis/infras/s3"
	"oasis/shared/cache"
	"oasis/transport/http"
	"oasis/transport/http/middleware"
	"oasis/transport/http/router"

	"github.com/google/wire"

	authService "oasis/internal/domains/auth/service"
	bookingRepository "oasis/internal/domains/booking/repository"
	bookingService "oasis/internal/domains/booking/service"
	cabinRepository "oasis/internal/domains/cabin/repository"
	cabinService "oasis/internal/domains/cabin/service"
	countryClient "oasis/internal/domains/country/client"
	countryService "oasis/internal/domains/country/service"
	guestRepository "oasis/internal/domains/guest/repository"
	guestService "oasis/internal/domains/guest/service"
	settingsRepository "oasis/internal/domains/settings/repository"
	settingsService "oasis/internal/domains/settings/service"

	authHandler "oasis/internal/handlers/auth"
	bookingHandler "oasis/internal/handlers/booking"
	cabinHandler "oasis/internal/handlers/cabin"
	countryHandler "oasis/internal/handlers/country"
	guestHandler "oasis/internal/handlers/guest"
	settingsHandler "oasis/internal/handlers/settings"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var cabinDomain = wire.NewSet(
	cabinRepository.New,
	cabinService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
)

var countryDomain = wire.NewSet(
	countryClient.New,
	countryService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	cabinDomain,
	guestDomain,
	bookingDomain,
	settingsDomain,
	countryDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	cabinHandler.New,
	guestHandler.New,
	bookingHandler.New,
	settingsHandler.New,
	countryHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
