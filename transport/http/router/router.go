package router

import (
	"oasis/internal/handlers/auth"
	"oasis/internal/handlers/booking"
	"oasis/internal/handlers/cabin"
	"oasis/internal/handlers/country"
	"oasis/internal/handlers/guest"
	"oasis/internal/handlers/settings"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Cabin    cabin.Handler
	Guest    guest.Handler
	Booking  booking.Handler
	Settings settings.Handler
	Country  country.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Cabin.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
		r.DomainHandlers.Country.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
