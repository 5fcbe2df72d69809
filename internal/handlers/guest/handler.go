package guest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"oasis/infras/otel"
	"oasis/internal/domains/guest/model/dto"
	"oasis/internal/domains/guest/service"
	"oasis/shared/constant"
	"oasis/shared/validator"
	"oasis/transport/http/middleware"
	"oasis/transport/http/response"
)

type Handler struct {
	service    service.Guest
	middleware middleware.Auth
	otel       otel.Otel
}

func New(service service.Guest, middleware middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/guests", func(routerGroup chi.Router) {
		routerGroup.Group(func(authed chi.Router) {
			authed.Use(handler.middleware.Auth)
			authed.Get("/me", handler.GetProfile)
			authed.Patch("/me", handler.UpdateProfile)
		})
	})
}

// GetProfile returns the signed-in guest's profile.
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	guest, err := handler.service.Get(ctx, middleware.GuestID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guest profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guest)
}

// UpdateProfile patches the signed-in guest's profile. Only provided fields
// are written.
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	req := dto.UpdateGuestRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	guest, err := handler.service.Update(ctx, middleware.GuestID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update guest profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, guest)
}
