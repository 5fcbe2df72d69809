package country

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"oasis/infras/otel"
	"oasis/internal/domains/country/service"
	"oasis/shared/constant"
	"oasis/transport/http/response"
)

type Handler struct {
	service service.Country
	otel    otel.Otel
}

func New(service service.Country, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/countries", handler.GetCountries)
}

// GetCountries proxies the external countries API for the profile form.
func (handler *Handler) GetCountries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCountries")
	defer scope.End()

	countries, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get countries")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, countries)
}
