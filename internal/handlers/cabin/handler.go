package cabin

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"oasis/infras/otel"
	bookingService "oasis/internal/domains/booking/service"
	"oasis/internal/domains/cabin/service"
	"oasis/shared/constant"
	"oasis/shared/failure"
	"oasis/transport/http/response"
)

type Handler struct {
	service  service.Cabin
	bookings bookingService.Booking
	otel     otel.Otel
}

func New(service service.Cabin, bookings bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		bookings: bookings,
		otel:     otel,
	}
}

// Router wires the cabin routes. All of them are public: the storefront
// renders cabins and availability before the guest signs in.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/cabins", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCabins)
		routerGroup.Get("/{id}", handler.GetCabinByID)
		routerGroup.Get("/{id}/price", handler.GetCabinPrice)
		routerGroup.Get("/{id}/booked-dates", handler.GetBookedDates)
	})
}

// GetCabins retrieves all cabins ordered by name.
// @Summary Get all cabins
// @Description Retrieve every cabin, ordered by name.
// @Tags Cabin
// @Produce json
// @Success 200 {array} dto.CabinResponse "List of cabins"
// @Failure 500 {object} response.Error
// @Router /v1/cabins [get]
func (handler *Handler) GetCabins(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCabins")
	defer scope.End()

	cabins, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cabins")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cabins)
}

// GetCabinByID retrieves a cabin by its ID.
// @Summary Get a cabin by ID
// @Tags Cabin
// @Produce json
// @Param id path int true "Cabin ID"
// @Success 200 {object} dto.CabinResponse "Cabin details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cabins/{id} [get]
func (handler *Handler) GetCabinByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCabinByID")
	defer scope.End()

	id, err := parseIDParam(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	cabin, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cabin by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, cabin)
}

// GetCabinPrice retrieves the price projection for a cabin. A cabin that
// does not exist yields an empty payload rather than an error: the
// reservation form treats the absence as "no price to show".
// @Summary Get a cabin's price
// @Tags Cabin
// @Produce json
// @Param id path int true "Cabin ID"
// @Success 200 {object} dto.CabinPriceResponse "Regular price and discount"
// @Failure 500 {object} response.Error
// @Router /v1/cabins/{id}/price [get]
func (handler *Handler) GetCabinPrice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCabinPrice")
	defer scope.End()

	id, err := parseIDParam(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	price, err := handler.service.GetPrice(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cabin price")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, price)
}

// GetBookedDates retrieves the days a cabin cannot be booked on.
// @Summary Get a cabin's booked dates
// @Description Every occupied day of upcoming and currently checked-in stays.
// @Tags Cabin
// @Produce json
// @Param id path int true "Cabin ID"
// @Success 200 {array} string "Blocked days, YYYY-MM-DD"
// @Failure 500 {object} response.Error
// @Router /v1/cabins/{id}/booked-dates [get]
func (handler *Handler) GetBookedDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookedDates")
	defer scope.End()

	id, err := parseIDParam(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	dates, err := handler.bookings.BookedDates(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booked dates")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dates)
}

func parseIDParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil {
		return 0, failure.BadRequestFromString("Invalid id") //nolint:wrapcheck
	}

	return id, nil
}
