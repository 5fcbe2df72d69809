package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"oasis/config"
	"oasis/infras/kafka"
	"oasis/infras/otel"
	"oasis/infras/s3"
	"oasis/internal/domains/booking/model"
	"oasis/internal/domains/booking/model/dto"
	"oasis/internal/domains/booking/repository"
	"oasis/shared"
	"oasis/shared/cache"
	"oasis/shared/constant"
	gDto "oasis/shared/dto"
	"oasis/shared/failure"
	"oasis/shared/timezone"
)

const (
	cachePrefixBooking = "booking"
	cacheGetBooking    = "booking:get"
	cacheGuestBookings = "booking:guest"
	cacheBookedDates   = "booking:booked-dates"

	msgBookingLoadError   = "Booking could not get loaded"
	msgBookingsLoadError  = "Bookings could not get loaded"
	msgBookingCreateError = "Booking could not be created"
	msgBookingUpdateError = "Booking could not be updated"
	msgBookingDeleteError = "Booking could not be deleted"

	msgBookingViewDenied   = "You are not allowed to view this booking"
	msgBookingUpdateDenied = "You are not allowed to update this booking"
	msgBookingDeleteDenied = "You are not allowed to delete this booking"
)

const (
	eventBookingCreated = "booking.created"
	eventBookingUpdated = "booking.updated"
	eventBookingDeleted = "booking.deleted"
)

// bookingEvent is the payload published to the back-office topic on every
// booking mutation.
type bookingEvent struct {
	Event     string `json:"event"`
	BookingID int64  `json:"bookingId"`
	GuestID   int64  `json:"guestId"`
	CabinID   int64  `json:"cabinId"`
	Status    string `json:"status"`
	At        string `json:"at"`
}

type Booking interface {
	Get(ctx context.Context, id, guestID int64) (dto.BookingResponse, error)
	GetByGuest(ctx context.Context, guestID int64) ([]dto.BookingWithCabinResponse, error)
	BookedDates(ctx context.Context, cabinID int64) ([]string, error)
	Create(ctx context.Context, guestID int64, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Update(ctx context.Context, id, guestID int64, req dto.UpdateBookingRequest) (dto.BookingResponse, error)
	Delete(ctx context.Context, id, guestID int64) error
}

type serviceImpl struct {
	repo      repository.Booking
	cfg       *config.Config
	cache     cache.RedisCache
	images    s3.ImageStore
	publisher kafka.Publisher
	otel      otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, images s3.ImageStore, publisher kafka.Publisher, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		images:    images,
		publisher: publisher,
		otel:      otel,
	}
}

// Get returns a single booking, restricted to its owner.
func (s *serviceImpl) Get(ctx context.Context, id, guestID int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getOwned(ctx, id, guestID, msgBookingViewDenied)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// GetByGuest returns the guest's reservations with their cabins joined in,
// earliest arrival first.
func (s *serviceImpl) GetByGuest(ctx context.Context, guestID int64) (res []dto.BookingWithCabinResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByGuest")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGuestBookings, strconv.FormatInt(guestID, 10))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	bookings, err := s.repo.GetAllWithCabin(
		ctx,
		gDto.OrderedByQualified(model.TableName, model.FieldStartDate),
		shared.FilterByValue(guestID, model.FieldGuestID, model.TableName),
	)
	if err != nil {
		log.Error().Err(err).Int64("guestId", guestID).Msg("failed to get guest bookings")

		return res, failure.InternalFromString(msgBookingsLoadError) //nolint:wrapcheck
	}

	res = make([]dto.BookingWithCabinResponse, len(bookings))
	for i, booking := range bookings {
		booking.CabinImage = s.resolveImage(ctx, booking.CabinImage)
		res[i].FromModel(booking)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest bookings to cache")
		}
	}()

	return res, nil
}

// BookedDates derives the set of days the cabin cannot be booked on: every
// day of every stay that either starts today or later, or is currently
// checked in. Past checked-out stays never block the calendar.
func (s *serviceImpl) BookedDates(ctx context.Context, cabinID int64) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookedDates")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheBookedDates, strconv.FormatInt(cabinID, 10))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCabinID,
				Value:    cabinID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						Field:    model.FieldStartDate,
						Value:    timezone.TodayUTC(),
						Operator: gDto.FilterOperatorGreaterEq,
						Table:    model.TableName,
					},
					gDto.Filter{
						Field:    model.FieldStatus,
						Value:    constant.BookingStatusCheckedIn,
						Operator: gDto.FilterOperatorEq,
						Table:    model.TableName,
					},
				},
			},
		},
	}

	bookings, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Int64("cabinId", cabinID).Msg("failed to get booked dates")

		return res, failure.InternalFromString(msgBookingsLoadError) //nolint:wrapcheck
	}

	res = []string{}
	for _, booking := range bookings {
		for _, day := range booking.Days() {
			res = append(res, day.Format(constant.DayFormat))
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booked dates to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, guestID int64, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel(guestID)
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	created, err := s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Int64("cabinId", req.CabinID).Msg("failed to create booking")

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeFkViolation {
			return res, failure.BadRequestFromString(msgBookingCreateError) //nolint:wrapcheck
		}

		return res, failure.InternalFromString(msgBookingCreateError) //nolint:wrapcheck
	}

	res.FromModel(created)
	s.afterMutation(ctx, eventBookingCreated, created)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id, guestID int64, req dto.UpdateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getOwned(ctx, id, guestID, msgBookingUpdateDenied); err != nil {
		return res, err
	}

	fields, err := req.ToFields()
	if err != nil {
		return res, failure.BadRequest(err) //nolint:wrapcheck
	}

	if len(fields) == 0 {
		return res, failure.BadRequestFromString(msgBookingUpdateError) //nolint:wrapcheck
	}

	updated, err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update booking")

		return res, failure.InternalFromString(msgBookingUpdateError) //nolint:wrapcheck
	}

	if updated.ID == 0 {
		return res, failure.NotFound(msgBookingUpdateError) //nolint:wrapcheck
	}

	res.FromModel(updated)
	s.afterMutation(ctx, eventBookingUpdated, updated)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id, guestID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getOwned(ctx, id, guestID, msgBookingDeleteDenied)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete booking")

		return failure.InternalFromString(msgBookingDeleteError) //nolint:wrapcheck
	}

	s.afterMutation(ctx, eventBookingDeleted, booking)

	return nil
}

// getOwned loads the booking and enforces that it belongs to the guest.
func (s *serviceImpl) getOwned(ctx context.Context, id, guestID int64, deniedMsg string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get booking")

		return booking, failure.InternalFromString(msgBookingLoadError) //nolint:wrapcheck
	}

	if booking.ID == 0 {
		return booking, failure.NotFound(msgBookingLoadError) //nolint:wrapcheck
	}

	if booking.GuestID != guestID {
		return booking, failure.Unauthorized(deniedMsg) //nolint:wrapcheck
	}

	return booking, nil
}

// afterMutation invalidates every booking read model and emits the domain
// event, both off the request path.
func (s *serviceImpl) afterMutation(ctx context.Context, event string, booking model.Booking) {
	c := context.WithoutCancel(ctx)

	go shared.InvalidateCaches(c, s.cache, cachePrefixBooking)

	go func() {
		message := kafka.Message{
			Key: strconv.FormatInt(booking.ID, 10),
			Value: bookingEvent{
				Event:     event,
				BookingID: booking.ID,
				GuestID:   booking.GuestID,
				CabinID:   booking.CabinID,
				Status:    booking.Status,
				At:        timezone.Now().Format(constant.DateFormat),
			},
		}

		if err := s.publisher.Publish(c, s.cfg.Kafka.BookingTopic, message); err != nil {
			log.Error().Err(err).Str("event", event).Int64("bookingId", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

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
