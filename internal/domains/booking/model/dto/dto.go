package dto

import (
	"fmt"
	"time"

	"oasis/internal/domains/booking/model"
	"oasis/shared/constant"
	gDto "oasis/shared/dto"
)

// ParseDate accepts either a full timestamp or a bare calendar day, both of
// which the reservation form produces depending on the field.
func ParseDate(value string) (time.Time, error) {
	if parsed, err := time.Parse(constant.DateFormat, value); err == nil {
		return parsed.UTC(), nil
	}

	parsed, err := time.Parse(constant.DayFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return parsed.UTC(), nil
}

type CreateBookingRequest struct {
	StartDate    string  `json:"startDate"    validate:"required"`
	EndDate      string  `json:"endDate"      validate:"required"`
	NumNights    int     `json:"numNights"    validate:"required,min=1"`
	NumGuests    int     `json:"numGuests"    validate:"required,min=1"`
	CabinPrice   float64 `json:"cabinPrice"   validate:"min=0"`
	ExtrasPrice  float64 `json:"extrasPrice"  validate:"min=0"`
	TotalPrice   float64 `json:"totalPrice"   validate:"min=0"`
	HasBreakfast bool    `json:"hasBreakfast"`
	Observations string  `json:"observations" validate:"max=1000"`
	CabinID      int64   `json:"cabinId"      validate:"required"`
}

// ToModel builds the booking as it will be stored. Status and payment are
// not caller-controlled: every new booking starts unconfirmed and unpaid.
func (r CreateBookingRequest) ToModel(guestID int64) (model.Booking, error) {
	startDate, err := ParseDate(r.StartDate)
	if err != nil {
		return model.Booking{}, err
	}

	endDate, err := ParseDate(r.EndDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		StartDate:    startDate,
		EndDate:      endDate,
		NumNights:    r.NumNights,
		NumGuests:    r.NumGuests,
		CabinPrice:   r.CabinPrice,
		ExtrasPrice:  r.ExtrasPrice,
		TotalPrice:   r.TotalPrice,
		Status:       constant.BookingStatusUnconfirmed,
		HasBreakfast: r.HasBreakfast,
		IsPaid:       false,
		Observations: r.Observations,
		CabinID:      r.CabinID,
		GuestID:      guestID,
	}, nil
}

// UpdateBookingRequest is a partial update. Nil fields are left untouched;
// provided fields are written even when they carry a zero value, so
// isPaid=false and extrasPrice=0 behave as expected.
type UpdateBookingRequest struct {
	StartDate    *string  `json:"startDate"`
	EndDate      *string  `json:"endDate"`
	NumNights    *int     `json:"numNights"    validate:"omitempty,min=1"`
	NumGuests    *int     `json:"numGuests"    validate:"omitempty,min=1"`
	CabinPrice   *float64 `json:"cabinPrice"   validate:"omitempty,min=0"`
	ExtrasPrice  *float64 `json:"extrasPrice"  validate:"omitempty,min=0"`
	TotalPrice   *float64 `json:"totalPrice"   validate:"omitempty,min=0"`
	Status       *string  `json:"status"       validate:"omitempty,oneof=unconfirmed checked-in checked-out"`
	HasBreakfast *bool    `json:"hasBreakfast"`
	IsPaid       *bool    `json:"isPaid"`
	Observations *string  `json:"observations" validate:"omitempty,max=1000"`
}

// ToFields converts the patch into the column map for the update statement,
// parsing date strings along the way.
func (r UpdateBookingRequest) ToFields() (map[string]any, error) {
	fields := map[string]any{}

	if r.StartDate != nil {
		startDate, err := ParseDate(*r.StartDate)
		if err != nil {
			return nil, err
		}

		fields[model.FieldStartDate] = startDate
	}

	if r.EndDate != nil {
		endDate, err := ParseDate(*r.EndDate)
		if err != nil {
			return nil, err
		}

		fields[model.FieldEndDate] = endDate
	}

	if r.NumNights != nil {
		fields[model.FieldNumNights] = *r.NumNights
	}

	if r.NumGuests != nil {
		fields[model.FieldNumGuests] = *r.NumGuests
	}

	if r.CabinPrice != nil {
		fields[model.FieldCabinPrice] = *r.CabinPrice
	}

	if r.ExtrasPrice != nil {
		fields[model.FieldExtrasPrice] = *r.ExtrasPrice
	}

	if r.TotalPrice != nil {
		fields[model.FieldTotalPrice] = *r.TotalPrice
	}

	if r.Status != nil {
		fields[model.FieldStatus] = *r.Status
	}

	if r.HasBreakfast != nil {
		fields[model.FieldHasBreakfast] = *r.HasBreakfast
	}

	if r.IsPaid != nil {
		fields[model.FieldIsPaid] = *r.IsPaid
	}

	if r.Observations != nil {
		fields[model.FieldObservations] = *r.Observations
	}

	return fields, nil
}

type BookingResponse struct {
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	NumNights    int     `json:"numNights"`
	NumGuests    int     `json:"numGuests"`
	CabinPrice   float64 `json:"cabinPrice"`
	ExtrasPrice  float64 `json:"extrasPrice"`
	TotalPrice   float64 `json:"totalPrice"`
	Status       string  `json:"status"`
	HasBreakfast bool    `json:"hasBreakfast"`
	IsPaid       bool    `json:"isPaid"`
	Observations string  `json:"observations"`
	CabinID      int64   `json:"cabinId"`
	GuestID      int64   `json:"guestId"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.StartDate = model.StartDate.Format(constant.DateFormat)
	r.EndDate = model.EndDate.Format(constant.DateFormat)
	r.NumNights = model.NumNights
	r.NumGuests = model.NumGuests
	r.CabinPrice = model.CabinPrice
	r.ExtrasPrice = model.ExtrasPrice
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.HasBreakfast = model.HasBreakfast
	r.IsPaid = model.IsPaid
	r.Observations = model.Observations
	r.CabinID = model.CabinID
	r.GuestID = model.GuestID
	r.Metadata.FromModel(model.Metadata)
}

type CabinSummary struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// BookingWithCabinResponse is the reservation-list shape: the booking row
// with the joined cabin nested under "cabins", matching the join alias the
// storefront expects.
type BookingWithCabinResponse struct {
	BookingResponse

	Cabins CabinSummary `json:"cabins"`
}

func (r *BookingWithCabinResponse) FromModel(model model.BookingWithCabin) {
	r.BookingResponse.FromModel(model.Booking)
	r.Cabins = CabinSummary{
		Name:  model.CabinName,
		Image: model.CabinImage,
	}
}
