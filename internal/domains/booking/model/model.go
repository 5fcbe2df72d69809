package model

import (
	"time"

	gModel "oasis/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldStartDate    = "startDate"
	FieldEndDate      = "endDate"
	FieldNumNights    = "numNights"
	FieldNumGuests    = "numGuests"
	FieldCabinPrice   = "cabinPrice"
	FieldExtrasPrice  = "extrasPrice"
	FieldTotalPrice   = "totalPrice"
	FieldStatus       = "status"
	FieldHasBreakfast = "hasBreakfast"
	FieldIsPaid       = "isPaid"
	FieldObservations = "observations"
	FieldCabinID      = "cabinId"
	FieldGuestID      = "guestId"
)

type Booking struct {
	gModel.Metadata

	StartDate    time.Time `db:"startDate"`
	EndDate      time.Time `db:"endDate"`
	NumNights    int       `db:"numNights"`
	NumGuests    int       `db:"numGuests"`
	CabinPrice   float64   `db:"cabinPrice"`
	ExtrasPrice  float64   `db:"extrasPrice"`
	TotalPrice   float64   `db:"totalPrice"`
	Status       string    `db:"status"`
	HasBreakfast bool      `db:"hasBreakfast"`
	IsPaid       bool      `db:"isPaid"`
	Observations string    `db:"observations"`
	CabinID      int64     `db:"cabinId"`
	GuestID      int64     `db:"guestId"`
}

// Days expands the stay into its calendar days. Both the arrival and the
// departure date are occupied: a departure day cannot double as another
// booking's arrival day.
func (b Booking) Days() []time.Time {
	start := b.StartDate.UTC().Truncate(24 * time.Hour)
	end := b.EndDate.UTC().Truncate(24 * time.Hour)

	if end.Before(start) {
		return nil
	}

	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}

	return days
}

// BookingWithCabin is the list-page projection joining in the cabin the stay
// was booked for.
type BookingWithCabin struct {
	Booking

	CabinName  string `db:"cabin_name"  table:"cabins" column:"name"`
	CabinImage string `db:"cabin_image" table:"cabins" column:"image"`
}

func (b BookingWithCabin) GetJoinQuery() string {
	return `LEFT JOIN cabins ON cabins."id" = bookings."cabinId"`
}
