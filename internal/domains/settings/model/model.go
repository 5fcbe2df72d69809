package model

import (
	gModel "oasis/shared/model"
)

const (
	TableName  = "settings"
	EntityName = "settings"

	FieldID                  = "id"
	FieldMinBookingLength    = "minBookingLength"
	FieldMaxBookingLength    = "maxBookingLength"
	FieldMaxGuestsPerBooking = "maxGuestsPerBooking"
	FieldBreakfastPrice      = "breakfastPrice"
)

// Settings is a single-row table maintained by the back-office application.
type Settings struct {
	gModel.Metadata

	MinBookingLength    int     `db:"minBookingLength"`
	MaxBookingLength    int     `db:"maxBookingLength"`
	MaxGuestsPerBooking int     `db:"maxGuestsPerBooking"`
	BreakfastPrice      float64 `db:"breakfastPrice"`
}
