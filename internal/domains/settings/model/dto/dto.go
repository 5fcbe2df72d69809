package dto

import (
	"oasis/internal/domains/settings/model"
	gDto "oasis/shared/dto"
)

type SettingsResponse struct {
	MinBookingLength    int     `json:"minBookingLength"`
	MaxBookingLength    int     `json:"maxBookingLength"`
	MaxGuestsPerBooking int     `json:"maxGuestsPerBooking"`
	BreakfastPrice      float64 `json:"breakfastPrice"`
	gDto.Metadata
}

func (r *SettingsResponse) FromModel(model model.Settings) {
	r.MinBookingLength = model.MinBookingLength
	r.MaxBookingLength = model.MaxBookingLength
	r.MaxGuestsPerBooking = model.MaxGuestsPerBooking
	r.BreakfastPrice = model.BreakfastPrice
	r.Metadata.FromModel(model.Metadata)
}
