package dto

import (
	"oasis/internal/domains/cabin/model"
	gDto "oasis/shared/dto"
)

type CabinResponse struct {
	Name         string  `json:"name"`
	MaxCapacity  int     `json:"maxCapacity"`
	RegularPrice float64 `json:"regularPrice"`
	Discount     float64 `json:"discount"`
	Image        string  `json:"image"`
	gDto.Metadata
}

func (r *CabinResponse) FromModel(model model.Cabin) {
	r.Name = model.Name
	r.MaxCapacity = model.MaxCapacity
	r.RegularPrice = model.RegularPrice
	r.Discount = model.Discount
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

// CabinPriceResponse is the price projection used by the reservation form.
type CabinPriceResponse struct {
	RegularPrice float64 `json:"regularPrice"`
	Discount     float64 `json:"discount"`
}

func (r *CabinPriceResponse) FromModel(model model.Cabin) {
	r.RegularPrice = model.RegularPrice
	r.Discount = model.Discount
}
