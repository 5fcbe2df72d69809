package dto

import (
	"oasis/internal/domains/guest/model"
	gDto "oasis/shared/dto"
)

type CreateGuestRequest struct {
	FullName    string `json:"fullName"    validate:"required"`
	Email       string `json:"email"       validate:"required,email"`
	NationalID  string `json:"nationalID"  validate:"omitempty,alphanum,min=6,max=12"`
	Nationality string `json:"nationality"`
	CountryFlag string `json:"countryFlag" validate:"omitempty,url"`
}

func (r CreateGuestRequest) ToModel() model.Guest {
	return model.Guest{
		FullName:    r.FullName,
		Email:       r.Email,
		NationalID:  r.NationalID,
		Nationality: r.Nationality,
		CountryFlag: r.CountryFlag,
	}
}

// UpdateGuestRequest is a partial update: nil fields are left untouched,
// provided fields are written as-is, empty strings included.
type UpdateGuestRequest struct {
	FullName    *string `db:"fullName"    json:"fullName"    validate:"omitempty,min=1"`
	Email       *string `db:"email"       json:"email"       validate:"omitempty,email"`
	NationalID  *string `db:"nationalID"  json:"nationalID"  validate:"omitempty,alphanum,min=6,max=12"`
	Nationality *string `db:"nationality" json:"nationality"`
	CountryFlag *string `db:"countryFlag" json:"countryFlag" validate:"omitempty,url"`
}

type GuestResponse struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	NationalID  string `json:"nationalID"`
	Nationality string `json:"nationality"`
	CountryFlag string `json:"countryFlag"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.FullName = model.FullName
	r.Email = model.Email
	r.NationalID = model.NationalID
	r.Nationality = model.Nationality
	r.CountryFlag = model.CountryFlag
	r.Metadata.FromModel(model.Metadata)
}
