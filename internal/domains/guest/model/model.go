package model

import (
	gModel "oasis/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID          = "id"
	FieldFullName    = "fullName"
	FieldEmail       = "email"
	FieldNationalID  = "nationalID"
	FieldNationality = "nationality"
	FieldCountryFlag = "countryFlag"
)

type Guest struct {
	gModel.Metadata

	FullName    string `db:"fullName"`
	Email       string `db:"email"`
	NationalID  string `db:"nationalID"`
	Nationality string `db:"nationality"`
	CountryFlag string `db:"countryFlag"`
}
