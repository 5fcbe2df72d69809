package model

import (
	gModel "oasis/shared/model"
)

const (
	TableName  = "cabins"
	EntityName = "cabin"

	FieldID           = "id"
	FieldName         = "name"
	FieldMaxCapacity  = "maxCapacity"
	FieldRegularPrice = "regularPrice"
	FieldDiscount     = "discount"
	FieldImage        = "image"
)

// Cabin is reference data maintained by the back-office application; this
// service only reads it.
type Cabin struct {
	gModel.Metadata

	Name         string  `db:"name"`
	MaxCapacity  int     `db:"maxCapacity"`
	RegularPrice float64 `db:"regularPrice"`
	Discount     float64 `db:"discount"`
	Image        string  `db:"image"`
}
