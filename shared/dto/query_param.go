package dto

import (
	"fmt"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams carries ordering and windowing for list queries. Every list
// operation of this service imposes its own fixed ordering (cabins by name,
// bookings by start date), so the params are built by the services rather
// than parsed from the request.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// OrderedBy returns params sorting ascending on the given column.
func OrderedBy(column string) QueryParams {
	return QueryParams{
		SortBy:  QuoteIdent(column),
		SortDir: SortDirAsc,
	}
}

// OrderedByQualified returns params sorting ascending on table.column.
func OrderedByQualified(table, column string) QueryParams {
	return QueryParams{
		SortBy:  fmt.Sprintf("%s.%s", table, QuoteIdent(column)),
		SortDir: SortDirAsc,
	}
}
