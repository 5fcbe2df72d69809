package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"oasis/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name       string
		filter     dto.Filter
		wantClause string
		wantArgs   map[string]any
	}{
		{
			name: "eq with table prefix quotes camelCase column",
			filter: dto.Filter{
				Field:    "cabinId",
				Value:    int64(7),
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			wantClause: `bookings."cabinId" = :cabinId`,
			wantArgs:   map[string]any{"cabinId": int64(7)},
		},
		{
			name: "greater_eq",
			filter: dto.Filter{
				ArgName:  "today",
				Field:    "startDate",
				Value:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
				Operator: dto.FilterOperatorGreaterEq,
				Table:    "bookings",
			},
			wantClause: `bookings."startDate" >= :today`,
			wantArgs:   map[string]any{"today": time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		},
		{
			name: "eq without table",
			filter: dto.Filter{
				Field:    "email",
				Value:    "guest@example.com",
				Operator: dto.FilterOperatorEq,
			},
			wantClause: `"email" = :email`,
			wantArgs:   map[string]any{"email": "guest@example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantClause, clause)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause_Nested(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{
				Field:    "cabinId",
				Value:    int64(7),
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{
						ArgName:  "today",
						Field:    "startDate",
						Value:    "2024-03-01",
						Operator: dto.FilterOperatorGreaterEq,
						Table:    "bookings",
					},
					dto.Filter{
						Field:    "status",
						Value:    "checked-in",
						Operator: dto.FilterOperatorEq,
						Table:    "bookings",
					},
				},
			},
		},
	}

	clause, args := group.GetWhereClause()

	assert.Equal(t, `(bookings."cabinId" = :cabinId AND (bookings."startDate" >= :today OR bookings."status" = :status))`, clause)
	assert.Len(t, args, 3)
}

func TestFilterGroup_GetWhereClause_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	clause, args := group.GetWhereClause()

	assert.Empty(t, clause)
	assert.Empty(t, args)
}
