package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oasis/shared"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "cabin:get:7", shared.BuildCacheKey("cabin", "get", "7"))
	assert.Equal(t, "settings", shared.BuildCacheKey("settings"))
}

func TestPatchFields(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	boolPtr := func(b bool) *bool { return &b }
	intPtr := func(i int) *int { return &i }

	type patch struct {
		Email        string  `db:"email"`
		FullName     *string `db:"fullName"`
		NationalID   *string `db:"nationalID"`
		IsPaid       *bool   `db:"isPaid"`
		NumGuests    *int    `db:"numGuests"`
		Observations *string `db:"observations"`
		ignored      string
	}

	tests := []struct {
		name     string
		input    patch
		expected map[string]any
	}{
		{
			name:     "empty patch yields no fields",
			input:    patch{},
			expected: map[string]any{},
		},
		{
			name: "only provided pointers are included",
			input: patch{
				FullName:   strPtr("Jonas Schmedtmann"),
				NationalID: strPtr("1234567890"),
			},
			expected: map[string]any{
				"fullName":   "Jonas Schmedtmann",
				"nationalID": "1234567890",
			},
		},
		{
			name: "explicit zero values survive",
			input: patch{
				IsPaid:       boolPtr(false),
				NumGuests:    intPtr(0),
				Observations: strPtr(""),
			},
			expected: map[string]any{
				"isPaid":       false,
				"numGuests":    0,
				"observations": "",
			},
		},
		{
			name: "non-pointer zero value is skipped",
			input: patch{
				Email: "",
			},
			expected: map[string]any{},
		},
		{
			name: "non-pointer value is included",
			input: patch{
				Email: "jonas@example.com",
			},
			expected: map[string]any{
				"email": "jonas@example.com",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.PatchFields(tt.input))
		})
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(42, "id", "bookings")

	clause, args := filter.GetWhereClause()

	assert.Equal(t, `(bookings."id" = :id)`, clause)
	assert.Equal(t, map[string]any{"id": int64(42)}, args)
}

func TestFilterByValue(t *testing.T) {
	filter := shared.FilterByValue("guest@example.com", "email", "guests")

	clause, args := filter.GetWhereClause()

	assert.Equal(t, `(guests."email" = :email)`, clause)
	assert.Equal(t, map[string]any{"email": "guest@example.com"}, args)
}
