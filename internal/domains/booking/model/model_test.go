package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"oasis/internal/domains/booking/model"
)

func TestBooking_Days(t *testing.T) {
	day := func(value string) time.Time {
		parsed, err := time.Parse("2006-01-02", value)
		assert.NoError(t, err)

		return parsed
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		wantDays []time.Time
	}{
		{
			name:  "three day stay includes both endpoints",
			start: day("2024-03-10"),
			end:   day("2024-03-12"),
			wantDays: []time.Time{
				day("2024-03-10"),
				day("2024-03-11"),
				day("2024-03-12"),
			},
		},
		{
			name:     "single day stay",
			start:    day("2024-03-10"),
			end:      day("2024-03-10"),
			wantDays: []time.Time{day("2024-03-10")},
		},
		{
			name:  "month boundary",
			start: day("2024-02-28"),
			end:   day("2024-03-01"),
			wantDays: []time.Time{
				day("2024-02-28"),
				day("2024-02-29"),
				day("2024-03-01"),
			},
		},
		{
			name:     "inverted range yields nothing",
			start:    day("2024-03-12"),
			end:      day("2024-03-10"),
			wantDays: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := model.Booking{StartDate: tt.start, EndDate: tt.end}

			assert.Equal(t, tt.wantDays, booking.Days())
		})
	}
}

func TestBooking_DaysTruncatesTimestamps(t *testing.T) {
	booking := model.Booking{
		StartDate: time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC),
	}

	days := booking.Days()

	assert.Len(t, days, 2)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), days[1])
}
