package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/haidrrry/travellingapp/internal/errors"
)

func TestTrip_BeforeSave(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		endDate       time.Time
		expectedError error
	}{
		{
			name:    "end after start passes",
			endDate: start.AddDate(0, 0, 5),
		},
		{
			name:          "end equal to start rejected",
			endDate:       start,
			expectedError: errors.ErrInvalidDateRange,
		},
		{
			name:          "end before start rejected",
			endDate:       start.AddDate(0, 0, -1),
			expectedError: errors.ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := &Trip{StartDate: start, EndDate: tt.endDate}
			err := trip.BeforeSave(nil)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, trip.DurationDays(), trip.Duration)
			}
		})
	}
}

func TestTrip_DurationDays(t *testing.T) {
	start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		endDate  time.Time
		expected int
	}{
		{"whole days", start.AddDate(0, 0, 3), 3},
		{"partial day rounds up", start.Add(36 * time.Hour), 2},
		{"single night", start.AddDate(0, 0, 1), 1},
		{"thirty days", start.AddDate(0, 0, 30), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := &Trip{StartDate: start, EndDate: tt.endDate}
			assert.Equal(t, tt.expected, trip.DurationDays())
		})
	}
}
