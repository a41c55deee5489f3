package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/haidrrry/travellingapp/internal/errors"
	"github.com/haidrrry/travellingapp/internal/model"
)

func TestTripService_Create(t *testing.T) {
	userID := uuid.New()
	destinationID := uuid.New()
	start := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	destination := &model.Destination{ID: destinationID, Name: "Reykjavik"}

	tests := []struct {
		name            string
		input           TripInput
		setupMock       func(*MockTripRepository, *MockDestinationRepository)
		expectedError   error
		expectedEndDate time.Time
		expectedNotes   string
	}{
		{
			name: "weekend trip gets a fixed end date",
			input: TripInput{
				UserID:        userID,
				DestinationID: destinationID,
				StartDate:     start,
				EndDate:       start.AddDate(0, 0, 14),
				TripType:      "weekend",
			},
			setupMock: func(mTrip *MockTripRepository, mDest *MockDestinationRepository) {
				mDest.On("FindByID", mock.Anything, destinationID).Return(destination, nil)
				mTrip.On("Create", mock.Anything, mock.AnythingOfType("*model.Trip")).
					Run(func(args mock.Arguments) {
						trip := args.Get(1).(*model.Trip)
						trip.ID = uuid.New()
						mTrip.On("FindByID", mock.Anything, trip.ID).Return(trip, nil)
					}).Return(nil)
			},
			expectedEndDate: start.AddDate(0, 0, 2),
			expectedNotes:   "Weekend getaway",
		},
		{
			name: "business trip keeps the supplied dates",
			input: TripInput{
				UserID:        userID,
				DestinationID: destinationID,
				StartDate:     start,
				EndDate:       start.AddDate(0, 0, 4),
				TripType:      "business",
			},
			setupMock: func(mTrip *MockTripRepository, mDest *MockDestinationRepository) {
				mDest.On("FindByID", mock.Anything, destinationID).Return(destination, nil)
				mTrip.On("Create", mock.Anything, mock.AnythingOfType("*model.Trip")).
					Run(func(args mock.Arguments) {
						trip := args.Get(1).(*model.Trip)
						trip.ID = uuid.New()
						mTrip.On("FindByID", mock.Anything, trip.ID).Return(trip, nil)
					}).Return(nil)
			},
			expectedEndDate: start.AddDate(0, 0, 4),
			expectedNotes:   "Business trip",
		},
		{
			name: "unknown destination rejected",
			input: TripInput{
				UserID:        userID,
				DestinationID: destinationID,
				StartDate:     start,
				EndDate:       start.AddDate(0, 0, 4),
				TripType:      "vacation",
			},
			setupMock: func(mTrip *MockTripRepository, mDest *MockDestinationRepository) {
				mDest.On("FindByID", mock.Anything, destinationID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrDestinationNotFound,
		},
		{
			name: "invalid date range surfaces unchanged",
			input: TripInput{
				UserID:        userID,
				DestinationID: destinationID,
				StartDate:     start,
				EndDate:       start.AddDate(0, 0, -3),
				TripType:      "vacation",
			},
			setupMock: func(mTrip *MockTripRepository, mDest *MockDestinationRepository) {
				mDest.On("FindByID", mock.Anything, destinationID).Return(destination, nil)
				mTrip.On("Create", mock.Anything, mock.AnythingOfType("*model.Trip")).
					Return(errors.ErrInvalidDateRange)
			},
			expectedError: errors.ErrInvalidDateRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTripRepo := new(MockTripRepository)
			mockDestRepo := new(MockDestinationRepository)
			tt.setupMock(mockTripRepo, mockDestRepo)

			service := NewTripService(mockTripRepo, mockDestRepo)
			trip, err := service.Create(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, trip)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedEndDate, trip.EndDate)
				assert.Equal(t, tt.expectedNotes, trip.Notes)
				assert.Equal(t, userID, trip.UserID)
			}

			mockDestRepo.AssertExpectations(t)
		})
	}
}

func TestTripService_Update(t *testing.T) {
	tripID := uuid.New()
	start := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	existing := &model.Trip{
		ID:        tripID,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 2),
		TripType:  "weekend",
		Notes:     "Weekend getaway",
	}

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		mockTripRepo := new(MockTripRepository)
		mockDestRepo := new(MockDestinationRepository)
		mockTripRepo.On("FindByID", mock.Anything, tripID).Return(existing, nil)
		mockTripRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Trip")).Return(nil)

		service := NewTripService(mockTripRepo, mockDestRepo)
		trip, err := service.Update(context.Background(), tripID, TripInput{Notes: "Pack hiking boots"})

		assert.NoError(t, err)
		assert.Equal(t, "Pack hiking boots", trip.Notes)
		assert.Equal(t, start, trip.StartDate)
		assert.Equal(t, "weekend", trip.TripType)
		mockTripRepo.AssertExpectations(t)
	})

	t.Run("missing trip", func(t *testing.T) {
		mockTripRepo := new(MockTripRepository)
		mockDestRepo := new(MockDestinationRepository)
		mockTripRepo.On("FindByID", mock.Anything, tripID).Return(nil, gorm.ErrRecordNotFound)

		service := NewTripService(mockTripRepo, mockDestRepo)
		trip, err := service.Update(context.Background(), tripID, TripInput{Notes: "anything"})

		assert.Equal(t, errors.ErrTripNotFound, err)
		assert.Nil(t, trip)
		mockTripRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
