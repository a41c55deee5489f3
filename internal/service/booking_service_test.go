package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/haidrrry/travellingapp/internal/errors"
	"github.com/haidrrry/travellingapp/internal/model"
)

func validCard() *model.DummyCardInfo {
	return &model.DummyCardInfo{CardNumber: "4111111111111111", Expiry: "09/27", CVV: "123"}
}

func TestBookingService_CreateBooking(t *testing.T) {
	userID := uuid.New()
	destinationID := uuid.New()
	tripDate := time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC)

	destination := &model.Destination{
		ID:       destinationID,
		Name:     "Machu Picchu",
		Location: "Cusco, Peru",
		Price:    decimal.NewFromInt(500),
	}

	tests := []struct {
		name          string
		input         BookingInput
		setupMock     func(*MockBookingRepository, *MockDestinationRepository)
		expectedError error
		expectedTotal string
		expectedMsg   string
	}{
		{
			name: "successful booking computes price from destination",
			input: BookingInput{
				DestinationID: destinationID,
				TripDate:      tripDate,
				NumTravelers:  3,
				DummyCardInfo: validCard(),
			},
			setupMock: func(mBooking *MockBookingRepository, mDest *MockDestinationRepository) {
				mDest.On("FindByID", mock.Anything, destinationID).Return(destination, nil)
				mBooking.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)
			},
			expectedTotal: "1500",
			expectedMsg:   "Trip to Machu Picchu booked for 3 traveler(s). Total: $1500",
		},
		{
			name: "single traveler",
			input: BookingInput{
				DestinationID: destinationID,
				TripDate:      tripDate,
				NumTravelers:  1,
				DummyCardInfo: validCard(),
			},
			setupMock: func(mBooking *MockBookingRepository, mDest *MockDestinationRepository) {
				mDest.On("FindByID", mock.Anything, destinationID).Return(destination, nil)
				mBooking.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)
			},
			expectedTotal: "500",
			expectedMsg:   "Trip to Machu Picchu booked for 1 traveler(s). Total: $500",
		},
		{
			name: "invalid card fails before any lookup",
			input: BookingInput{
				DestinationID: destinationID,
				TripDate:      tripDate,
				NumTravelers:  2,
				DummyCardInfo: &model.DummyCardInfo{CardNumber: "4111111111111111", Expiry: "13/27", CVV: "123"},
			},
			setupMock:     func(mBooking *MockBookingRepository, mDest *MockDestinationRepository) {},
			expectedError: errors.ErrInvalidCardExpiry,
		},
		{
			name: "unknown destination creates no booking",
			input: BookingInput{
				DestinationID: destinationID,
				TripDate:      tripDate,
				NumTravelers:  2,
				DummyCardInfo: validCard(),
			},
			setupMock: func(mBooking *MockBookingRepository, mDest *MockDestinationRepository) {
				mDest.On("FindByID", mock.Anything, destinationID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrDestinationNotFound,
		},
		{
			name: "zero travelers rejected",
			input: BookingInput{
				DestinationID: destinationID,
				TripDate:      tripDate,
				NumTravelers:  0,
				DummyCardInfo: validCard(),
			},
			setupMock:     func(mBooking *MockBookingRepository, mDest *MockDestinationRepository) {},
			expectedError: errors.ErrInvalidTravelerCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBookingRepo := new(MockBookingRepository)
			mockDestRepo := new(MockDestinationRepository)
			tt.setupMock(mockBookingRepo, mockDestRepo)

			service := NewBookingService(mockBookingRepo, mockDestRepo)
			booking, message, err := service.CreateBooking(context.Background(), userID, tt.input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, booking)
				// failure paths never reach the booking store
				mockBookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, booking)
				assert.Equal(t, tt.expectedTotal, booking.TotalPrice.String())
				assert.Equal(t, tt.expectedMsg, message)
				assert.Equal(t, model.PaymentStatusPaid, booking.PaymentStatus)
				assert.Equal(t, userID, booking.UserID)
				assert.Equal(t, "****1111", booking.DummyCardInfo.CardNumber)
				assert.Equal(t, destination, booking.Destination)
			}

			mockBookingRepo.AssertExpectations(t)
			mockDestRepo.AssertExpectations(t)
		})
	}
}

func TestBookingService_TotalPriceIsExact(t *testing.T) {
	// decimal math keeps fractional prices exact
	userID := uuid.New()
	destinationID := uuid.New()
	destination := &model.Destination{
		ID:    destinationID,
		Name:  "Santorini",
		Price: decimal.RequireFromString("430.50"),
	}

	mockBookingRepo := new(MockBookingRepository)
	mockDestRepo := new(MockDestinationRepository)
	mockDestRepo.On("FindByID", mock.Anything, destinationID).Return(destination, nil)
	mockBookingRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).Return(nil)

	service := NewBookingService(mockBookingRepo, mockDestRepo)
	booking, _, err := service.CreateBooking(context.Background(), userID, BookingInput{
		DestinationID: destinationID,
		TripDate:      time.Now().AddDate(0, 1, 0),
		NumTravelers:  4,
		DummyCardInfo: validCard(),
	})

	assert.NoError(t, err)
	assert.Equal(t, "1722", booking.TotalPrice.String())
}

func TestBookingService_ListUserBookings(t *testing.T) {
	userID := uuid.New()
	bookings := []model.Booking{
		{ID: uuid.New(), UserID: userID},
		{ID: uuid.New(), UserID: userID},
	}

	mockBookingRepo := new(MockBookingRepository)
	mockDestRepo := new(MockDestinationRepository)
	mockBookingRepo.On("FindByUser", mock.Anything, userID).Return(bookings, nil)

	service := NewBookingService(mockBookingRepo, mockDestRepo)
	got, err := service.ListUserBookings(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	mockBookingRepo.AssertExpectations(t)
}
