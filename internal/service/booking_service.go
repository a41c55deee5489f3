package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/haidrrry/travellingapp/internal/errors"
	"github.com/haidrrry/travellingapp/internal/model"
	"github.com/haidrrry/travellingapp/internal/repository"
)

// BookingInput carries the client-supplied booking fields. Any price the
// client sends is ignored; the total is always computed from the destination.
type BookingInput struct {
	DestinationID uuid.UUID
	TripDate      time.Time
	NumTravelers  int
	DummyCardInfo *model.DummyCardInfo
}

// BookingService executes the create-booking workflow: card validation,
// destination resolution, server-side pricing, and persistence. Payment is
// simulated; every successful booking is persisted as Paid. Resubmitting the
// same request creates a duplicate booking: there is no idempotency key.
type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, in BookingInput) (*model.Booking, string, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]model.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	destRepo    repository.DestinationRepository
	validator   *CardValidator
}

// NewBookingService creates a new booking service.
func NewBookingService(bookingRepo repository.BookingRepository, destRepo repository.DestinationRepository) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		destRepo:    destRepo,
		validator:   NewCardValidator(),
	}
}

// CreateBooking validates the dummy card, resolves the destination, computes
// the total price, and persists the booking as Paid. Returns the booking with
// the destination populated and the user-facing confirmation message.
func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, in BookingInput) (*model.Booking, string, error) {
	if err := s.validator.ValidateCard(in.DummyCardInfo); err != nil {
		return nil, "", err
	}
	if in.NumTravelers < 1 {
		return nil, "", errors.ErrInvalidTravelerCount
	}

	destination, err := s.destRepo.FindByID(ctx, in.DestinationID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", errors.ErrDestinationNotFound
		}
		return nil, "", fmt.Errorf("resolve destination: %w", err)
	}

	totalPrice := destination.Price.Mul(decimal.NewFromInt(int64(in.NumTravelers)))

	booking := &model.Booking{
		UserID:        userID,
		DestinationID: destination.ID,
		TripDate:      in.TripDate,
		NumTravelers:  in.NumTravelers,
		TotalPrice:    totalPrice,
		PaymentStatus: model.PaymentStatusPaid, // simulated payment success
		DummyCardInfo: model.DummyCardInfo{
			CardNumber: s.validator.MaskCardNumber(in.DummyCardInfo.CardNumber),
			Expiry:     in.DummyCardInfo.Expiry,
			CVV:        in.DummyCardInfo.CVV,
		},
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, "", fmt.Errorf("create booking: %w", err)
	}

	booking.Destination = destination

	message := fmt.Sprintf("Trip to %s booked for %d traveler(s). Total: $%s",
		destination.Name, in.NumTravelers, totalPrice.String())

	return booking, message, nil
}

// ListUserBookings returns the user's bookings newest first with destination
// summaries populated.
func (s *bookingService) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]model.Booking, error) {
	return s.bookingRepo.FindByUser(ctx, userID)
}
