package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/haidrrry/travellingapp/internal/errors"
	"github.com/haidrrry/travellingapp/internal/model"
	"github.com/haidrrry/travellingapp/internal/repository"
)

// TripService handles trip creation and CRUD. Creation goes through the trip
// factory so kind-specific defaults apply before the save-time date check.
type TripService interface {
	Create(ctx context.Context, in TripInput) (*model.Trip, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Trip, error)
	List(ctx context.Context) ([]model.Trip, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Trip, error)
	Update(ctx context.Context, id uuid.UUID, in TripInput) (*model.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tripService struct {
	tripRepo repository.TripRepository
	destRepo repository.DestinationRepository
	factory  *TripFactory
}

// NewTripService creates a new trip service.
func NewTripService(tripRepo repository.TripRepository, destRepo repository.DestinationRepository) TripService {
	return &tripService{
		tripRepo: tripRepo,
		destRepo: destRepo,
		factory:  NewTripFactory(),
	}
}

// Create builds a trip via the factory and persists it, then reloads it with
// user and destination summaries populated.
func (s *tripService) Create(ctx context.Context, in TripInput) (*model.Trip, error) {
	if _, err := s.destRepo.FindByID(ctx, in.DestinationID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrDestinationNotFound
		}
		return nil, err
	}

	trip := s.factory.Build(ParseTripKind(in.TripType), in)
	if err := s.tripRepo.Create(ctx, trip); err != nil {
		if err == errors.ErrInvalidDateRange {
			return nil, err
		}
		return nil, fmt.Errorf("create trip: %w", err)
	}

	return s.tripRepo.FindByID(ctx, trip.ID)
}

// Get returns a single trip with user and destination populated.
func (s *tripService) Get(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTripNotFound
		}
		return nil, err
	}
	return trip, nil
}

// List returns all trips.
func (s *tripService) List(ctx context.Context) ([]model.Trip, error) {
	return s.tripRepo.List(ctx)
}

// ListByUser returns a user's trips.
func (s *tripService) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Trip, error) {
	return s.tripRepo.FindByUser(ctx, userID)
}

// Update applies changes to an existing trip. The factory is not re-run:
// updates carry the fields as given, subject to the save-time date check.
func (s *tripService) Update(ctx context.Context, id uuid.UUID, in TripInput) (*model.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTripNotFound
		}
		return nil, err
	}

	if !in.StartDate.IsZero() {
		trip.StartDate = in.StartDate
	}
	if !in.EndDate.IsZero() {
		trip.EndDate = in.EndDate
	}
	if in.TripType != "" {
		trip.TripType = in.TripType
	}
	if in.Notes != "" {
		trip.Notes = in.Notes
	}
	if in.Budget != nil {
		trip.Budget = in.Budget
	}
	if in.NumTravelers != nil {
		trip.NumTravelers = in.NumTravelers
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		if err == errors.ErrInvalidDateRange {
			return nil, err
		}
		return nil, fmt.Errorf("update trip: %w", err)
	}

	return s.tripRepo.FindByID(ctx, id)
}

// Delete removes a trip.
func (s *tripService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.tripRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrTripNotFound
		}
		return err
	}
	return s.tripRepo.Delete(ctx, id)
}
