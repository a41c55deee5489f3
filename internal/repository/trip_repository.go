package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/haidrrry/travellingapp/internal/model"
)

// TripRepository defines trip persistence operations. Finders preload the
// owning user and destination summaries for populated responses.
type TripRepository interface {
	Create(ctx context.Context, trip *model.Trip) error
	Update(ctx context.Context, trip *model.Trip) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Trip, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Trip, error)
	List(ctx context.Context) ([]model.Trip, error)
}

type tripRepository struct {
	db *gorm.DB
}

// NewTripRepository creates a new trip repository.
func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

// Create creates a new trip record.
func (r *tripRepository) Create(ctx context.Context, trip *model.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

// Update updates an existing trip record.
func (r *tripRepository) Update(ctx context.Context, trip *model.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

// Delete soft-deletes a trip.
func (r *tripRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Trip{}, "id = ?", id).Error
}

// FindByID finds a trip by ID with user and destination populated.
func (r *tripRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Trip, error) {
	var trip model.Trip
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Destination").
		Where("id = ?", id).
		First(&trip).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

// FindByUser lists a user's trips with destinations populated.
func (r *tripRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Trip, error) {
	var trips []model.Trip
	if err := r.db.WithContext(ctx).
		Preload("Destination").
		Where("user_id = ?", userID).
		Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

// List returns all trips with user and destination populated.
func (r *tripRepository) List(ctx context.Context) ([]model.Trip, error) {
	var trips []model.Trip
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Destination").
		Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}
