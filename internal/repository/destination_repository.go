package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/haidrrry/travellingapp/internal/model"
)

// DestinationRepository defines destination persistence operations.
type DestinationRepository interface {
	Create(ctx context.Context, destination *model.Destination) error
	Update(ctx context.Context, destination *model.Destination) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Destination, error)
	FindByName(ctx context.Context, name string) (*model.Destination, error)
	List(ctx context.Context) ([]model.Destination, error)
	Search(ctx context.Context, query string) ([]model.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

// NewDestinationRepository creates a new destination repository.
func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

// Create creates a new destination.
func (r *destinationRepository) Create(ctx context.Context, destination *model.Destination) error {
	return r.db.WithContext(ctx).Create(destination).Error
}

// Update updates an existing destination.
func (r *destinationRepository) Update(ctx context.Context, destination *model.Destination) error {
	return r.db.WithContext(ctx).Save(destination).Error
}

// Delete soft-deletes a destination.
func (r *destinationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Destination{}, "id = ?", id).Error
}

// FindByID finds a destination by ID.
func (r *destinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Destination, error) {
	var destination model.Destination
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&destination).Error; err != nil {
		return nil, err
	}
	return &destination, nil
}

// FindByName finds a destination by exact name. Used by the seeder for upserts.
func (r *destinationRepository) FindByName(ctx context.Context, name string) (*model.Destination, error) {
	var destination model.Destination
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&destination).Error; err != nil {
		return nil, err
	}
	return &destination, nil
}

// List returns the full destination catalogue.
func (r *destinationRepository) List(ctx context.Context) ([]model.Destination, error) {
	var destinations []model.Destination
	if err := r.db.WithContext(ctx).Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}

// Search runs a full-text match over name, country, and location, ranked by
// MySQL's native relevance scoring. Terms the FULLTEXT index cannot serve
// (short or stopword-only queries return nothing) fall back to a LIKE scan
// that also covers the description.
func (r *destinationRepository) Search(ctx context.Context, query string) ([]model.Destination, error) {
	var destinations []model.Destination
	err := r.db.WithContext(ctx).
		Where("MATCH(name, country, location) AGAINST (? IN NATURAL LANGUAGE MODE)", query).
		Find(&destinations).Error
	if err == nil && len(destinations) > 0 {
		return destinations, nil
	}

	like := "%" + strings.ToLower(query) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(country) LIKE ? OR LOWER(location) LIKE ? OR LOWER(description) LIKE ?",
			like, like, like, like).
		Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}
