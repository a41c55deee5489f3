package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/haidrrry/travellingapp/internal/cache"
	"github.com/haidrrry/travellingapp/internal/errors"
	"github.com/haidrrry/travellingapp/internal/model"
	"github.com/haidrrry/travellingapp/internal/repository"
)

const destinationCacheTTL = 5 * time.Minute

// DestinationInput carries destination fields for create and update.
type DestinationInput struct {
	Name        string
	Country     string
	Location    string
	Description string
	Category    model.DestinationCategory
	Price       decimal.Decimal
	Rating      *float64
	ImageURL    string
}

// DestinationService handles the destination catalogue.
type DestinationService interface {
	List(ctx context.Context) ([]model.Destination, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Destination, error)
	Create(ctx context.Context, in DestinationInput) (*model.Destination, error)
	Update(ctx context.Context, id uuid.UUID, in DestinationInput) (*model.Destination, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query string) ([]model.Destination, error)
}

type destinationService struct {
	repo  repository.DestinationRepository
	cache *cache.Client
}

// NewDestinationService creates a new destination service.
func NewDestinationService(repo repository.DestinationRepository, cache *cache.Client) DestinationService {
	return &destinationService{repo: repo, cache: cache}
}

func (s *destinationService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("destination:%s", id.String())
}

// List returns the full catalogue.
func (s *destinationService) List(ctx context.Context) ([]model.Destination, error) {
	return s.repo.List(ctx)
}

// Get retrieves a destination by ID with read-through caching.
func (s *destinationService) Get(ctx context.Context, id uuid.UUID) (*model.Destination, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Destination
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	destination, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrDestinationNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(destination); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, destinationCacheTTL)
	}

	return destination, nil
}

// Create validates and persists a new destination.
func (s *destinationService) Create(ctx context.Context, in DestinationInput) (*model.Destination, error) {
	if err := validateDestinationInput(in); err != nil {
		return nil, err
	}

	destination := &model.Destination{
		Name:        in.Name,
		Country:     in.Country,
		Location:    in.Location,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
	}
	if in.Rating != nil {
		destination.Rating = *in.Rating
	}

	if err := s.repo.Create(ctx, destination); err != nil {
		return nil, fmt.Errorf("create destination: %w", err)
	}
	return destination, nil
}

// Update applies changes to an existing destination and invalidates its cache
// entry.
func (s *destinationService) Update(ctx context.Context, id uuid.UUID, in DestinationInput) (*model.Destination, error) {
	if err := validateDestinationInput(in); err != nil {
		return nil, err
	}

	destination, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrDestinationNotFound
		}
		return nil, err
	}

	destination.Name = in.Name
	destination.Country = in.Country
	destination.Location = in.Location
	destination.Description = in.Description
	if in.Category != "" {
		destination.Category = in.Category
	}
	destination.Price = in.Price
	if in.Rating != nil {
		destination.Rating = *in.Rating
	}
	destination.ImageURL = in.ImageURL

	if err := s.repo.Update(ctx, destination); err != nil {
		return nil, fmt.Errorf("update destination: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return destination, nil
}

// Delete removes a destination and invalidates its cache entry.
func (s *destinationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrDestinationNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete destination: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// Search filters the catalogue by a free-text query. An empty query fails
// before the store is touched.
func (s *destinationService) Search(ctx context.Context, query string) ([]model.Destination, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.ErrSearchQueryRequired
	}
	return s.repo.Search(ctx, query)
}

func validateDestinationInput(in DestinationInput) error {
	if in.Price.IsNegative() {
		return errors.ErrNegativePrice
	}
	if in.Rating != nil && (*in.Rating < 0 || *in.Rating > 5) {
		return errors.ErrInvalidRating
	}
	return nil
}
