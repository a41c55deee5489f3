package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DestinationCategory classifies a destination in the catalogue.
type DestinationCategory string

const (
	CategoryBeaches   DestinationCategory = "beaches"
	CategoryMountains DestinationCategory = "mountains"
	CategoryCities    DestinationCategory = "cities"
	CategoryAdventure DestinationCategory = "adventure"
	CategoryCultural  DestinationCategory = "cultural"
	CategoryNature    DestinationCategory = "nature"
)

const defaultRating = 4.5

// Destination is a travel location with price, rating, and category metadata.
// Name, country and location share a FULLTEXT index backing the search endpoint.
type Destination struct {
	ID          uuid.UUID           `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string              `json:"name" gorm:"size:100;not null;index:idx_destinations_search,class:FULLTEXT"`
	Country     string              `json:"country" gorm:"size:100;not null;index:idx_destinations_search,class:FULLTEXT"`
	Location    string              `json:"location" gorm:"size:100;not null;index:idx_destinations_search,class:FULLTEXT"`
	Description string              `json:"description" gorm:"size:500"`
	Category    DestinationCategory `json:"category" gorm:"type:varchar(20);not null;default:'adventure';index"`
	Price       decimal.Decimal     `json:"price" gorm:"type:decimal(10,2);not null"`
	Rating      float64             `json:"rating" gorm:"not null;default:4.5"`
	ImageURL    string              `json:"imageUrl" gorm:"size:512"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt      `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID and column defaults before creating the record.
func (d *Destination) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.Category == "" {
		d.Category = CategoryAdventure
	}
	if d.Rating == 0 {
		d.Rating = defaultRating
	}
	return nil
}
