package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/haidrrry/travellingapp/internal/errors"
)

// Trip is a planned visit to a destination by a user over a date range.
// TripType is stored as given by the client; only the known kinds get
// factory defaulting at creation time.
type Trip struct {
	ID            uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	UserID        uuid.UUID        `json:"userId" gorm:"type:char(36);not null;index"`
	DestinationID uuid.UUID        `json:"destinationId" gorm:"type:char(36);not null;index"`
	StartDate     time.Time        `json:"startDate" gorm:"not null"`
	EndDate       time.Time        `json:"endDate" gorm:"not null"`
	TripType      string           `json:"tripType" gorm:"size:50"`
	Notes         string           `json:"notes" gorm:"size:500"`
	Budget        *decimal.Decimal `json:"budget,omitempty" gorm:"type:decimal(10,2)"`
	NumTravelers  *int             `json:"numTravelers,omitempty"`
	Duration      int              `json:"duration" gorm:"-"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt   `json:"-" gorm:"index"`

	// Relations
	User        *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Destination *Destination `json:"destination,omitempty" gorm:"foreignKey:DestinationID"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Trip) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// BeforeSave enforces the date-range invariant. Saves with endDate <= startDate
// fail regardless of trip type.
func (t *Trip) BeforeSave(tx *gorm.DB) error {
	if !t.EndDate.After(t.StartDate) {
		return errors.ErrInvalidDateRange
	}
	t.Duration = t.DurationDays()
	return nil
}

// AfterFind recomputes the derived duration; it is never stored.
func (t *Trip) AfterFind(tx *gorm.DB) error {
	t.Duration = t.DurationDays()
	return nil
}

// DurationDays is the trip length in days, rounded up.
func (t *Trip) DurationDays() int {
	return int(math.Ceil(t.EndDate.Sub(t.StartDate).Hours() / 24))
}
