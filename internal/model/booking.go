package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentStatus represents the payment state of a booking.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusPending PaymentStatus = "Pending"
)

// DummyCardInfo holds the simulated payment card capture. The card number is
// stored masked to its last four digits; no real payment processing occurs.
type DummyCardInfo struct {
	CardNumber string `json:"cardNumber" gorm:"size:32"`
	Expiry     string `json:"expiry" gorm:"size:5"`
	CVV        string `json:"cvv" gorm:"size:4"`
}

// Booking is a paid reservation for a destination visit. TotalPrice is always
// computed server-side from the destination price and traveler count.
type Booking struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	UserID        uuid.UUID       `json:"userId" gorm:"type:char(36);not null;index"`
	DestinationID uuid.UUID       `json:"destinationId" gorm:"type:char(36);not null;index"`
	TripDate      time.Time       `json:"tripDate" gorm:"not null"`
	NumTravelers  int             `json:"numTravelers" gorm:"not null"`
	TotalPrice    decimal.Decimal `json:"totalPrice" gorm:"type:decimal(10,2);not null"`
	PaymentStatus PaymentStatus   `json:"paymentStatus" gorm:"type:varchar(10);not null;default:'Pending'"`
	DummyCardInfo DummyCardInfo   `json:"dummyCardInfo" gorm:"embedded;embeddedPrefix:card_"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	User        *User        `json:"-" gorm:"foreignKey:UserID"`
	Destination *Destination `json:"destination,omitempty" gorm:"foreignKey:DestinationID"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
