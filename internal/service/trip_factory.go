package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/haidrrry/travellingapp/internal/model"
)

// TripKind is the typed discriminator for trip construction. Anything the
// parser does not recognize maps to KindGeneric, which applies no defaults.
type TripKind int

const (
	KindGeneric TripKind = iota
	KindBusiness
	KindVacation
	KindWeekend
	KindLongTerm
)

const (
	weekendDays  = 2
	longTermDays = 30
)

// ParseTripKind matches a raw trip type case-insensitively against the known
// kinds.
func ParseTripKind(tripType string) TripKind {
	switch strings.ToLower(tripType) {
	case "business":
		return KindBusiness
	case "vacation":
		return KindVacation
	case "weekend":
		return KindWeekend
	case "long-term":
		return KindLongTerm
	}
	return KindGeneric
}

// TripInput is the raw material for trip construction.
type TripInput struct {
	UserID        uuid.UUID
	DestinationID uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	TripType      string
	Notes         string
	Budget        *decimal.Decimal
	NumTravelers  *int
}

// TripFactory constructs unsaved Trip entities, applying kind-specific
// defaults. Nothing is persisted until the caller saves the result.
type TripFactory struct{}

// NewTripFactory creates a new trip factory.
func NewTripFactory() *TripFactory {
	return &TripFactory{}
}

// Build produces a Trip for the given kind. Weekend and long-term trips get a
// fixed end date relative to the start date, replacing any caller-supplied
// value; business and vacation trips only default the notes.
func (f *TripFactory) Build(kind TripKind, in TripInput) *model.Trip {
	trip := &model.Trip{
		UserID:        in.UserID,
		DestinationID: in.DestinationID,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		TripType:      in.TripType,
		Notes:         in.Notes,
		Budget:        in.Budget,
		NumTravelers:  in.NumTravelers,
	}

	switch kind {
	case KindBusiness:
		if trip.Notes == "" {
			trip.Notes = "Business trip"
		}
	case KindVacation:
		if trip.Notes == "" {
			trip.Notes = "Vacation trip"
		}
	case KindWeekend:
		trip.EndDate = in.StartDate.AddDate(0, 0, weekendDays)
		if trip.Notes == "" {
			trip.Notes = "Weekend getaway"
		}
	case KindLongTerm:
		trip.EndDate = in.StartDate.AddDate(0, 0, longTermDays)
		if trip.Notes == "" {
			trip.Notes = "Long term travel"
		}
	case KindGeneric:
		// no defaulting
	}

	return trip
}
