package service

import (
	"regexp"
	"strings"

	"github.com/haidrrry/travellingapp/internal/errors"
	"github.com/haidrrry/travellingapp/internal/model"
)

var (
	cardNumberRegex = regexp.MustCompile(`^[0-9]{16}$`)
	expiryRegex     = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	cvvRegex        = regexp.MustCompile(`^[0-9]{3}$`)
)

// CardValidator validates the dummy payment card captured on bookings.
// Checks run in field order and the first violation wins.
type CardValidator struct{}

// NewCardValidator creates a new card validator.
func NewCardValidator() *CardValidator {
	return &CardValidator{}
}

// ValidateCard checks the card number (exactly 16 digits, no separators),
// expiry (MM/YY with month 01-12), and CVV (exactly 3 digits).
func (v *CardValidator) ValidateCard(card *model.DummyCardInfo) error {
	if card == nil {
		return errors.ErrCardInfoRequired
	}
	if !cardNumberRegex.MatchString(card.CardNumber) {
		return errors.ErrInvalidCardNumber
	}
	if !expiryRegex.MatchString(card.Expiry) {
		return errors.ErrInvalidCardExpiry
	}
	if !cvvRegex.MatchString(card.CVV) {
		return errors.ErrInvalidCardCVV
	}
	return nil
}

// MaskCardNumber masks a card number, showing only the last 4 digits.
func (v *CardValidator) MaskCardNumber(cardNumber string) string {
	cardNumber = strings.ReplaceAll(strings.ReplaceAll(cardNumber, " ", ""), "-", "")
	if len(cardNumber) < 4 {
		return "****"
	}
	return "****" + cardNumber[len(cardNumber)-4:]
}
