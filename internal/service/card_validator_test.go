package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haidrrry/travellingapp/internal/errors"
	"github.com/haidrrry/travellingapp/internal/model"
)

func TestCardValidator_ValidateCard(t *testing.T) {
	tests := []struct {
		name          string
		card          *model.DummyCardInfo
		expectedError error
	}{
		{
			name:          "valid card",
			card:          &model.DummyCardInfo{CardNumber: "4111111111111111", Expiry: "09/27", CVV: "123"},
			expectedError: nil,
		},
		{
			name:          "missing card info",
			card:          nil,
			expectedError: errors.ErrCardInfoRequired,
		},
		{
			name:          "card number too short",
			card:          &model.DummyCardInfo{CardNumber: "4111111111111", Expiry: "09/27", CVV: "123"},
			expectedError: errors.ErrInvalidCardNumber,
		},
		{
			name:          "card number too long",
			card:          &model.DummyCardInfo{CardNumber: "41111111111111112", Expiry: "09/27", CVV: "123"},
			expectedError: errors.ErrInvalidCardNumber,
		},
		{
			name:          "card number with separators rejected",
			card:          &model.DummyCardInfo{CardNumber: "4111 1111 1111 1111", Expiry: "09/27", CVV: "123"},
			expectedError: errors.ErrInvalidCardNumber,
		},
		{
			name:          "card number with letters rejected",
			card:          &model.DummyCardInfo{CardNumber: "41111111111111ab", Expiry: "09/27", CVV: "123"},
			expectedError: errors.ErrInvalidCardNumber,
		},
		{
			name:          "expiry month 13 rejected",
			card:          &model.DummyCardInfo{CardNumber: "4111111111111111", Expiry: "13/27", CVV: "123"},
			expectedError: errors.ErrInvalidCardExpiry,
		},
		{
			name:          "expiry month 00 rejected",
			card:          &model.DummyCardInfo{CardNumber: "4111111111111111", Expiry: "00/27", CVV: "123"},
			expectedError: errors.ErrInvalidCardExpiry,
		},
		{
			name:          "expiry with four-digit year rejected",
			card:          &model.DummyCardInfo{CardNumber: "4111111111111111", Expiry: "09/2027", CVV: "123"},
			expectedError: errors.ErrInvalidCardExpiry,
		},
		{
			name:          "december expiry accepted",
			card:          &model.DummyCardInfo{CardNumber: "4111111111111111", Expiry: "12/25", CVV: "123"},
			expectedError: nil,
		},
		{
			name:          "cvv too long",
			card:          &model.DummyCardInfo{CardNumber: "4111111111111111", Expiry: "09/27", CVV: "1234"},
			expectedError: errors.ErrInvalidCardCVV,
		},
		{
			name:          "cvv too short",
			card:          &model.DummyCardInfo{CardNumber: "4111111111111111", Expiry: "09/27", CVV: "12"},
			expectedError: errors.ErrInvalidCardCVV,
		},
		{
			name:          "card number checked before expiry",
			card:          &model.DummyCardInfo{CardNumber: "bad", Expiry: "13/27", CVV: "12"},
			expectedError: errors.ErrInvalidCardNumber,
		},
	}

	validator := NewCardValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateCard(tt.card)
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCardValidator_MaskCardNumber(t *testing.T) {
	validator := NewCardValidator()

	assert.Equal(t, "****1111", validator.MaskCardNumber("4111111111111111"))
	assert.Equal(t, "****1111", validator.MaskCardNumber("4111 1111 1111 1111"))
	assert.Equal(t, "****", validator.MaskCardNumber("12"))
}
