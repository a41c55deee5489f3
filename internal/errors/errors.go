package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on login failure. The same error covers
	// unknown email and wrong password so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized is returned when a protected route is hit without a valid token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDestinationNotFound is returned when a destination lookup misses.
	ErrDestinationNotFound = errors.New("destination not found")
	// ErrTripNotFound is returned when a trip lookup misses.
	ErrTripNotFound = errors.New("trip not found")
	// ErrBookingNotFound is returned when a booking lookup misses.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrCardInfoRequired is returned when dummy card info is missing entirely.
	ErrCardInfoRequired = errors.New("card info is required")
	// ErrInvalidCardNumber is returned when the card number is not exactly 16 digits.
	ErrInvalidCardNumber = errors.New("please enter a valid card number (16 digits)")
	// ErrInvalidCardExpiry is returned when the expiry is not MM/YY with month 01-12.
	ErrInvalidCardExpiry = errors.New("expiry must be in MM/YY format")
	// ErrInvalidCardCVV is returned when the CVV is not exactly 3 digits.
	ErrInvalidCardCVV = errors.New("cvv must be 3 digits")
	// ErrSearchQueryRequired is returned when the search query is empty or missing.
	ErrSearchQueryRequired = errors.New("search query is required")
	// ErrInvalidDateRange is returned when a trip's end date is not after its start date.
	ErrInvalidDateRange = errors.New("end date must be after start date")
	// ErrNegativePrice is returned when a destination price is below zero.
	ErrNegativePrice = errors.New("price cannot be negative")
	// ErrInvalidRating is returned when a destination rating is outside 0-5.
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
	// ErrInvalidTravelerCount is returned when numTravelers is below one.
	ErrInvalidTravelerCount = errors.New("number of travelers must be at least 1")
)

// ErrorResponse is the failure envelope returned by every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to the JSON failure envelope.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: e.Message,
		Code:    e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unrecognized errors come
// back as a redacted 500.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrDestinationNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "DESTINATION_NOT_FOUND")
	case ErrTripNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "TRIP_NOT_FOUND")
	case ErrBookingNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "BOOKING_NOT_FOUND")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrUnauthorized:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	case ErrCardInfoRequired, ErrInvalidCardNumber, ErrInvalidCardExpiry, ErrInvalidCardCVV:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CARD")
	case ErrSearchQueryRequired:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SEARCH_QUERY_REQUIRED")
	case ErrInvalidDateRange:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATE_RANGE")
	case ErrNegativePrice, ErrInvalidRating, ErrInvalidTravelerCount:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
