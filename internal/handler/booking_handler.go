package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/haidrrry/travellingapp/internal/model"
	"github.com/haidrrry/travellingapp/internal/service"
)

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CardInfoRequest carries the dummy payment card fields.
type CardInfoRequest struct {
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// CreateBookingRequest represents a booking request. TripDate accepts
// RFC 3339 or plain YYYY-MM-DD.
type CreateBookingRequest struct {
	DestinationID string           `json:"destinationId" validate:"required,uuid"`
	TripDate      string           `json:"tripDate" validate:"required"`
	NumTravelers  int              `json:"numTravelers" validate:"required,min=1"`
	DummyCardInfo *CardInfoRequest `json:"dummyCardInfo" validate:"required"`
}

// BookingResponse wraps a created booking with its confirmation message.
type BookingResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Booking *model.Booking `json:"booking"`
}

// BookingListResponse wraps a booking list.
type BookingListResponse struct {
	Success  bool            `json:"success"`
	Count    int             `json:"count"`
	Bookings []model.Booking `json:"bookings"`
}

// Create godoc
// @Summary Book a destination with dummy payment info
// @Description Validates the dummy card, computes the total price from the
// @Description destination price and traveler count, and records the booking
// @Description as Paid. Payment is simulated; no gateway is involved.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBookingRequest true "Booking data"
// @Success 201 {object} BookingResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	destinationID, err := uuid.Parse(req.DestinationID)
	if err != nil {
		return badRequest(c, "invalid destination id")
	}
	tripDate, ok := parseDate(req.TripDate)
	if !ok {
		return badRequest(c, "invalid trip date")
	}

	in := service.BookingInput{
		DestinationID: destinationID,
		TripDate:      tripDate,
		NumTravelers:  req.NumTravelers,
		DummyCardInfo: &model.DummyCardInfo{
			CardNumber: req.DummyCardInfo.CardNumber,
			Expiry:     req.DummyCardInfo.Expiry,
			CVV:        req.DummyCardInfo.CVV,
		},
	}

	booking, message, err := h.bookingService.CreateBooking(c.Request().Context(), userID, in)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, BookingResponse{
		Success: true,
		Message: message,
		Booking: booking,
	})
}

// ListMine godoc
// @Summary List the authenticated user's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BookingListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	bookings, err := h.bookingService.ListUserBookings(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, BookingListResponse{
		Success:  true,
		Count:    len(bookings),
		Bookings: bookings,
	})
}
