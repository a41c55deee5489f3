package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/haidrrry/travellingapp/internal/model"
	"github.com/haidrrry/travellingapp/internal/service"
)

// TripHandler handles trip endpoints.
type TripHandler struct {
	tripService service.TripService
}

// NewTripHandler creates a new trip handler.
func NewTripHandler(tripService service.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

// TripRequest represents trip create/update data. Dates accept RFC 3339 or
// plain YYYY-MM-DD.
type TripRequest struct {
	DestinationID string           `json:"destinationId" validate:"required,uuid"`
	StartDate     string           `json:"startDate" validate:"required"`
	EndDate       string           `json:"endDate"`
	TripType      string           `json:"tripType"`
	Notes         string           `json:"notes" validate:"max=500"`
	Budget        *decimal.Decimal `json:"budget"`
	NumTravelers  *int             `json:"numTravelers" validate:"omitempty,min=1"`
}

// TripListResponse wraps a trip list.
type TripListResponse struct {
	Success bool         `json:"success"`
	Count   int          `json:"count"`
	Data    []model.Trip `json:"data"`
}

// TripResponse wraps a single trip.
type TripResponse struct {
	Success bool        `json:"success"`
	Data    *model.Trip `json:"data"`
}

func (r TripRequest) toInput(userID uuid.UUID) (service.TripInput, string) {
	in := service.TripInput{
		UserID:       userID,
		TripType:     r.TripType,
		Notes:        r.Notes,
		Budget:       r.Budget,
		NumTravelers: r.NumTravelers,
	}

	if r.DestinationID != "" {
		destinationID, err := uuid.Parse(r.DestinationID)
		if err != nil {
			return service.TripInput{}, "invalid destination id"
		}
		in.DestinationID = destinationID
	}

	if r.StartDate != "" {
		start, ok := parseDate(r.StartDate)
		if !ok {
			return service.TripInput{}, "invalid start date"
		}
		in.StartDate = start
	}
	if r.EndDate != "" {
		end, ok := parseDate(r.EndDate)
		if !ok {
			return service.TripInput{}, "invalid end date"
		}
		in.EndDate = end
	}
	return in, ""
}

// List godoc
// @Summary List all trips
// @Tags trips
// @Produce json
// @Success 200 {object} TripListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trips [get]
func (h *TripHandler) List(c echo.Context) error {
	trips, err := h.tripService.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, TripListResponse{Success: true, Count: len(trips), Data: trips})
}

// ListByUser godoc
// @Summary List trips belonging to a user
// @Tags trips
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} TripListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trips/user/{userId} [get]
func (h *TripHandler) ListByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	trips, err := h.tripService.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, TripListResponse{Success: true, Count: len(trips), Data: trips})
}

// Get godoc
// @Summary Get a single trip
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} TripResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trips/{id} [get]
func (h *TripHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid trip id")
	}

	trip, err := h.tripService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, TripResponse{Success: true, Data: trip})
}

// Create godoc
// @Summary Create a trip
// @Description Creates a trip for the authenticated user. Known trip types
// @Description (business, vacation, weekend, long-term) apply their defaults.
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TripRequest true "Trip data"
// @Success 201 {object} TripResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trips [post]
func (h *TripHandler) Create(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	var req TripRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	in, msg := req.toInput(userID)
	if msg != "" {
		return badRequest(c, msg)
	}

	trip, err := h.tripService.Create(c.Request().Context(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, TripResponse{Success: true, Data: trip})
}

// Update godoc
// @Summary Update a trip
// @Tags trips
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param request body TripRequest true "Trip data"
// @Success 200 {object} TripResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trips/{id} [put]
func (h *TripHandler) Update(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return fail(c, err)
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid trip id")
	}

	var req TripRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	in, msg := req.toInput(userID)
	if msg != "" {
		return badRequest(c, msg)
	}

	trip, err := h.tripService.Update(c.Request().Context(), id, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, TripResponse{Success: true, Data: trip})
}

// Delete godoc
// @Summary Delete a trip
// @Tags trips
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /trips/{id} [delete]
func (h *TripHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid trip id")
	}

	if err := h.tripService.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "Trip deleted successfully",
	})
}
