package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/haidrrry/travellingapp/internal/model"
	"github.com/haidrrry/travellingapp/internal/service"
)

// DestinationHandler handles destination catalogue endpoints.
type DestinationHandler struct {
	destinationService service.DestinationService
}

// NewDestinationHandler creates a new destination handler.
func NewDestinationHandler(destinationService service.DestinationService) *DestinationHandler {
	return &DestinationHandler{destinationService: destinationService}
}

// DestinationRequest represents destination create/update data.
type DestinationRequest struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Country     string          `json:"country" validate:"required,max=100"`
	Location    string          `json:"location" validate:"required,max=100"`
	Description string          `json:"description" validate:"required,max=500"`
	Category    string          `json:"category" validate:"omitempty,oneof=beaches mountains cities adventure cultural nature"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Rating      *float64        `json:"rating"`
	ImageURL    string          `json:"imageUrl" validate:"omitempty,url"`
}

// DestinationListResponse wraps a destination list.
type DestinationListResponse struct {
	Success bool                `json:"success"`
	Count   int                 `json:"count"`
	Data    []model.Destination `json:"data"`
}

// DestinationResponse wraps a single destination.
type DestinationResponse struct {
	Success bool               `json:"success"`
	Data    *model.Destination `json:"data"`
}

func (r DestinationRequest) toInput() service.DestinationInput {
	return service.DestinationInput{
		Name:        r.Name,
		Country:     r.Country,
		Location:    r.Location,
		Description: r.Description,
		Category:    model.DestinationCategory(r.Category),
		Price:       r.Price,
		Rating:      r.Rating,
		ImageURL:    r.ImageURL,
	}
}

// List godoc
// @Summary List all destinations
// @Tags destinations
// @Produce json
// @Success 200 {object} DestinationListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /destinations [get]
func (h *DestinationHandler) List(c echo.Context) error {
	destinations, err := h.destinationService.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, DestinationListResponse{
		Success: true,
		Count:   len(destinations),
		Data:    destinations,
	})
}

// Search godoc
// @Summary Search destinations by name, country, or location
// @Tags destinations
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} DestinationListResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /destinations/search [get]
func (h *DestinationHandler) Search(c echo.Context) error {
	destinations, err := h.destinationService.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, DestinationListResponse{
		Success: true,
		Count:   len(destinations),
		Data:    destinations,
	})
}

// Get godoc
// @Summary Get a single destination
// @Tags destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} DestinationResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /destinations/{id} [get]
func (h *DestinationHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid destination id")
	}

	destination, err := h.destinationService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, DestinationResponse{Success: true, Data: destination})
}

// Create godoc
// @Summary Create a destination
// @Tags destinations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DestinationRequest true "Destination data"
// @Success 201 {object} DestinationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /destinations [post]
func (h *DestinationHandler) Create(c echo.Context) error {
	var req DestinationRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	destination, err := h.destinationService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, DestinationResponse{Success: true, Data: destination})
}

// Update godoc
// @Summary Update a destination
// @Tags destinations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Param request body DestinationRequest true "Destination data"
// @Success 200 {object} DestinationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /destinations/{id} [put]
func (h *DestinationHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid destination id")
	}

	var req DestinationRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	destination, err := h.destinationService.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, DestinationResponse{Success: true, Data: destination})
}

// Delete godoc
// @Summary Delete a destination
// @Tags destinations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /destinations/{id} [delete]
func (h *DestinationHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid destination id")
	}

	if err := h.destinationService.Delete(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "Destination deleted successfully",
	})
}

// MessageResponse is the generic success envelope for delete-style endpoints.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
