package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Eursukkul/venue-staffing/internal/dto"
	"github.com/Eursukkul/venue-staffing/internal/models"
	"github.com/Eursukkul/venue-staffing/internal/service"
)

type AdminHandler struct {
	venues service.VenueService
}

func NewAdminHandler(venues service.VenueService) *AdminHandler {
	return &AdminHandler{venues: venues}
}

func (h *AdminHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/venues", h.ListVenues)
	g.POST("/venues", h.CreateVenue)
}

func (h *AdminHandler) ListVenues(c echo.Context) error {
	venues, err := h.venues.ListVenues(c.Request().Context())
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, venues)
}

func (h *AdminHandler) CreateVenue(c echo.Context) error {
	var req dto.VenueRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	venue := &models.Venue{}
	applyVenueRequest(venue, &req)
	if err := h.venues.CreateVenue(c.Request().Context(), venue); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, venue)
}
