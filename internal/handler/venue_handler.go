package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Eursukkul/venue-staffing/internal/dto"
	"github.com/Eursukkul/venue-staffing/internal/models"
	"github.com/Eursukkul/venue-staffing/internal/repository"
	"github.com/Eursukkul/venue-staffing/internal/service"
)

// VenueHandler serves venue accounts: their venue record and the shifts and
// feedback attached to it.
type VenueHandler struct {
	venues   service.VenueService
	shifts   service.ShiftService
	feedback service.FeedbackService
}

func NewVenueHandler(venues service.VenueService, shifts service.ShiftService, feedback service.FeedbackService) *VenueHandler {
	return &VenueHandler{venues: venues, shifts: shifts, feedback: feedback}
}

func (h *VenueHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/venues/:id", h.GetVenue)
	g.PUT("/venues/:id", h.UpdateVenue)
	g.GET("/venues/:id/shifts", h.ListShifts)
	g.GET("/venues/:id/feedback", h.ListFeedback)
}

func (h *VenueHandler) GetVenue(c echo.Context) error {
	venue, err := h.venues.GetVenue(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) UpdateVenue(c echo.Context) error {
	var req dto.VenueRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	venue, err := h.venues.UpdateVenue(c.Request().Context(), c.Param("id"), func(v *models.Venue) {
		applyVenueRequest(v, &req)
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) ListShifts(c echo.Context) error {
	ctx := c.Request().Context()
	venueID := c.Param("id")
	if _, err := h.venues.GetVenue(ctx, venueID); err != nil {
		return mapServiceError(err)
	}

	shifts, err := h.shifts.ListShifts(ctx, repository.ShiftFilter{VenueID: venueID})
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, shifts)
}

func (h *VenueHandler) ListFeedback(c echo.Context) error {
	ctx := c.Request().Context()
	venueID := c.Param("id")
	if _, err := h.venues.GetVenue(ctx, venueID); err != nil {
		return mapServiceError(err)
	}

	items, err := h.feedback.List(ctx, repository.FeedbackFilter{VenueID: venueID})
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func applyVenueRequest(v *models.Venue, req *dto.VenueRequest) {
	v.Name = req.Name
	v.Address = req.Address
	v.Suburb = req.Suburb
	v.Capacity = req.Capacity
	v.Amenities = req.Amenities
	v.Rates = models.VenueRates{
		Weekday: req.Rates.Weekday,
		Weekend: req.Rates.Weekend,
		Hourly:  req.Rates.Hourly,
	}
	v.Description = req.Description
	v.ImageURL = req.ImageURL
	v.Type = req.Type
}
