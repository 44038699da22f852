package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Eursukkul/venue-staffing/internal/dto"
	"github.com/Eursukkul/venue-staffing/internal/middleware"
	"github.com/Eursukkul/venue-staffing/internal/models"
	"github.com/Eursukkul/venue-staffing/internal/repository"
	"github.com/Eursukkul/venue-staffing/internal/service"
	"github.com/Eursukkul/venue-staffing/internal/validation"
)

// DashboardHandler serves the staff member's own view: open shifts,
// applications, profile, feedback and shared documents.
type DashboardHandler struct {
	shifts    service.ShiftService
	profiles  service.ProfileService
	feedback  service.FeedbackService
	documents service.DocumentService
}

func NewDashboardHandler(
	shifts service.ShiftService,
	profiles service.ProfileService,
	feedback service.FeedbackService,
	documents service.DocumentService,
) *DashboardHandler {
	return &DashboardHandler{shifts: shifts, profiles: profiles, feedback: feedback, documents: documents}
}

func (h *DashboardHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/shifts", h.ListOpenShifts)
	g.POST("/shifts/:id/apply", h.Apply)
	g.GET("/assignments", h.ListAssignments)
	g.GET("/profile", h.GetProfile)
	g.PUT("/profile", h.SaveProfile)
	g.POST("/feedback", h.SubmitFeedback)
	g.GET("/documents", h.ListDocuments)
}

func (h *DashboardHandler) ListOpenShifts(c echo.Context) error {
	open := models.ShiftOpen
	shifts, err := h.shifts.ListShifts(c.Request().Context(), repository.ShiftFilter{
		VenueID: c.QueryParam("venue_id"),
		Status:  &open,
	})
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, shifts)
}

func (h *DashboardHandler) Apply(c echo.Context) error {
	shiftID := c.Param("id")
	if shiftID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid shift id")
	}

	ac := middleware.AuthFromContext(c)
	assignment, err := h.shifts.Apply(c.Request().Context(), shiftID, ac.UserID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, assignment)
}

func (h *DashboardHandler) ListAssignments(c echo.Context) error {
	ac := middleware.AuthFromContext(c)
	assignments, err := h.shifts.ListAssignments(c.Request().Context(), ac.UserID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, assignments)
}

func (h *DashboardHandler) GetProfile(c echo.Context) error {
	ac := middleware.AuthFromContext(c)
	profile, err := h.profiles.GetProfile(c.Request().Context(), ac.UserID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *DashboardHandler) SaveProfile(c echo.Context) error {
	var values validation.ProfileFormValues
	if err := c.Bind(&values); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ac := middleware.AuthFromContext(c)
	profile, fieldErrs, err := h.profiles.SaveProfile(c.Request().Context(), ac.UserID, values)
	if err != nil {
		return internalError(err)
	}
	if len(fieldErrs) > 0 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, dto.NewValidationErrorResponse(fieldErrs))
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *DashboardHandler) SubmitFeedback(c echo.Context) error {
	var req dto.SubmitFeedbackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ac := middleware.AuthFromContext(c)
	feedback := &models.Feedback{
		VenueID:      req.VenueID,
		UserID:       ac.UserID,
		Rating:       req.Rating,
		MayNotReturn: req.MayNotReturn,
		Comment:      req.Comment,
	}
	if err := h.feedback.Submit(c.Request().Context(), feedback); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, feedback)
}

func (h *DashboardHandler) ListDocuments(c echo.Context) error {
	ac := middleware.AuthFromContext(c)
	docs, err := h.documents.ListForUser(c.Request().Context(), ac.UserID)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, docs)
}
