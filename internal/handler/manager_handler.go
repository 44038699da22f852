package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Eursukkul/venue-staffing/internal/dto"
	"github.com/Eursukkul/venue-staffing/internal/middleware"
	"github.com/Eursukkul/venue-staffing/internal/models"
	"github.com/Eursukkul/venue-staffing/internal/repository"
	"github.com/Eursukkul/venue-staffing/internal/service"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

type ManagerHandler struct {
	shifts    service.ShiftService
	feedback  service.FeedbackService
	documents service.DocumentService
	activity  repository.ActivityRepository
}

func NewManagerHandler(
	shifts service.ShiftService,
	feedback service.FeedbackService,
	documents service.DocumentService,
	activity repository.ActivityRepository,
) *ManagerHandler {
	return &ManagerHandler{shifts: shifts, feedback: feedback, documents: documents, activity: activity}
}

func (h *ManagerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/shifts", h.ListShifts)
	g.POST("/shifts", h.CreateShift)
	g.PATCH("/shifts/:id/status", h.UpdateShiftStatus)
	g.PATCH("/assignments/:id", h.UpdateAssignment)
	g.GET("/feedback", h.ListFeedback)
	g.PATCH("/feedback/:id/review", h.ReviewFeedback)
	g.POST("/documents", h.CreateDocument)
	g.POST("/documents/:id/access", h.GrantAccess)
	g.GET("/activity", h.ListActivity)
}

func (h *ManagerHandler) ListShifts(c echo.Context) error {
	filter := repository.ShiftFilter{VenueID: c.QueryParam("venue_id")}
	if s := c.QueryParam("status"); s != "" {
		status := models.ShiftStatus(s)
		if !status.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status filter")
		}
		filter.Status = &status
	}

	shifts, err := h.shifts.ListShifts(c.Request().Context(), filter)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, shifts)
}

func (h *ManagerHandler) CreateShift(c echo.Context) error {
	var req dto.CreateShiftRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	shift := &models.Shift{
		VenueID:      req.VenueID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Status:       models.ShiftOpen,
		Positions:    req.Positions,
		Requirements: req.Requirements,
		HourlyRate:   req.HourlyRate,
		Description:  req.Description,
	}
	if err := h.shifts.CreateShift(c.Request().Context(), shift); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, shift)
}

func (h *ManagerHandler) UpdateShiftStatus(c echo.Context) error {
	var req dto.UpdateShiftStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	shift, err := h.shifts.AdvanceStatus(c.Request().Context(), c.Param("id"), models.ShiftStatus(req.Status))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, shift)
}

func (h *ManagerHandler) UpdateAssignment(c echo.Context) error {
	var req dto.UpdateAssignmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	assignment, err := h.shifts.UpdateAssignment(c.Request().Context(), c.Param("id"), models.AssignmentStatus(req.Status))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, assignment)
}

func (h *ManagerHandler) ListFeedback(c echo.Context) error {
	filter := repository.FeedbackFilter{VenueID: c.QueryParam("venue_id")}
	if s := c.QueryParam("status"); s != "" {
		status := models.FeedbackStatus(s)
		if !status.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status filter")
		}
		filter.Status = &status
	}

	items, err := h.feedback.List(c.Request().Context(), filter)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ManagerHandler) ReviewFeedback(c echo.Context) error {
	var req dto.ReviewFeedbackRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ac := middleware.AuthFromContext(c)
	feedback, err := h.feedback.Review(c.Request().Context(), c.Param("id"), models.FeedbackStatus(req.Status), ac.UserID, req.Notes)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, feedback)
}

func (h *ManagerHandler) CreateDocument(c echo.Context) error {
	var req dto.CreateDocumentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ac := middleware.AuthFromContext(c)
	doc := &models.Document{
		Type:      models.DocumentType(req.Type),
		Title:     req.Title,
		Content:   req.Content,
		VenueID:   req.VenueID,
		CreatedBy: ac.UserID,
	}
	if err := h.documents.CreateDocument(c.Request().Context(), doc); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, doc)
}

func (h *ManagerHandler) GrantAccess(c echo.Context) error {
	var req dto.GrantAccessRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ac := middleware.AuthFromContext(c)
	access := &models.DocumentAccess{
		DocumentID: c.Param("id"),
		UserID:     req.UserID,
		AccessType: models.AccessType(req.AccessType),
		GrantedBy:  ac.UserID,
	}
	if err := h.documents.GrantAccess(c.Request().Context(), access); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, access)
}

func (h *ManagerHandler) ListActivity(c echo.Context) error {
	limit := defaultActivityLimit
	if s := c.QueryParam("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = min(n, maxActivityLimit)
	}

	entries, err := h.activity.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, entries)
}
