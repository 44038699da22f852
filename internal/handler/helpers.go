package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Eursukkul/venue-staffing/internal/dto"
	"github.com/Eursukkul/venue-staffing/internal/service"
	"github.com/Eursukkul/venue-staffing/internal/validation"
)

// bindAndValidate decodes the body into req and runs its validate tags.
// Rule failures come back as a 422 carrying every failing field.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	fieldErrs, err := validation.Struct(req, nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(fieldErrs) > 0 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, dto.NewValidationErrorResponse(fieldErrs))
	}
	return nil
}

func mapServiceError(err error) error {
	switch {
	case errors.Is(err, service.ErrShiftNotFound),
		errors.Is(err, service.ErrAssignmentNotFound),
		errors.Is(err, service.ErrVenueNotFound),
		errors.Is(err, service.ErrFeedbackNotFound),
		errors.Is(err, service.ErrDocumentNotFound),
		errors.Is(err, service.ErrProfileNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrShiftNotOpen),
		errors.Is(err, service.ErrAlreadyApplied),
		errors.Is(err, service.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidType),
		errors.Is(err, service.ErrInvalidDocument):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return internalError(err)
	}
}

// internalError hides err from the client; the error handler still logs it.
func internalError(err error) error {
	return echo.NewHTTPError(http.StatusInternalServerError, msgInternal).SetInternal(err)
}

const msgInternal = "internal server error"
