package dto

import (
	"github.com/Eursukkul/venue-staffing/internal/auth"
	"github.com/Eursukkul/venue-staffing/internal/validation"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Message string                 `json:"message"`
	Errors  validation.FieldErrors `json:"errors"`
}

func NewValidationErrorResponse(errs validation.FieldErrors) ValidationErrorResponse {
	return ValidationErrorResponse{Message: "validation failed", Errors: errs}
}

type SetupResponse struct {
	Message string `json:"message"`
}

type SetupErrorResponse struct {
	Error string `json:"error"`
}

type SessionResponse struct {
	UserID          string   `json:"user_id,omitempty"`
	Role            string   `json:"role,omitempty"`
	IsAuthenticated bool     `json:"is_authenticated"`
	Sections        []string `json:"sections"`
}

type AccessResponse struct {
	Path     string `json:"path"`
	Section  string `json:"section,omitempty"`
	Decision string `json:"decision"`
}

func ToSessionResponse(ac auth.AuthContext, sections []string) SessionResponse {
	if sections == nil {
		sections = []string{}
	}
	return SessionResponse{
		UserID:          ac.UserID,
		Role:            string(ac.Role),
		IsAuthenticated: ac.IsAuthenticated,
		Sections:        sections,
	}
}
