package service

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrShiftNotOpen       = errors.New("shift is not open")
	ErrAlreadyApplied     = errors.New("user already has an active assignment for this shift")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidType        = errors.New("invalid type")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrVenueNotFound      = errors.New("venue not found")
	ErrFeedbackNotFound   = errors.New("feedback not found")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrInvalidDocument    = errors.New("venue_id must be set for venue guides and only for venue guides")
	ErrProfileNotFound    = errors.New("profile not found")
)
