package dto

type CreateShiftRequest struct {
	VenueID      string   `json:"venue_id" validate:"required"`
	Date         string   `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    string   `json:"start_time" validate:"required,datetime=15:04"`
	EndTime      string   `json:"end_time" validate:"required,datetime=15:04"`
	Positions    int      `json:"positions" validate:"gte=0"`
	Requirements []string `json:"requirements"`
	HourlyRate   float64  `json:"hourly_rate" validate:"gte=0"`
	Description  string   `json:"description"`
}

type UpdateShiftStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=OPEN ASSIGNED COMPLETED"`
}

type UpdateAssignmentRequest struct {
	Status string `json:"status" validate:"required,oneof=CONFIRMED CANCELLED"`
}

type VenueRatesRequest struct {
	Weekday float64 `json:"weekday" validate:"gte=0"`
	Weekend float64 `json:"weekend" validate:"gte=0"`
	Hourly  float64 `json:"hourly" validate:"gte=0"`
}

type VenueRequest struct {
	Name        string            `json:"name" validate:"required"`
	Address     string            `json:"address"`
	Suburb      string            `json:"suburb"`
	Capacity    int               `json:"capacity" validate:"gte=0"`
	Amenities   []string          `json:"amenities"`
	Rates       VenueRatesRequest `json:"rates"`
	Description string            `json:"description"`
	ImageURL    string            `json:"image_url" validate:"omitempty,url"`
	Type        string            `json:"type"`
}

type SubmitFeedbackRequest struct {
	VenueID      string `json:"venue_id" validate:"required"`
	Rating       int    `json:"rating" validate:"gte=1,lte=5"`
	MayNotReturn bool   `json:"may_not_return"`
	Comment      string `json:"comment" validate:"max=2000"`
}

type ReviewFeedbackRequest struct {
	Status string `json:"status" validate:"required,oneof=REVIEWED RESOLVED"`
	Notes  string `json:"notes"`
}

type CreateDocumentRequest struct {
	Type    string  `json:"type" validate:"required,oneof=VENUE_GUIDE USER_GUIDE POLICY"`
	Title   string  `json:"title" validate:"required"`
	Content string  `json:"content"`
	VenueID *string `json:"venue_id"`
}

type GrantAccessRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	AccessType string `json:"access_type" validate:"required,oneof=VIEW EDIT"`
}
