package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Eursukkul/venue-staffing/internal/auth"
	"github.com/Eursukkul/venue-staffing/internal/middleware"
	"github.com/Eursukkul/venue-staffing/internal/models"
	"github.com/Eursukkul/venue-staffing/internal/repository"
	"github.com/Eursukkul/venue-staffing/internal/validation"
)

// --- Mock ShiftService ---

type mockShiftService struct {
	createFn           func(ctx context.Context, shift *models.Shift) error
	listFn             func(ctx context.Context, filter repository.ShiftFilter) ([]models.Shift, error)
	advanceFn          func(ctx context.Context, shiftID string, next models.ShiftStatus) (*models.Shift, error)
	applyFn            func(ctx context.Context, shiftID, userID string) (*models.ShiftAssignment, error)
	listAssignmentsFn  func(ctx context.Context, userID string) ([]models.ShiftAssignment, error)
	updateAssignmentFn func(ctx context.Context, assignmentID string, status models.AssignmentStatus) (*models.ShiftAssignment, error)
}

func (m *mockShiftService) CreateShift(ctx context.Context, shift *models.Shift) error {
	return m.createFn(ctx, shift)
}
func (m *mockShiftService) ListShifts(ctx context.Context, filter repository.ShiftFilter) ([]models.Shift, error) {
	return m.listFn(ctx, filter)
}
func (m *mockShiftService) AdvanceStatus(ctx context.Context, shiftID string, next models.ShiftStatus) (*models.Shift, error) {
	return m.advanceFn(ctx, shiftID, next)
}
func (m *mockShiftService) Apply(ctx context.Context, shiftID, userID string) (*models.ShiftAssignment, error) {
	return m.applyFn(ctx, shiftID, userID)
}
func (m *mockShiftService) ListAssignments(ctx context.Context, userID string) ([]models.ShiftAssignment, error) {
	return m.listAssignmentsFn(ctx, userID)
}
func (m *mockShiftService) UpdateAssignment(ctx context.Context, assignmentID string, status models.AssignmentStatus) (*models.ShiftAssignment, error) {
	return m.updateAssignmentFn(ctx, assignmentID, status)
}

// --- Mock ProfileService ---

type mockProfileService struct {
	getFn  func(ctx context.Context, userID string) (*models.Profile, error)
	saveFn func(ctx context.Context, userID string, values validation.ProfileFormValues) (*models.Profile, validation.FieldErrors, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	return m.getFn(ctx, userID)
}
func (m *mockProfileService) SaveProfile(ctx context.Context, userID string, values validation.ProfileFormValues) (*models.Profile, validation.FieldErrors, error) {
	return m.saveFn(ctx, userID, values)
}

// --- Mock FeedbackService ---

type mockFeedbackService struct {
	submitFn func(ctx context.Context, feedback *models.Feedback) error
	listFn   func(ctx context.Context, filter repository.FeedbackFilter) ([]models.Feedback, error)
	reviewFn func(ctx context.Context, id string, status models.FeedbackStatus, reviewer, notes string) (*models.Feedback, error)
}

func (m *mockFeedbackService) Submit(ctx context.Context, feedback *models.Feedback) error {
	return m.submitFn(ctx, feedback)
}
func (m *mockFeedbackService) List(ctx context.Context, filter repository.FeedbackFilter) ([]models.Feedback, error) {
	return m.listFn(ctx, filter)
}
func (m *mockFeedbackService) Review(ctx context.Context, id string, status models.FeedbackStatus, reviewer, notes string) (*models.Feedback, error) {
	return m.reviewFn(ctx, id, status, reviewer, notes)
}

// --- Mock DocumentService ---

type mockDocumentService struct {
	createFn func(ctx context.Context, doc *models.Document) error
	grantFn  func(ctx context.Context, access *models.DocumentAccess) error
	listFn   func(ctx context.Context, userID string) ([]models.Document, error)
}

func (m *mockDocumentService) CreateDocument(ctx context.Context, doc *models.Document) error {
	return m.createFn(ctx, doc)
}
func (m *mockDocumentService) GrantAccess(ctx context.Context, access *models.DocumentAccess) error {
	return m.grantFn(ctx, access)
}
func (m *mockDocumentService) ListForUser(ctx context.Context, userID string) ([]models.Document, error) {
	return m.listFn(ctx, userID)
}

// --- Mock VenueService ---

type mockVenueService struct {
	createFn func(ctx context.Context, venue *models.Venue) error
	getFn    func(ctx context.Context, id string) (*models.Venue, error)
	listFn   func(ctx context.Context) ([]models.Venue, error)
	updateFn func(ctx context.Context, id string, apply func(v *models.Venue)) (*models.Venue, error)
}

func (m *mockVenueService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	return m.createFn(ctx, venue)
}
func (m *mockVenueService) GetVenue(ctx context.Context, id string) (*models.Venue, error) {
	return m.getFn(ctx, id)
}
func (m *mockVenueService) ListVenues(ctx context.Context) ([]models.Venue, error) {
	return m.listFn(ctx)
}
func (m *mockVenueService) UpdateVenue(ctx context.Context, id string, apply func(v *models.Venue)) (*models.Venue, error) {
	return m.updateFn(ctx, id, apply)
}

// --- Mock ActivityRepository ---

type mockActivityRepo struct {
	listFn func(ctx context.Context, limit int) ([]models.ActivityLog, error)
}

func (m *mockActivityRepo) Create(ctx context.Context, entry *models.ActivityLog) error { return nil }
func (m *mockActivityRepo) ListRecent(ctx context.Context, limit int) ([]models.ActivityLog, error) {
	return m.listFn(ctx, limit)
}

// --- Helpers ---

// newContext builds a request context on behalf of ac. An empty body sends no
// payload.
func newContext(method, target, body string, ac auth.AuthContext) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.WithAuth(c, ac)
	return c, rec
}

func caller(userID string, role auth.Role) auth.AuthContext {
	return auth.AuthContext{UserID: userID, Role: role, IsAuthenticated: true}
}
