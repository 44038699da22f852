package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Eursukkul/venue-staffing/internal/models"
	"github.com/Eursukkul/venue-staffing/internal/repository"
)

type shiftFixture struct {
	db    *gorm.DB
	svc   ShiftService
	pub   *recordingPublisher
	venue *models.Venue
}

func newShiftFixture(t *testing.T) *shiftFixture {
	t.Helper()

	db := setupTestDB(t)
	venues := repository.NewVenueRepository(db)
	venue := &models.Venue{Name: "The Velvet Room"}
	require.NoError(t, venues.Create(context.Background(), venue))

	pub := &recordingPublisher{}
	svc := NewShiftService(
		repository.NewShiftRepository(db),
		repository.NewAssignmentRepository(db),
		venues,
		pub,
		zap.NewNop(),
	)
	return &shiftFixture{db: db, svc: svc, pub: pub, venue: venue}
}

func (f *shiftFixture) createShift(t *testing.T, positions int) *models.Shift {
	t.Helper()
	shift := &models.Shift{
		VenueID:   f.venue.ID,
		Date:      "2026-03-06",
		StartTime: "21:00",
		EndTime:   "03:00",
		Positions: positions,
	}
	require.NoError(t, f.svc.CreateShift(context.Background(), shift))
	return shift
}

func TestCreateShift_Success(t *testing.T) {
	f := newShiftFixture(t)

	shift := f.createShift(t, 2)

	assert.NotEmpty(t, shift.ID)
	assert.Equal(t, models.ShiftOpen, shift.Status)
	assert.Equal(t, []string{KeyShiftCreated}, f.pub.Keys())
}

func TestCreateShift_UnknownVenue(t *testing.T) {
	f := newShiftFixture(t)

	err := f.svc.CreateShift(context.Background(), &models.Shift{VenueID: "nope", Date: "2026-03-06", StartTime: "21:00", EndTime: "23:00"})

	assert.ErrorIs(t, err, ErrVenueNotFound)
	assert.Empty(t, f.pub.Keys())
}

func TestCreateShift_InvalidStatus(t *testing.T) {
	f := newShiftFixture(t)

	err := f.svc.CreateShift(context.Background(), &models.Shift{VenueID: f.venue.ID, Status: "CLOSED"})

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestApply_Success(t *testing.T) {
	f := newShiftFixture(t)
	shift := f.createShift(t, 2)

	a, err := f.svc.Apply(context.Background(), shift.ID, "user-1")

	require.NoError(t, err)
	assert.Equal(t, models.AssignmentPending, a.Status)
	assert.Equal(t, shift.ID, a.ShiftID)
	assert.Equal(t, "user-1", a.UserID)
	assert.Contains(t, f.pub.Keys(), KeyAssignmentCreated)

	mine, err := f.svc.ListAssignments(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestApply_Twice(t *testing.T) {
	f := newShiftFixture(t)
	shift := f.createShift(t, 2)

	_, err := f.svc.Apply(context.Background(), shift.ID, "user-1")
	require.NoError(t, err)

	_, err = f.svc.Apply(context.Background(), shift.ID, "user-1")
	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestApply_AfterCancelAllowed(t *testing.T) {
	f := newShiftFixture(t)
	shift := f.createShift(t, 2)

	a, err := f.svc.Apply(context.Background(), shift.ID, "user-1")
	require.NoError(t, err)
	_, err = f.svc.UpdateAssignment(context.Background(), a.ID, models.AssignmentCancelled)
	require.NoError(t, err)

	again, err := f.svc.Apply(context.Background(), shift.ID, "user-1")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, again.ID)
}

func TestApply_ShiftNotFound(t *testing.T) {
	f := newShiftFixture(t)

	_, err := f.svc.Apply(context.Background(), "missing", "user-1")

	assert.ErrorIs(t, err, ErrShiftNotFound)
}

func TestApply_ShiftNotOpen(t *testing.T) {
	f := newShiftFixture(t)
	shift := f.createShift(t, 1)
	_, err := f.svc.AdvanceStatus(context.Background(), shift.ID, models.ShiftAssigned)
	require.NoError(t, err)

	_, err = f.svc.Apply(context.Background(), shift.ID, "user-1")

	assert.ErrorIs(t, err, ErrShiftNotOpen)
}

func TestUpdateAssignment_FillsShift(t *testing.T) {
	f := newShiftFixture(t)
	ctx := context.Background()
	shift := f.createShift(t, 2)

	a1, err := f.svc.Apply(ctx, shift.ID, "user-1")
	require.NoError(t, err)
	a2, err := f.svc.Apply(ctx, shift.ID, "user-2")
	require.NoError(t, err)

	_, err = f.svc.UpdateAssignment(ctx, a1.ID, models.AssignmentConfirmed)
	require.NoError(t, err)
	got, err := repository.NewShiftRepository(f.db).FindByID(ctx, shift.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ShiftOpen, got.Status, "one of two positions filled")

	updated, err := f.svc.UpdateAssignment(ctx, a2.ID, models.AssignmentConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentConfirmed, updated.Status)

	got, err = repository.NewShiftRepository(f.db).FindByID(ctx, shift.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ShiftAssigned, got.Status)
	assert.Contains(t, f.pub.Keys(), KeyShiftStatusChanged)
}

func TestUpdateAssignment_InvalidTransitions(t *testing.T) {
	f := newShiftFixture(t)
	ctx := context.Background()
	shift := f.createShift(t, 3)

	a, err := f.svc.Apply(ctx, shift.ID, "user-1")
	require.NoError(t, err)

	_, err = f.svc.UpdateAssignment(ctx, a.ID, models.AssignmentPending)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = f.svc.UpdateAssignment(ctx, a.ID, models.AssignmentCancelled)
	require.NoError(t, err)

	_, err = f.svc.UpdateAssignment(ctx, a.ID, models.AssignmentConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.svc.UpdateAssignment(ctx, "missing", models.AssignmentConfirmed)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestAdvanceStatus(t *testing.T) {
	f := newShiftFixture(t)
	ctx := context.Background()
	shift := f.createShift(t, 1)

	got, err := f.svc.AdvanceStatus(ctx, shift.ID, models.ShiftAssigned)
	require.NoError(t, err)
	assert.Equal(t, models.ShiftAssigned, got.Status)

	_, err = f.svc.AdvanceStatus(ctx, shift.ID, models.ShiftOpen)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.svc.AdvanceStatus(ctx, shift.ID, models.ShiftAssigned)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err = f.svc.AdvanceStatus(ctx, shift.ID, models.ShiftCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.ShiftCompleted, got.Status)

	_, err = f.svc.AdvanceStatus(ctx, shift.ID, "DONE")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = f.svc.AdvanceStatus(ctx, "missing", models.ShiftCompleted)
	assert.ErrorIs(t, err, ErrShiftNotFound)
}

func TestPublishFailureDoesNotFailWrite(t *testing.T) {
	f := newShiftFixture(t)
	f.pub.err = errBroker

	shift := f.createShift(t, 1)

	assert.NotEmpty(t, shift.ID)
	shifts, err := f.svc.ListShifts(context.Background(), repository.ShiftFilter{VenueID: f.venue.ID})
	require.NoError(t, err)
	assert.Len(t, shifts, 1)
	assert.True(t, errors.Is(f.pub.err, errBroker))
}

// cancellingAssignmentRepo cancels the assignment right after the first
// read, as a concurrent manager action would.
type cancellingAssignmentRepo struct {
	repository.AssignmentRepository
	done bool
}

func (r *cancellingAssignmentRepo) FindByID(ctx context.Context, tx *gorm.DB, id string) (*models.ShiftAssignment, error) {
	a, err := r.AssignmentRepository.FindByID(ctx, tx, id)
	if err == nil && !r.done {
		r.done = true
		if err := r.AssignmentRepository.UpdateStatus(ctx, tx, id, models.AssignmentCancelled); err != nil {
			return nil, err
		}
	}
	return a, err
}

func TestUpdateAssignment_CancelledMeanwhile(t *testing.T) {
	f := newShiftFixture(t)
	ctx := context.Background()
	shift := f.createShift(t, 1)
	a, err := f.svc.Apply(ctx, shift.ID, "user-1")
	require.NoError(t, err)

	venues := repository.NewVenueRepository(f.db)
	svc := NewShiftService(
		repository.NewShiftRepository(f.db),
		&cancellingAssignmentRepo{AssignmentRepository: repository.NewAssignmentRepository(f.db)},
		venues,
		f.pub,
		zap.NewNop(),
	)

	_, err = svc.UpdateAssignment(ctx, a.ID, models.AssignmentConfirmed)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err := repository.NewAssignmentRepository(f.db).FindByID(ctx, f.db, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentCancelled, got.Status)

	reloaded, err := repository.NewShiftRepository(f.db).FindByID(ctx, shift.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ShiftOpen, reloaded.Status, "a cancelled assignment never fills the shift")
}

func TestUpdateAssignment_ConfirmNeedsOpenShift(t *testing.T) {
	f := newShiftFixture(t)
	ctx := context.Background()

	full := f.createShift(t, 1)
	first, err := f.svc.Apply(ctx, full.ID, "user-1")
	require.NoError(t, err)
	late, err := f.svc.Apply(ctx, full.ID, "user-2")
	require.NoError(t, err)
	_, err = f.svc.UpdateAssignment(ctx, first.ID, models.AssignmentConfirmed)
	require.NoError(t, err)

	_, err = f.svc.UpdateAssignment(ctx, late.ID, models.AssignmentConfirmed)
	assert.ErrorIs(t, err, ErrShiftNotOpen, "shift is ASSIGNED and full")

	done := f.createShift(t, 2)
	pending, err := f.svc.Apply(ctx, done.ID, "user-3")
	require.NoError(t, err)
	_, err = f.svc.AdvanceStatus(ctx, done.ID, models.ShiftCompleted)
	require.NoError(t, err)

	_, err = f.svc.UpdateAssignment(ctx, pending.ID, models.AssignmentConfirmed)
	assert.ErrorIs(t, err, ErrShiftNotOpen)

	cancelled, err := f.svc.UpdateAssignment(ctx, pending.ID, models.AssignmentCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.AssignmentCancelled, cancelled.Status)
}
