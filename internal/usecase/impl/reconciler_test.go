package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/repository"
	mockRepo "timeclock/internal/mocks/repository"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// reconcilerFixtures holds all test dependencies for reconciler tests.
type reconcilerFixtures struct {
	reconciler usecase.PunchReconciler
	directory  *mockRepo.MockEmployeeDirectory
}

func createTestReconciler(t *testing.T) reconcilerFixtures {
	directory := mockRepo.NewMockEmployeeDirectory(t)
	reconciler := NewPunchReconciler(directory, newTestLogger())

	return reconcilerFixtures{
		reconciler: reconciler,
		directory:  directory,
	}
}

func punchAt(t *testing.T, biometricID, ts string, terminalID uuid.UUID) entity.RawPunch {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339, ts)
	require.NoError(t, err)

	return entity.RawPunch{
		BiometricID: biometricID,
		Timestamp:   parsed,
		TerminalID:  terminalID,
	}
}

func TestReconcile_SingleMorningPunchIsCheckIn(t *testing.T) {
	fixtures := createTestReconciler(t)

	ctx := context.Background()
	terminalID := uuid.New()
	emp := &entity.Employee{ID: uuid.New(), BiometricID: "101", DisplayName: "Asha Rao"}

	fixtures.directory.EXPECT().FindByBiometricID(ctx, "101").Return(emp, nil)

	candidates, stats := fixtures.reconciler.Reconcile(ctx, []entity.RawPunch{
		punchAt(t, "101", "2025-03-10T08:30:00Z", terminalID),
	}, time.UTC)

	require.Len(t, candidates, 1)
	assert.Equal(t, 1, stats.Resolved)
	assert.Equal(t, 0, stats.Unresolved)

	c := candidates[0]
	assert.Equal(t, emp.ID, c.EmployeeID)
	require.NotNil(t, c.CheckInAt)
	assert.Equal(t, "08:30", c.CheckInAt.Format("15:04"))
	assert.Nil(t, c.CheckOutAt)
}

func TestReconcile_SingleAfternoonPunchIsCheckOut(t *testing.T) {
	fixtures := createTestReconciler(t)

	ctx := context.Background()
	emp := &entity.Employee{ID: uuid.New(), BiometricID: "101", DisplayName: "Asha Rao"}

	fixtures.directory.EXPECT().FindByBiometricID(ctx, "101").Return(emp, nil)

	candidates, _ := fixtures.reconciler.Reconcile(ctx, []entity.RawPunch{
		punchAt(t, "101", "2025-03-10T14:00:00Z", uuid.New()),
	}, time.UTC)

	require.Len(t, candidates, 1)
	assert.Nil(t, candidates[0].CheckInAt)
	require.NotNil(t, candidates[0].CheckOutAt)
	assert.Equal(t, "14:00", candidates[0].CheckOutAt.Format("15:04"))
}

func TestReconcile_MultiplePunchesKeepFirstAndLast(t *testing.T) {
	fixtures := createTestReconciler(t)

	ctx := context.Background()
	terminalID := uuid.New()
	emp := &entity.Employee{ID: uuid.New(), BiometricID: "102", DisplayName: "Dev Menon"}

	fixtures.directory.EXPECT().FindByBiometricID(ctx, "102").Return(emp, nil)

	// Out of order on purpose; the reconciler must sort.
	candidates, stats := fixtures.reconciler.Reconcile(ctx, []entity.RawPunch{
		punchAt(t, "102", "2025-03-10T13:05:00Z", terminalID),
		punchAt(t, "102", "2025-03-10T18:02:00Z", terminalID),
		punchAt(t, "102", "2025-03-10T09:00:00Z", terminalID),
	}, time.UTC)

	require.Len(t, candidates, 1)
	assert.Equal(t, 3, stats.Resolved)

	c := candidates[0]
	require.NotNil(t, c.CheckInAt)
	require.NotNil(t, c.CheckOutAt)
	assert.Equal(t, "09:00", c.CheckInAt.Format("15:04"))
	assert.Equal(t, "18:02", c.CheckOutAt.Format("15:04"))
}

func TestReconcile_UnknownBiometricIDCountedNotDropped(t *testing.T) {
	fixtures := createTestReconciler(t)

	ctx := context.Background()
	emp := &entity.Employee{ID: uuid.New(), BiometricID: "101", DisplayName: "Asha Rao"}

	fixtures.directory.EXPECT().FindByBiometricID(ctx, "101").Return(emp, nil)
	fixtures.directory.EXPECT().FindByBiometricID(ctx, "999").Return(nil, repository.ErrEmployeeNotFound)

	candidates, stats := fixtures.reconciler.Reconcile(ctx, []entity.RawPunch{
		punchAt(t, "999", "2025-03-10T08:00:00Z", uuid.New()),
		punchAt(t, "101", "2025-03-10T08:30:00Z", uuid.New()),
	}, time.UTC)

	// The unknown punch increments the error counter by exactly one and the
	// rest of the batch still reconciles.
	assert.Equal(t, 1, stats.Unresolved)
	assert.Equal(t, 1, stats.Resolved)
	require.Len(t, candidates, 1)
	assert.Equal(t, "101", candidates[0].BiometricID)
}

func TestReconcile_UnknownIDResolvedOncePerPass(t *testing.T) {
	fixtures := createTestReconciler(t)

	ctx := context.Background()

	// One directory round trip even though the id punches twice.
	fixtures.directory.EXPECT().FindByBiometricID(ctx, "999").Return(nil, repository.ErrEmployeeNotFound).Once()

	candidates, stats := fixtures.reconciler.Reconcile(ctx, []entity.RawPunch{
		punchAt(t, "999", "2025-03-10T08:00:00Z", uuid.New()),
		punchAt(t, "999", "2025-03-10T17:00:00Z", uuid.New()),
	}, time.UTC)

	assert.Empty(t, candidates)
	assert.Equal(t, 2, stats.Unresolved)
}

func TestReconcile_DirectoryFailureCountedSeparately(t *testing.T) {
	fixtures := createTestReconciler(t)

	ctx := context.Background()

	fixtures.directory.EXPECT().FindByBiometricID(ctx, "101").Return(nil, errors.New("connection refused"))

	candidates, stats := fixtures.reconciler.Reconcile(ctx, []entity.RawPunch{
		punchAt(t, "101", "2025-03-10T08:30:00Z", uuid.New()),
	}, time.UTC)

	assert.Empty(t, candidates)
	assert.Equal(t, 0, stats.Unresolved)
	assert.Equal(t, 1, stats.Failed)
}

func TestReconcile_BucketsByLocalCalendarDay(t *testing.T) {
	fixtures := createTestReconciler(t)

	ctx := context.Background()
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	emp := &entity.Employee{ID: uuid.New(), BiometricID: "103", DisplayName: "Meera Pillai"}
	fixtures.directory.EXPECT().FindByBiometricID(ctx, "103").Return(emp, nil)

	// 2025-03-10T20:00Z is already 2025-03-11 01:30 in Kolkata; the two
	// punches land on different local days.
	candidates, _ := fixtures.reconciler.Reconcile(ctx, []entity.RawPunch{
		punchAt(t, "103", "2025-03-10T03:30:00Z", uuid.New()), // 09:00 local, Mar 10
		punchAt(t, "103", "2025-03-10T20:00:00Z", uuid.New()), // 01:30 local, Mar 11
	}, kolkata)

	require.Len(t, candidates, 2)
	assert.Equal(t, "2025-03-10", candidates[0].Date.Format(time.DateOnly))
	assert.Equal(t, "2025-03-11", candidates[1].Date.Format(time.DateOnly))

	// Each local day has one punch; the morning ones are check-ins.
	require.NotNil(t, candidates[0].CheckInAt)
	require.NotNil(t, candidates[1].CheckInAt)
}

func TestReconcile_StableCandidateOrder(t *testing.T) {
	fixtures := createTestReconciler(t)

	ctx := context.Background()
	empA := &entity.Employee{ID: uuid.New(), BiometricID: "101", DisplayName: "Asha Rao"}
	empB := &entity.Employee{ID: uuid.New(), BiometricID: "102", DisplayName: "Dev Menon"}

	fixtures.directory.EXPECT().FindByBiometricID(ctx, "101").Return(empA, nil)
	fixtures.directory.EXPECT().FindByBiometricID(ctx, "102").Return(empB, nil)

	candidates, _ := fixtures.reconciler.Reconcile(ctx, []entity.RawPunch{
		punchAt(t, "102", "2025-03-11T09:00:00Z", uuid.New()),
		punchAt(t, "101", "2025-03-10T09:00:00Z", uuid.New()),
		punchAt(t, "101", "2025-03-11T09:00:00Z", uuid.New()),
	}, time.UTC)

	require.Len(t, candidates, 3)
	assert.Equal(t, "101", candidates[0].BiometricID)
	assert.Equal(t, "2025-03-10", candidates[0].Date.Format(time.DateOnly))
	assert.Equal(t, "101", candidates[1].BiometricID)
	assert.Equal(t, "102", candidates[2].BiometricID)
}

func TestReconcile_EmptyInput(t *testing.T) {
	fixtures := createTestReconciler(t)

	candidates, stats := fixtures.reconciler.Reconcile(context.Background(), nil, time.UTC)

	assert.Empty(t, candidates)
	assert.Equal(t, usecase.ReconcileStats{}, stats)
}
