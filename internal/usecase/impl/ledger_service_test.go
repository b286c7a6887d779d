package impl

import (
	"context"
	"testing"
	"time"

	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/repository"
	mockRepo "timeclock/internal/mocks/repository"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ledgerFixtures holds all test dependencies for ledger writer tests.
type ledgerFixtures struct {
	writer     usecase.LedgerWriter
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	attendance *mockRepo.MockAttendanceRepository
}

func createTestLedgerWriter(t *testing.T) ledgerFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	attendance := mockRepo.NewMockAttendanceRepository(t)

	// Run the transactional closure against the mocked factory.
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Maybe()

	return ledgerFixtures{
		writer:     NewLedgerWriter(txManager, newTestLogger()),
		txManager:  txManager,
		factory:    factory,
		attendance: attendance,
	}
}

func testCandidate(in, out string) usecase.DayCandidate {
	candidate := usecase.DayCandidate{
		EmployeeID:   uuid.New(),
		EmployeeName: "Asha Rao",
		BiometricID:  "101",
		Date:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		TerminalID:   uuid.New(),
	}

	if in != "" {
		ts, _ := time.Parse(time.RFC3339, "2025-03-10T"+in+":00Z")
		candidate.CheckInAt = &ts
	}
	if out != "" {
		ts, _ := time.Parse(time.RFC3339, "2025-03-10T"+out+":00Z")
		candidate.CheckOutAt = &ts
	}

	return candidate
}

func TestApply_FillsFreshRecord(t *testing.T) {
	fixtures := createTestLedgerWriter(t)

	ctx := context.Background()
	candidate := testCandidate("09:00", "18:02")
	record := &entity.AttendanceRecord{
		ID:         uuid.New(),
		EmployeeID: candidate.EmployeeID,
		Date:       candidate.Date,
		Status:     entity.StatusPresent,
	}

	fixtures.factory.EXPECT().NewAttendanceRepository().Return(fixtures.attendance)
	fixtures.attendance.EXPECT().
		GetOrCreateForUpdate(ctx, candidate.EmployeeID, candidate.Date, candidate.TerminalID).
		Return(record, true, nil)
	fixtures.attendance.EXPECT().Save(ctx, record).Return(nil)

	updated, err := fixtures.writer.Apply(ctx, candidate)

	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, candidate.CheckInAt, record.CheckInAt)
	assert.Equal(t, candidate.CheckOutAt, record.CheckOutAt)
	require.NotNil(t, record.TerminalID)
	assert.Equal(t, candidate.TerminalID, *record.TerminalID)
}

func TestApply_ReplayIsNoOp(t *testing.T) {
	fixtures := createTestLedgerWriter(t)

	ctx := context.Background()
	candidate := testCandidate("09:00", "18:02")
	record := &entity.AttendanceRecord{
		ID:         uuid.New(),
		EmployeeID: candidate.EmployeeID,
		Date:       candidate.Date,
		CheckInAt:  candidate.CheckInAt,
		CheckOutAt: candidate.CheckOutAt,
		Status:     entity.StatusPresent,
	}

	fixtures.factory.EXPECT().NewAttendanceRepository().Return(fixtures.attendance)
	fixtures.attendance.EXPECT().
		GetOrCreateForUpdate(ctx, candidate.EmployeeID, candidate.Date, candidate.TerminalID).
		Return(record, false, nil)
	// No Save expectation: replaying the same window must not touch the row.

	updated, err := fixtures.writer.Apply(ctx, candidate)

	require.NoError(t, err)
	assert.False(t, updated)
}

func TestApply_NeverOverwritesCheckIn(t *testing.T) {
	fixtures := createTestLedgerWriter(t)

	ctx := context.Background()
	candidate := testCandidate("09:15", "18:02")
	existingIn := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	record := &entity.AttendanceRecord{
		ID:         uuid.New(),
		EmployeeID: candidate.EmployeeID,
		Date:       candidate.Date,
		CheckInAt:  &existingIn,
		Status:     entity.StatusPresent,
	}

	fixtures.factory.EXPECT().NewAttendanceRepository().Return(fixtures.attendance)
	fixtures.attendance.EXPECT().
		GetOrCreateForUpdate(ctx, candidate.EmployeeID, candidate.Date, candidate.TerminalID).
		Return(record, false, nil)
	fixtures.attendance.EXPECT().Save(ctx, record).Return(nil)

	updated, err := fixtures.writer.Apply(ctx, candidate)

	require.NoError(t, err)
	assert.True(t, updated)

	// Check-in keeps its first-seen value; only the missing check-out fills.
	assert.Equal(t, existingIn, *record.CheckInAt)
	assert.Equal(t, candidate.CheckOutAt, record.CheckOutAt)
}

func TestApply_SaveErrorPropagates(t *testing.T) {
	fixtures := createTestLedgerWriter(t)

	ctx := context.Background()
	candidate := testCandidate("09:00", "")
	record := &entity.AttendanceRecord{
		ID:         uuid.New(),
		EmployeeID: candidate.EmployeeID,
		Date:       candidate.Date,
		Status:     entity.StatusPresent,
	}

	fixtures.factory.EXPECT().NewAttendanceRepository().Return(fixtures.attendance)
	fixtures.attendance.EXPECT().
		GetOrCreateForUpdate(ctx, candidate.EmployeeID, candidate.Date, candidate.TerminalID).
		Return(record, true, nil)
	fixtures.attendance.EXPECT().Save(ctx, record).Return(errors.New("deadlock detected"))

	updated, err := fixtures.writer.Apply(ctx, candidate)

	require.Error(t, err)
	assert.False(t, updated)
	assert.Contains(t, err.Error(), "failed to save attendance record")
}

func TestApply_LoadErrorPropagates(t *testing.T) {
	fixtures := createTestLedgerWriter(t)

	ctx := context.Background()
	candidate := testCandidate("09:00", "")

	fixtures.factory.EXPECT().NewAttendanceRepository().Return(fixtures.attendance)
	fixtures.attendance.EXPECT().
		GetOrCreateForUpdate(ctx, candidate.EmployeeID, candidate.Date, candidate.TerminalID).
		Return(nil, false, errors.New("connection reset"))

	updated, err := fixtures.writer.Apply(ctx, candidate)

	require.Error(t, err)
	assert.False(t, updated)
}
