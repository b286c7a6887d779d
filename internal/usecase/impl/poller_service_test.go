package impl

import (
	"context"
	"testing"
	"time"

	"timeclock/config"
	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/service"
	mockRepo "timeclock/internal/mocks/repository"
	mockService "timeclock/internal/mocks/service"
	mockUsecase "timeclock/internal/mocks/usecase"
	"timeclock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pollerFixtures holds all test dependencies for fleet poller tests.
type pollerFixtures struct {
	poller     usecase.FleetPoller
	terminals  *mockRepo.MockTerminalRepository
	dialer     *mockService.MockTerminalDialer
	reconciler *mockUsecase.MockPunchReconciler
	ledger     *mockUsecase.MockLedgerWriter
}

func createTestPoller(t *testing.T) pollerFixtures {
	terminals := mockRepo.NewMockTerminalRepository(t)
	dialer := mockService.NewMockTerminalDialer(t)
	reconciler := mockUsecase.NewMockPunchReconciler(t)
	ledger := mockUsecase.NewMockLedgerWriter(t)

	cfg := &config.Config{
		Poller: config.PollerConfig{
			Interval:      30 * time.Second,
			DeviceTimeout: time.Second,
			DeviceDelay:   0, // no politeness pause in tests
			Timezone:      "UTC",
		},
	}

	poller, err := NewFleetPoller(FleetPollerParams{
		Config:     cfg,
		Logger:     newTestLogger(),
		Terminals:  terminals,
		Dialer:     dialer,
		Reconciler: reconciler,
		Ledger:     ledger,
	})
	require.NoError(t, err)

	return pollerFixtures{
		poller:     poller,
		terminals:  terminals,
		dialer:     dialer,
		reconciler: reconciler,
		ledger:     ledger,
	}
}

func testTerminal(name string) *entity.Terminal {
	return &entity.Terminal{
		ID:        uuid.New(),
		Name:      name,
		IPAddress: "10.0.0.1",
		Port:      4370,
		Family:    entity.FamilyZKTeco,
		IsActive:  true,
	}
}

func TestRunOnce_ListFailureAbortsPass(t *testing.T) {
	fixtures := createTestPoller(t)

	fixtures.terminals.EXPECT().ListActive(mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := fixtures.poller.RunOnce(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list active terminals")
}

func TestRunOnce_UnreachableTerminalDoesNotAbortPass(t *testing.T) {
	fixtures := createTestPoller(t)

	healthy1 := testTerminal("gate-a")
	dead := testTerminal("gate-b")
	healthy2 := testTerminal("gate-c")

	punch := entity.RawPunch{BiometricID: "101", Timestamp: time.Now(), TerminalID: healthy1.ID}
	candidate := usecase.DayCandidate{EmployeeID: uuid.New(), BiometricID: "101"}

	fixtures.terminals.EXPECT().ListActive(mock.Anything).
		Return([]*entity.Terminal{healthy1, dead, healthy2}, nil)

	session := mockService.NewMockTerminalSession(t)
	session.EXPECT().FetchPunches(mock.Anything).Return([]entity.RawPunch{punch}, nil).Times(2)
	session.EXPECT().Close().Return(nil).Times(2)

	fixtures.dialer.EXPECT().Dial(mock.Anything, healthy1).Return(session, nil)
	fixtures.dialer.EXPECT().Dial(mock.Anything, dead).Return(nil, service.ErrTerminalUnreachable)
	fixtures.dialer.EXPECT().Dial(mock.Anything, healthy2).Return(session, nil)

	fixtures.reconciler.EXPECT().Reconcile(mock.Anything, []entity.RawPunch{punch}, time.UTC).
		Return([]usecase.DayCandidate{candidate}, usecase.ReconcileStats{Resolved: 1}).Times(2)
	fixtures.ledger.EXPECT().Apply(mock.Anything, candidate).Return(true, nil).Times(2)

	fixtures.terminals.EXPECT().UpdateLastSync(mock.Anything, healthy1.ID, mock.Anything).Return(nil)
	fixtures.terminals.EXPECT().UpdateLastSync(mock.Anything, healthy2.ID, mock.Anything).Return(nil)

	summary, err := fixtures.poller.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, summary.Synced)
	assert.Equal(t, 1, summary.Unreachable)
	assert.Equal(t, 0, summary.Errors)
}

func TestRunOnce_SessionClosedWhenFetchFails(t *testing.T) {
	fixtures := createTestPoller(t)

	terminal := testTerminal("gate-a")
	fixtures.terminals.EXPECT().ListActive(mock.Anything).Return([]*entity.Terminal{terminal}, nil)

	session := mockService.NewMockTerminalSession(t)
	session.EXPECT().FetchPunches(mock.Anything).Return(nil, errors.New("read timeout"))
	session.EXPECT().Close().Return(nil).Once()

	fixtures.dialer.EXPECT().Dial(mock.Anything, terminal).Return(session, nil)

	summary, err := fixtures.poller.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Unreachable)
}

func TestRunOnce_EmptyLogSkipsLastSync(t *testing.T) {
	fixtures := createTestPoller(t)

	terminal := testTerminal("gate-a")
	fixtures.terminals.EXPECT().ListActive(mock.Anything).Return([]*entity.Terminal{terminal}, nil)

	session := mockService.NewMockTerminalSession(t)
	session.EXPECT().FetchPunches(mock.Anything).Return(nil, nil)
	session.EXPECT().Close().Return(nil)

	fixtures.dialer.EXPECT().Dial(mock.Anything, terminal).Return(session, nil)
	// No UpdateLastSync expectation: a quiet terminal keeps its old stamp so
	// nothing is ever skipped on the next pass.

	summary, err := fixtures.poller.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, usecase.PollSummary{}, summary)
}

func TestRunOnce_CandidateFailureIsolated(t *testing.T) {
	fixtures := createTestPoller(t)

	terminal := testTerminal("gate-a")
	punch := entity.RawPunch{BiometricID: "101", Timestamp: time.Now(), TerminalID: terminal.ID}
	bad := usecase.DayCandidate{EmployeeID: uuid.New(), BiometricID: "101"}
	good := usecase.DayCandidate{EmployeeID: uuid.New(), BiometricID: "102"}

	fixtures.terminals.EXPECT().ListActive(mock.Anything).Return([]*entity.Terminal{terminal}, nil)

	session := mockService.NewMockTerminalSession(t)
	session.EXPECT().FetchPunches(mock.Anything).Return([]entity.RawPunch{punch}, nil)
	session.EXPECT().Close().Return(nil)

	fixtures.dialer.EXPECT().Dial(mock.Anything, terminal).Return(session, nil)

	fixtures.reconciler.EXPECT().Reconcile(mock.Anything, []entity.RawPunch{punch}, time.UTC).
		Return([]usecase.DayCandidate{bad, good}, usecase.ReconcileStats{Resolved: 1, Unresolved: 1})

	fixtures.ledger.EXPECT().Apply(mock.Anything, bad).Return(false, errors.New("deadlock detected"))
	fixtures.ledger.EXPECT().Apply(mock.Anything, good).Return(true, nil)

	fixtures.terminals.EXPECT().UpdateLastSync(mock.Anything, terminal.ID, mock.Anything).Return(nil)

	summary, err := fixtures.poller.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Synced)
	// One unresolved punch plus one failed write.
	assert.Equal(t, 2, summary.Errors)
}

func TestRunOnce_LastSyncFailureIsNonFatal(t *testing.T) {
	fixtures := createTestPoller(t)

	terminal := testTerminal("gate-a")
	punch := entity.RawPunch{BiometricID: "101", Timestamp: time.Now(), TerminalID: terminal.ID}
	candidate := usecase.DayCandidate{EmployeeID: uuid.New(), BiometricID: "101"}

	fixtures.terminals.EXPECT().ListActive(mock.Anything).Return([]*entity.Terminal{terminal}, nil)

	session := mockService.NewMockTerminalSession(t)
	session.EXPECT().FetchPunches(mock.Anything).Return([]entity.RawPunch{punch}, nil)
	session.EXPECT().Close().Return(nil)

	fixtures.dialer.EXPECT().Dial(mock.Anything, terminal).Return(session, nil)
	fixtures.reconciler.EXPECT().Reconcile(mock.Anything, []entity.RawPunch{punch}, time.UTC).
		Return([]usecase.DayCandidate{candidate}, usecase.ReconcileStats{Resolved: 1})
	fixtures.ledger.EXPECT().Apply(mock.Anything, candidate).Return(true, nil)

	fixtures.terminals.EXPECT().UpdateLastSync(mock.Anything, terminal.ID, mock.Anything).
		Return(errors.New("connection reset"))

	summary, err := fixtures.poller.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Synced)
	assert.Equal(t, 0, summary.Errors)
}

func TestRunOnce_CancelledContextStopsFleetWalk(t *testing.T) {
	fixtures := createTestPoller(t)

	fixtures.terminals.EXPECT().ListActive(mock.Anything).
		Return([]*entity.Terminal{testTerminal("gate-a"), testTerminal("gate-b")}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := fixtures.poller.RunOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, usecase.PollSummary{}, summary)
}
