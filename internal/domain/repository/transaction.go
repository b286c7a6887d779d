package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it's committed. All repository operations within the
	// function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so a read-modify-write on one ledger row is atomic.
type RepositoryFactory interface {
	// NewAttendanceRepository returns an AttendanceRepository bound to the current transaction.
	NewAttendanceRepository() AttendanceRepository

	// NewTerminalRepository returns a TerminalRepository bound to the current transaction.
	NewTerminalRepository() TerminalRepository

	// NewEmployeeDirectory returns an EmployeeDirectory bound to the current transaction.
	NewEmployeeDirectory() EmployeeDirectory
}
