package user

import "context"

// UserRepository defines data access for the user directory.
type UserRepository interface {
	// Create inserts a new user. Returns ErrUserEmailExists or
	// ErrEmployeeCodeExists when a unique constraint is violated.
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by primary id.
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByEmployeeCode retrieves a user by their ordinal employee code.
	GetByEmployeeCode(ctx context.Context, code string) (User, error)

	// ListByRole retrieves every user with the given role, oldest first.
	ListByRole(ctx context.Context, role Role) ([]User, error)
}

// CounterRepository allocates monotonically increasing sequence numbers.
// NextSequence must be atomic so concurrent registrations never receive
// the same ordinal.
type CounterRepository interface {
	NextSequence(ctx context.Context, name string) (int64, error)
}
