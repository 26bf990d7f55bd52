package repositories

import (
	"context"

	"github.com/SscSPs/expense_approval_app/internal/core/domain"
)

// Directory is the read-only view of the organisation chart used to route approvals.
type Directory interface {
	// GetManager returns the manager of the user, or nil when the user has none.
	GetManager(ctx context.Context, userID string) (*domain.User, error)

	// FindActiveAdmin returns one active admin of the company, or nil when there is none.
	FindActiveAdmin(ctx context.Context, companyID string) (*domain.User, error)
}

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListSubordinateIDs returns the IDs of the users whose manager is managerID.
	ListSubordinateIDs(ctx context.Context, managerID string) ([]string, error)
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	Directory
	UserReader
}
