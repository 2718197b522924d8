package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/principal"
)

// UserRepository defines the contract for user lookup and group membership.
// Users themselves are provisioned by the identity provider; this repository
// only reads them and maintains role membership.
type UserRepository interface {
	// Get retrieves a user by id with its resolved role set.
	Get(ctx context.Context, id kernel.UUID) (principal.Principal, error)

	// GetByUsername retrieves a user by login name with its resolved role set.
	GetByUsername(ctx context.Context, username string) (principal.Principal, error)

	// GetAllInRole retrieves every user holding the given role.
	GetAllInRole(ctx context.Context, role principal.Role) ([]principal.Principal, error)

	// AddToRole adds the user to the role's group. Adding an existing member
	// is a no-op.
	AddToRole(ctx context.Context, userID kernel.UUID, role principal.Role) error

	// RemoveFromRole removes the user from the role's group. Removing a
	// non-member is a no-op.
	RemoveFromRole(ctx context.Context, userID kernel.UUID, role principal.Role) error
}
