package principal

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrPrincipalIsNotConstructed is returned when a Principal instance was
	// not created through the NewPrincipal factory method.
	ErrPrincipalIsNotConstructed = errors.New("Principal must be created via NewPrincipal constructor")
)

// Principal is the authenticated actor making a request, with its role set
// resolved once at the boundary. The core never queries group membership ad
// hoc: every authorization decision takes the Principal's explicit roles,
// which keeps the access policy pure and independently testable.
//
// A Principal with no roles is a plain customer. A superuser is treated as a
// Manager everywhere.
type Principal struct {
	// id is the unique identifier of the authenticated user
	id kernel.UUID

	// username is the login name, used by group membership operations
	username string

	// roles is the resolved set of group memberships
	roles []Role

	// isSuperuser marks an administrative account; implies the Manager role
	isSuperuser bool

	// isConstructed ensures the principal was created via NewPrincipal
	isConstructed bool
}

// NewPrincipal creates a validated Principal.
//
// Parameters:
//   - id: the user's unique identifier (must be a valid UUID)
//   - username: the login name (must not be empty)
//   - roles: resolved group memberships (each must be a valid Role)
//   - isSuperuser: whether the account is an administrative superuser
//
// Returns a validation error if the id is invalid, the username is empty, or
// any role is unrecognized.
func NewPrincipal(id kernel.UUID, username string, roles []Role, isSuperuser bool) (Principal, error) {
	if err := id.Validate(); err != nil {
		return Principal{}, err
	}
	if username == "" {
		return Principal{}, errs.NewValueIsRequiredError("username")
	}
	for _, role := range roles {
		if err := role.Validate(); err != nil {
			return Principal{}, err
		}
	}

	return Principal{
		id:            id,
		username:      username,
		roles:         roles,
		isSuperuser:   isSuperuser,
		isConstructed: true,
	}, nil
}

// Validate ensures the Principal was properly constructed through NewPrincipal.
func (p Principal) Validate() error {
	if !p.isConstructed {
		return ErrPrincipalIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (p Principal) ID() kernel.UUID {
	return p.id
}

// Username returns the login name.
func (p Principal) Username() string {
	return p.username
}

// Roles returns a copy of the resolved role set.
func (p Principal) Roles() []Role {
	out := make([]Role, len(p.roles))
	copy(out, p.roles)
	return out
}

// IsSuperuser reports whether the account is an administrative superuser.
func (p Principal) IsSuperuser() bool {
	return p.isSuperuser
}

// HasRole reports membership in a specific group.
// Superuser status does not count as group membership here; use IsManager for
// permission checks.
func (p Principal) HasRole(role Role) bool {
	for _, r := range p.roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsManager reports whether the principal holds Manager rights.
// Superusers are managers everywhere.
func (p Principal) IsManager() bool {
	return p.isSuperuser || p.HasRole(RoleManager)
}

// IsDeliveryCrew reports membership in the delivery crew group.
func (p Principal) IsDeliveryCrew() bool {
	return p.HasRole(RoleDeliveryCrew)
}

// IsCustomerOnly reports whether the principal belongs to no recognized group
// and is not a superuser. Such principals see only their own resources.
func (p Principal) IsCustomerOnly() bool {
	return !p.isSuperuser && len(p.roles) == 0
}
