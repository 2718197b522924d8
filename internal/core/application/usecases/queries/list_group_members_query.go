package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/principal"
	"restaurant/internal/pkg/guard"
)

var ErrListGroupMembersQueryIsNotConstructed = errors.New(
	"ListGroupMembersQuery must be created via NewListGroupMembersQuery constructor",
)

// ListGroupMembersQuery retrieves every user holding a role. Manager only.
type ListGroupMembersQuery struct {
	actor principal.Principal
	role  principal.Role

	guard guard.ConstructorGuard
}

// NewListGroupMembersQuery creates a query listing the role's members on
// behalf of the actor.
func NewListGroupMembersQuery(actor principal.Principal, role principal.Role) (ListGroupMembersQuery, error) {
	if err := errors.Join(
		actor.Validate(),
		role.Validate(),
	); err != nil {
		return ListGroupMembersQuery{}, err
	}

	return ListGroupMembersQuery{
		actor: actor,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListGroupMembersQuery) Validate() error {
	return q.guard.Validate(ErrListGroupMembersQueryIsNotConstructed)
}

// Actor returns the user requesting the listing.
func (q ListGroupMembersQuery) Actor() principal.Principal {
	return q.actor
}

// Role returns the role whose members are listed.
func (q ListGroupMembersQuery) Role() principal.Role {
	return q.role
}

// GroupMemberResponse represents one member of a role's group.
type GroupMemberResponse struct {
	ID       kernel.UUID
	Username string
}
