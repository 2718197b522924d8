package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/principal"
	"restaurant/internal/pkg/guard"
)

var ErrRemoveGroupMemberCommandIsNotConstructed = errors.New(
	"RemoveGroupMemberCommand must be created via NewRemoveGroupMemberCommand constructor",
)

// RemoveGroupMemberCommand represents a request to revoke a role from a
// user, addressed by id the way group deletion requests arrive.
type RemoveGroupMemberCommand struct { //nolint:recvcheck //using for validation
	actor  principal.Principal
	userID kernel.UUID
	role   principal.Role

	guard guard.ConstructorGuard
}

// NewRemoveGroupMemberCommand creates a command to remove the user from the
// role's group.
func NewRemoveGroupMemberCommand(
	actor principal.Principal,
	userID kernel.UUID,
	role principal.Role,
) (RemoveGroupMemberCommand, error) {
	memberCommand := RemoveGroupMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		userID.Validate(),
		role.Validate(),
	); err != nil {
		return RemoveGroupMemberCommand{}, err
	}

	memberCommand.actor = actor
	memberCommand.userID = userID
	memberCommand.role = role

	return memberCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveGroupMemberCommand) Validate() error {
	return c.guard.Validate(ErrRemoveGroupMemberCommandIsNotConstructed)
}

// Actor returns the user performing the change.
func (c RemoveGroupMemberCommand) Actor() principal.Principal {
	return c.actor
}

// UserID returns the user being removed.
func (c RemoveGroupMemberCommand) UserID() kernel.UUID {
	return c.userID
}

// Role returns the role being revoked.
func (c RemoveGroupMemberCommand) Role() principal.Role {
	return c.role
}
