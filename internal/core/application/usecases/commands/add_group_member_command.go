package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/principal"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrAddGroupMemberCommandIsNotConstructed = errors.New(
	"AddGroupMemberCommand must be created via NewAddGroupMemberCommand constructor",
)

// AddGroupMemberCommand represents a request to grant a role to a user,
// addressed by username the way group membership requests arrive.
type AddGroupMemberCommand struct { //nolint:recvcheck //using for validation
	actor    principal.Principal
	username string
	role     principal.Role

	guard guard.ConstructorGuard
}

// NewAddGroupMemberCommand creates a command to add the named user to the
// role's group.
func NewAddGroupMemberCommand(
	actor principal.Principal,
	username string,
	role principal.Role,
) (AddGroupMemberCommand, error) {
	memberCommand := AddGroupMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		memberCommand.setActor(actor),
		memberCommand.setUsername(username),
		memberCommand.setRole(role),
	); err != nil {
		return AddGroupMemberCommand{}, err
	}

	return memberCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddGroupMemberCommand) Validate() error {
	return c.guard.Validate(ErrAddGroupMemberCommandIsNotConstructed)
}

// Actor returns the user performing the change.
func (c AddGroupMemberCommand) Actor() principal.Principal {
	return c.actor
}

// Username returns the login name of the user being added.
func (c AddGroupMemberCommand) Username() string {
	return c.username
}

// Role returns the role being granted.
func (c AddGroupMemberCommand) Role() principal.Role {
	return c.role
}

func (c *AddGroupMemberCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AddGroupMemberCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}

	c.username = username
	return nil
}

func (c *AddGroupMemberCommand) setRole(role principal.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
