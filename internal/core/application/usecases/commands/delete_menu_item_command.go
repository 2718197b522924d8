package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/principal"
	"restaurant/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand represents a request to remove a catalog item.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	actor  principal.Principal
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteMenuItemCommand creates a command to delete the given menu item.
func NewDeleteMenuItemCommand(actor principal.Principal, itemID kernel.UUID) (DeleteMenuItemCommand, error) {
	deleteCommand := DeleteMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		itemID.Validate(),
	); err != nil {
		return DeleteMenuItemCommand{}, err
	}

	deleteCommand.actor = actor
	deleteCommand.itemID = itemID

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

// Actor returns the user performing the deletion.
func (c DeleteMenuItemCommand) Actor() principal.Principal {
	return c.actor
}

// ItemID returns the item being deleted.
func (c DeleteMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
