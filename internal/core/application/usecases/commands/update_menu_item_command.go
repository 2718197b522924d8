package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/principal"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a full replacement of a catalog item's
// editable fields.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	actor    principal.Principal
	itemID   kernel.UUID
	title    string
	price    kernel.Money
	featured bool

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to update a menu item.
func NewUpdateMenuItemCommand(
	actor principal.Principal,
	itemID kernel.UUID,
	title string,
	price kernel.Money,
	featured bool,
) (UpdateMenuItemCommand, error) {
	itemCommand := UpdateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	var titleErr error
	if title == "" {
		titleErr = errs.NewValueIsRequiredError("title")
	}

	if err := errors.Join(
		actor.Validate(),
		itemID.Validate(),
		titleErr,
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	itemCommand.actor = actor
	itemCommand.itemID = itemID
	itemCommand.title = title
	itemCommand.price = price
	itemCommand.featured = featured

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// Actor returns the user performing the change.
func (c UpdateMenuItemCommand) Actor() principal.Principal {
	return c.actor
}

// ItemID returns the item being updated.
func (c UpdateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Title returns the new item title.
func (c UpdateMenuItemCommand) Title() string {
	return c.title
}

// Price returns the new item price.
func (c UpdateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// Featured reports whether the item is highlighted on the menu.
func (c UpdateMenuItemCommand) Featured() bool {
	return c.featured
}
