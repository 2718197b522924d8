package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/principal"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand represents a request to add an item to the catalog.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	actor      principal.Principal
	itemID     kernel.UUID
	title      string
	price      kernel.Money
	categoryID kernel.UUID
	featured   bool

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a menu item.
func NewCreateMenuItemCommand(
	actor principal.Principal,
	itemID kernel.UUID,
	title string,
	price kernel.Money,
	categoryID kernel.UUID,
	featured bool,
) (CreateMenuItemCommand, error) {
	itemCommand := CreateMenuItemCommand{
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
		categoryID.Validate(),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	itemCommand.actor = actor
	itemCommand.itemID = itemID
	itemCommand.title = title
	itemCommand.price = price
	itemCommand.categoryID = categoryID
	itemCommand.featured = featured

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// Actor returns the user performing the change.
func (c CreateMenuItemCommand) Actor() principal.Principal {
	return c.actor
}

// ItemID returns the identifier assigned to the new item.
func (c CreateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Title returns the item title.
func (c CreateMenuItemCommand) Title() string {
	return c.title
}

// Price returns the item price.
func (c CreateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// CategoryID returns the category the item belongs to.
func (c CreateMenuItemCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Featured reports whether the item is highlighted on the menu.
func (c CreateMenuItemCommand) Featured() bool {
	return c.featured
}
