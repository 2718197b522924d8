package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/principal"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand represents a request to add a menu category.
// The slug is derived from the title, not supplied by the caller.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	actor      principal.Principal
	categoryID kernel.UUID
	title      string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a command to add a category.
func NewCreateCategoryCommand(
	actor principal.Principal,
	categoryID kernel.UUID,
	title string,
) (CreateCategoryCommand, error) {
	categoryCommand := CreateCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	var titleErr error
	if title == "" {
		titleErr = errs.NewValueIsRequiredError("title")
	}

	if err := errors.Join(
		actor.Validate(),
		categoryID.Validate(),
		titleErr,
	); err != nil {
		return CreateCategoryCommand{}, err
	}

	categoryCommand.actor = actor
	categoryCommand.categoryID = categoryID
	categoryCommand.title = title

	return categoryCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// Actor returns the user performing the change.
func (c CreateCategoryCommand) Actor() principal.Principal {
	return c.actor
}

// CategoryID returns the identifier assigned to the new category.
func (c CreateCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Title returns the category title.
func (c CreateCategoryCommand) Title() string {
	return c.title
}
