package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/principal"
	"restaurant/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to remove an order and its items.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	actor   principal.Principal
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete the given order on
// behalf of the acting user.
func NewDeleteOrderCommand(actor principal.Principal, orderID kernel.UUID) (DeleteOrderCommand, error) {
	deleteCommand := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
	); err != nil {
		return DeleteOrderCommand{}, err
	}

	deleteCommand.actor = actor
	deleteCommand.orderID = orderID

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// Actor returns the user performing the deletion.
func (c DeleteOrderCommand) Actor() principal.Principal {
	return c.actor
}

// OrderID returns the order being deleted.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
