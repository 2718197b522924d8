package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/principal"
	"restaurant/internal/pkg/guard"
)

var ErrReplaceOrderCommandIsNotConstructed = errors.New(
	"ReplaceOrderCommand must be created via NewReplaceOrderCommand constructor",
)

// ReplaceOrderCommand represents a full update of an order's mutable state:
// its status and its delivery crew assignment. A nil crew identifier
// unassigns the order. Total, date, and items never change after placement.
type ReplaceOrderCommand struct { //nolint:recvcheck //using for validation
	actor          principal.Principal
	orderID        kernel.UUID
	status         order.Status
	deliveryCrewID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewReplaceOrderCommand creates a command to replace an order's mutable
// fields on behalf of the acting user.
func NewReplaceOrderCommand(
	actor principal.Principal,
	orderID kernel.UUID,
	status order.Status,
	deliveryCrewID *kernel.UUID,
) (ReplaceOrderCommand, error) {
	replaceCommand := ReplaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		replaceCommand.setActor(actor),
		replaceCommand.setOrderID(orderID),
		replaceCommand.setStatus(status),
		replaceCommand.setDeliveryCrewID(deliveryCrewID),
	); err != nil {
		return ReplaceOrderCommand{}, err
	}

	return replaceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrReplaceOrderCommandIsNotConstructed)
}

// Actor returns the user performing the update.
func (c ReplaceOrderCommand) Actor() principal.Principal {
	return c.actor
}

// OrderID returns the order being updated.
func (c ReplaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target order status.
func (c ReplaceOrderCommand) Status() order.Status {
	return c.status
}

// DeliveryCrewID returns the crew member to assign, or nil to unassign.
func (c ReplaceOrderCommand) DeliveryCrewID() *kernel.UUID {
	return c.deliveryCrewID
}

func (c *ReplaceOrderCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ReplaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReplaceOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *ReplaceOrderCommand) setDeliveryCrewID(deliveryCrewID *kernel.UUID) error {
	if deliveryCrewID != nil {
		if err := deliveryCrewID.Validate(); err != nil {
			return err
		}
	}

	c.deliveryCrewID = deliveryCrewID
	return nil
}
