package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/principal"
	"restaurant/internal/pkg/guard"
)

var ErrPartialUpdateOrderCommandIsNotConstructed = errors.New(
	"PartialUpdateOrderCommand must be created via NewPartialUpdateOrderCommand constructor",
)

// PartialUpdateOrderCommand represents a partial update of an order.
// A nil field means the caller did not send it; unassignCrew distinguishes
// "assign nobody" from "leave the assignment alone". ExtraFields carries
// any payload keys outside the updatable set, so the handler can reject a
// delivery crew request that strays beyond status.
type PartialUpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actor          principal.Principal
	orderID        kernel.UUID
	status         *order.Status
	deliveryCrewID *kernel.UUID
	unassignCrew   bool
	extraFields    []string

	guard guard.ConstructorGuard
}

// NewPartialUpdateOrderCommand creates a command carrying only the fields
// the caller actually sent.
func NewPartialUpdateOrderCommand(
	actor principal.Principal,
	orderID kernel.UUID,
	status *order.Status,
	deliveryCrewID *kernel.UUID,
	unassignCrew bool,
	extraFields []string,
) (PartialUpdateOrderCommand, error) {
	updateCommand := PartialUpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setActor(actor),
		updateCommand.setOrderID(orderID),
		updateCommand.setStatus(status),
		updateCommand.setDeliveryCrewID(deliveryCrewID),
	); err != nil {
		return PartialUpdateOrderCommand{}, err
	}

	updateCommand.unassignCrew = unassignCrew
	updateCommand.extraFields = extraFields

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PartialUpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrPartialUpdateOrderCommandIsNotConstructed)
}

// Actor returns the user performing the update.
func (c PartialUpdateOrderCommand) Actor() principal.Principal {
	return c.actor
}

// OrderID returns the order being updated.
func (c PartialUpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target status, or nil when not sent.
func (c PartialUpdateOrderCommand) Status() *order.Status {
	return c.status
}

// DeliveryCrewID returns the crew member to assign, or nil when not sent.
func (c PartialUpdateOrderCommand) DeliveryCrewID() *kernel.UUID {
	return c.deliveryCrewID
}

// UnassignCrew reports whether the caller explicitly cleared the assignment.
func (c PartialUpdateOrderCommand) UnassignCrew() bool {
	return c.unassignCrew
}

// ExtraFields returns payload keys outside the updatable set.
func (c PartialUpdateOrderCommand) ExtraFields() []string {
	return c.extraFields
}

func (c *PartialUpdateOrderCommand) setActor(actor principal.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *PartialUpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PartialUpdateOrderCommand) setStatus(status *order.Status) error {
	if status != nil {
		if err := status.Validate(); err != nil {
			return err
		}
	}

	c.status = status
	return nil
}

func (c *PartialUpdateOrderCommand) setDeliveryCrewID(deliveryCrewID *kernel.UUID) error {
	if deliveryCrewID != nil {
		if err := deliveryCrewID.Validate(); err != nil {
			return err
		}
	}

	c.deliveryCrewID = deliveryCrewID
	return nil
}
