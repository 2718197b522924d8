package order

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrderFromCart or RestoreOrder. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrderFromCart or RestoreOrder")
)

// Order is the aggregate root of the order lifecycle. It is created exactly
// once from a non-empty cart and owns its item snapshots.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and owning customer
//   - Total equals the sum of item prices at creation time and is never
//     recomputed afterwards
//   - Status starts at Placed with no delivery crew assigned
//   - Status transitions follow the Status state machine
//   - Items are immutable once created
//
// The struct uses private fields so the only mutation paths are the validated
// methods below; there is deliberately no setter for total or items.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID is the owning user
	customerID kernel.UUID

	// deliveryCrewID is the assigned crew member's ID (nil if unassigned)
	deliveryCrewID *kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// total is the sum of item prices, fixed at creation
	total kernel.Money

	// date is the UTC calendar date of placement
	date time.Time

	// items are the immutable cart line snapshots
	items []Item

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrderFromCart converts a cart into a new order, snapshotting every line
// into an order item and computing the total from the cart.
//
// Parameters:
//   - id: unique identifier for the new order (must be a valid UUID)
//   - c: the customer's cart (must be constructed and non-empty)
//   - now: placement time; stored truncated to its UTC calendar date
//
// Fails with an invalid-state error when the cart is empty. The caller is
// responsible for clearing the cart in the same transaction that persists the
// returned order.
func NewOrderFromCart(id kernel.UUID, c *cart.Cart, now time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, errs.NewInvalidStateError("empty cart")
	}

	lines := c.Lines()
	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		item, err := newItemFromCartLine(line)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return &Order{
		id:            id,
		customerID:    c.UserID(),
		status:        Placed,
		total:         c.Total(),
		date:          now.UTC().Truncate(24 * time.Hour),
		items:         items,
		isConstructed: true,
	}, nil
}

// RestoreOrder rebuilds an order aggregate from persistence.
// Unlike NewOrderFromCart it accepts any valid status and assignment, but all
// invariants on identity and item construction still hold.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	deliveryCrewID *kernel.UUID,
	status Status,
	total kernel.Money,
	date time.Time,
	items []Item,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if deliveryCrewID != nil {
		if err := deliveryCrewID.Validate(); err != nil {
			return nil, err
		}
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:             id,
		customerID:     customerID,
		deliveryCrewID: deliveryCrewID,
		status:         status,
		total:          total,
		date:           date,
		items:          items,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order was created through a factory method.
// Call it when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning user's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DeliveryCrew returns the assigned crew member's ID, nil if unassigned.
func (o *Order) DeliveryCrew() *kernel.UUID {
	return o.deliveryCrewID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the order total fixed at creation time.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Date returns the UTC calendar date of placement.
func (o *Order) Date() time.Time {
	return o.date
}

// Items returns the order's immutable item snapshots.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// IsAssignedTo reports whether the given user is the assigned delivery crew.
func (o *Order) IsAssignedTo(userID kernel.UUID) bool {
	return o.deliveryCrewID != nil && o.deliveryCrewID.IsEqual(userID)
}

// AssignDeliveryCrew assigns the order to a delivery crew member.
// Assignment is orthogonal to status and may be changed on any non-final
// order; passing the crew member's validity (role membership) is the caller's
// concern, identity validity is checked here.
func (o *Order) AssignDeliveryCrew(crewID kernel.UUID) error {
	if err := crewID.Validate(); err != nil {
		return err
	}
	o.deliveryCrewID = &crewID
	return nil
}

// UnassignDeliveryCrew removes the current crew assignment.
func (o *Order) UnassignDeliveryCrew() {
	o.deliveryCrewID = nil
}

// ChangeStatus transitions the order to the target status according to the
// state machine. Authorization for who may request which transition lives in
// the access policy, not here.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// MarkDelivered transitions the order from Placed to Delivered.
// This is the only mutation available to the assigned delivery crew.
func (o *Order) MarkDelivered() error {
	return o.ChangeStatus(Delivered)
}
