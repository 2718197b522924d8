package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/principal"
	"restaurant/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the item lines of a single order.
// Only the order's owner or a manager may view it.
type GetOrderQuery struct {
	actor   principal.Principal
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query fetching one order on behalf of the actor.
func NewGetOrderQuery(actor principal.Principal, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Actor returns the user requesting the order.
func (q GetOrderQuery) Actor() principal.Principal {
	return q.actor
}

// OrderID returns the order being requested.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse represents one line of an order.
type OrderItemResponse struct {
	MenuItemID kernel.UUID
	Quantity   int
	UnitPrice  kernel.Money
	Price      kernel.Money
}
