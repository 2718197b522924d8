// Package queries contains read operations in the CQRS architecture.
// Query handlers read the database directly through raw SQL, bypassing the
// domain aggregates: listings never mutate state, so they do not pay for
// aggregate reconstruction.
package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/principal"
	"restaurant/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves the orders the acting user is entitled to see.
// Customers see their own orders, delivery crew their assigned orders, and
// managers every order.
//
// Example:
//
//	query, err := NewListOrdersQuery(actor)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Visible orders: %d\n", len(orders))
type ListOrdersQuery struct {
	actor principal.Principal

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query listing orders visible to the actor.
func NewListOrdersQuery(actor principal.Principal) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the user the listing is scoped to.
func (q ListOrdersQuery) Actor() principal.Principal {
	return q.actor
}

// OrderResponse represents one order in a listing, without its items.
type OrderResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	DeliveryCrewID *kernel.UUID
	Status         order.Status
	Total          kernel.Money
	Date           time.Time
}
