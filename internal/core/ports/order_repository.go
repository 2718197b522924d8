package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their item snapshots; deleting an order
// cascades to its items.
type OrderRepository interface {
	// Add persists a new order aggregate with all its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order's mutable fields
	// (status, delivery crew). Items and total are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and its items.
	Delete(ctx context.Context, id kernel.UUID) error
}
