// Package ports defines repository interfaces for the restaurant ordering
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for per-user carts.
// A user always has exactly one cart; a user with no stored lines gets an
// empty cart, never an error.
type CartRepository interface {
	// GetByUser retrieves the user's cart with all its lines.
	// Returns an empty cart when the user has no lines.
	GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// Save persists the cart's current lines, replacing whatever was stored
	// for the user before.
	Save(ctx context.Context, c *cart.Cart) error

	// Clear deletes all of the user's lines. Clearing an already empty cart
	// succeeds.
	Clear(ctx context.Context, userID kernel.UUID) error

	// PurgeAbandoned deletes cart lines older than the given cutoff across
	// all users and reports how many were removed. Used by scheduled
	// maintenance, not by request handling.
	PurgeAbandoned(ctx context.Context, olderThan time.Time) (int64, error)
}
