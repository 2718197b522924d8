package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for catalog items.
type MenuItemRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, item *menu.MenuItem) error

	// Update persists changes to an existing menu item.
	Update(ctx context.Context, item *menu.MenuItem) error

	// Get retrieves a menu item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// Delete removes a menu item from the catalog.
	Delete(ctx context.Context, id kernel.UUID) error
}

// CategoryRepository defines the persistence contract for menu categories.
type CategoryRepository interface {
	// Add persists a new category.
	Add(ctx context.Context, category *menu.Category) error

	// Get retrieves a category by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.Category, error)
}
