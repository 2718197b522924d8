package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrListMenuItemsQueryIsNotConstructed = errors.New(
		"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
	)
	ErrGetMenuItemQueryIsNotConstructed = errors.New(
		"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
	)
	ErrListCategoriesQueryIsNotConstructed = errors.New(
		"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
	)
)

// ListMenuItemsQuery retrieves the catalog. Browsing is open to any
// authenticated user regardless of role.
type ListMenuItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewListMenuItemsQuery creates a query listing the whole catalog.
func NewListMenuItemsQuery() ListMenuItemsQuery {
	return ListMenuItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

// GetMenuItemQuery retrieves a single catalog item by id.
type GetMenuItemQuery struct {
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuItemQuery creates a query fetching one menu item.
func NewGetMenuItemQuery(itemID kernel.UUID) (GetMenuItemQuery, error) {
	if err := itemID.Validate(); err != nil {
		return GetMenuItemQuery{}, err
	}

	return GetMenuItemQuery{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

// ItemID returns the item being requested.
func (q GetMenuItemQuery) ItemID() kernel.UUID {
	return q.itemID
}

// ListCategoriesQuery retrieves every menu category.
type ListCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewListCategoriesQuery creates a query listing all categories.
func NewListCategoriesQuery() ListCategoriesQuery {
	return ListCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

// MenuItemResponse represents one catalog item with its category.
type MenuItemResponse struct {
	ID            kernel.UUID
	Title         string
	Price         kernel.Money
	Featured      bool
	CategoryID    kernel.UUID
	CategoryTitle string
}

// CategoryResponse represents one menu category.
type CategoryResponse struct {
	ID    kernel.UUID
	Title string
	Slug  string
}
