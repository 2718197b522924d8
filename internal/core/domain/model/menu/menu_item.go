package menu

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
	// created through the NewMenuItem factory method.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
)

// MenuItem is a catalog entry customers add to their carts. From the order
// lifecycle's perspective it is immutable: cart lines and order items snapshot
// its price at insertion time, so later price changes never affect them.
//
// MenuItem follows these invariants:
//   - Must have a valid unique identifier and non-empty title
//   - Price is a validated Money value (non-negative, two decimal places)
//   - Must reference a valid category
type MenuItem struct {
	// id is the unique identifier for the menu item
	id kernel.UUID

	// title is the display name
	title string

	// price is the current catalog price
	price kernel.Money

	// categoryID references the owning category
	categoryID kernel.UUID

	// featured marks the item as highlighted on the menu
	featured bool

	// isConstructed ensures the item was created via NewMenuItem
	isConstructed bool
}

// NewMenuItem creates a validated MenuItem.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - title: display name (must not be empty)
//   - price: catalog price (constructed Money)
//   - categoryID: owning category (must be a valid UUID)
//   - featured: whether the item is highlighted
func NewMenuItem(id kernel.UUID, title string, price kernel.Money, categoryID kernel.UUID, featured bool) (*MenuItem, error) {
	item := &MenuItem{
		featured:      featured,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setTitle(title),
		item.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}
	item.price = price

	return item, nil
}

// Validate ensures the MenuItem was created through its constructor.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Title returns the display name.
func (m *MenuItem) Title() string {
	return m.title
}

// Price returns the current catalog price.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// CategoryID returns the owning category's identifier.
func (m *MenuItem) CategoryID() kernel.UUID {
	return m.categoryID
}

// Featured reports whether the item is highlighted on the menu.
func (m *MenuItem) Featured() bool {
	return m.featured
}

// ChangePrice updates the catalog price. Existing cart lines and order items
// keep their snapshots.
func (m *MenuItem) ChangePrice(price kernel.Money) {
	m.price = price
}

// Rename updates the display title.
func (m *MenuItem) Rename(title string) error {
	return m.setTitle(title)
}

// SetFeatured updates the featured flag.
func (m *MenuItem) SetFeatured(featured bool) {
	m.featured = featured
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	m.title = title
	return nil
}

func (m *MenuItem) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	m.categoryID = categoryID
	return nil
}
