package cart

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through the NewCart or RestoreCart factory methods.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

	// ErrLineIsNotConstructed is returned when a Line instance was not created
	// through the NewLine or RestoreLine factory methods.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

// Line is one pending (menu item, quantity) entry in a user's cart.
// The unit price is a snapshot of the catalog price at insertion time; the
// line price is always unitPrice × quantity.
type Line struct {
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money

	isConstructed bool
}

// NewLine creates a cart line snapshotting the given unit price.
// Quantity must be at least 1.
func NewLine(menuItemID kernel.UUID, quantity int, unitPrice kernel.Money) (Line, error) {
	if err := menuItemID.Validate(); err != nil {
		return Line{}, err
	}
	if quantity < 1 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}

	return Line{
		menuItemID:    menuItemID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		isConstructed: true,
	}, nil
}

// Validate ensures the Line was created through its constructor.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// MenuItemID returns the referenced menu item's identifier.
func (l Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns the number of units in the line.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the catalog price snapshot taken when the line was added.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Price returns unitPrice × quantity.
func (l Line) Price() kernel.Money {
	return l.unitPrice.MulQuantity(l.quantity)
}

// Cart is the aggregate of a single user's pending lines. At most one line
// exists per menu item: adding an item already in the cart merges by summing
// quantities while keeping the original unit price snapshot.
//
// Carts are exclusively owned by their user; no cross-user visibility exists
// anywhere in the model.
type Cart struct {
	userID kernel.UUID
	lines  []Line

	isConstructed bool
}

// NewCart creates an empty cart for the given user.
func NewCart(userID kernel.UUID) (*Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		userID:        userID,
		isConstructed: true,
	}, nil
}

// RestoreCart rebuilds a cart from persisted lines.
func RestoreCart(userID kernel.UUID, lines []Line) (*Cart, error) {
	c, err := NewCart(userID)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}
	c.lines = append(c.lines, lines...)
	return c, nil
}

// Validate ensures the Cart was created through its constructor.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// UserID returns the owning user's identifier.
func (c *Cart) UserID() kernel.UUID {
	return c.userID
}

// Lines returns the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddItem adds a menu item to the cart, snapshotting its current catalog
// price. If a line for the item already exists, quantities merge and the
// existing unit price snapshot is kept.
func (c *Cart) AddItem(item *menu.MenuItem, quantity int) error {
	if err := item.Validate(); err != nil {
		return err
	}

	for i, line := range c.lines {
		if line.menuItemID.IsEqual(item.ID()) {
			merged, err := NewLine(line.menuItemID, line.quantity+quantity, line.unitPrice)
			if err != nil {
				return err
			}
			c.lines[i] = merged
			return nil
		}
	}

	line, err := NewLine(item.ID(), quantity, item.Price())
	if err != nil {
		return err
	}
	c.lines = append(c.lines, line)
	return nil
}

// Total returns the sum of all line prices; exactly zero for an empty cart.
func (c *Cart) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range c.lines {
		total = total.Add(line.Price())
	}
	return total
}

// Clear removes all lines. Clearing an empty cart is a no-op.
func (c *Cart) Clear() {
	c.lines = nil
}
