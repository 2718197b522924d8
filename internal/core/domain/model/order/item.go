package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through one of its factory methods.
	ErrItemIsNotConstructed = errors.New("order Item must be created via newItemFromCartLine or RestoreItem")
)

// Item is an immutable snapshot of a cart line captured at order-creation
// time. Once created it never changes; the owning order's total was computed
// from these snapshots exactly once and is never recomputed.
type Item struct {
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	price      kernel.Money

	isConstructed bool
}

// newItemFromCartLine snapshots a cart line into an order item.
func newItemFromCartLine(line cart.Line) (Item, error) {
	if err := line.Validate(); err != nil {
		return Item{}, err
	}

	return Item{
		menuItemID:    line.MenuItemID(),
		quantity:      line.Quantity(),
		unitPrice:     line.UnitPrice(),
		price:         line.Price(),
		isConstructed: true,
	}, nil
}

// RestoreItem rebuilds an order item from persistence.
func RestoreItem(menuItemID kernel.UUID, quantity int, unitPrice, price kernel.Money) (Item, error) {
	if err := menuItemID.Validate(); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}

	return Item{
		menuItemID:    menuItemID,
		quantity:      quantity,
		unitPrice:     unitPrice,
		price:         price,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created through a factory method.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// MenuItemID returns the referenced menu item's identifier.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the unit price snapshot carried over from the cart line.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Price returns unitPrice × quantity as captured at order creation.
func (i Item) Price() kernel.Money {
	return i.price
}
