package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves the item lines of one order.
// A customer asking for someone else's order gets a forbidden error, not an
// empty result, mirroring how the single-order endpoint behaves.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle fetches the order's items. The order envelope itself is not part of
// the response; callers already hold the id and the listing carries the rest.
// Returns errs.ErrObjectNotFound when no such order exists and
// errs.ErrOperationForbidden when the actor is neither the owner nor a
// manager.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) ([]OrderItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT customer_id
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	var rawCustomerID uuid.UUID
	if err = rows.Scan(&rawCustomerID); err != nil {
		return nil, err
	}
	rows.Close()

	customerID, err := kernel.UUIDFromBytes(rawCustomerID[:])
	if err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !customerID.IsEqual(actor.ID()) && !actor.IsManager() {
		return nil, errs.NewOperationForbiddenError("view order")
	}

	return h.orderItems(ctx, query.OrderID())
}

func (h GetOrderQueryHandler) orderItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			menu_item_id,
			quantity,
			unit_price,
			price
		FROM order_items
		WHERE order_id = ?
		ORDER BY menu_item_id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		var menuItemID uuid.UUID
		var unitPrice, price decimal.Decimal

		if err = rows.Scan(&menuItemID, &item.Quantity, &unitPrice, &price); err != nil {
			return nil, err
		}

		if item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return nil, err
		}
		if item.Price, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
