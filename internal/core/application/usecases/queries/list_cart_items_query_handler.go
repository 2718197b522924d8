package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListCartItemsQueryHandler retrieves the user's cart from the database.
// Joins the catalog for display titles; prices come from the lines' own
// snapshots, never from the current catalog.
type ListCartItemsQueryHandler struct {
	db *gorm.DB
}

// NewListCartItemsQueryHandler creates a handler for cart listings.
func NewListCartItemsQueryHandler(db *gorm.DB) ListCartItemsQueryHandler {
	return ListCartItemsQueryHandler{db: db}
}

// Handle executes the cart listing. An empty cart yields zero lines and a
// zero total, not an error.
func (h ListCartItemsQueryHandler) Handle(ctx context.Context, query ListCartItemsQuery) (CartResponse, error) {
	if err := query.Validate(); err != nil {
		return CartResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			cl.menu_item_id,
			mi.title,
			cl.quantity,
			cl.unit_price,
			cl.price
		FROM cart_lines cl
		JOIN menu_items mi ON mi.id = cl.menu_item_id
		WHERE cl.user_id = ?
		ORDER BY mi.title
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return CartResponse{}, err
	}
	defer rows.Close()

	response := CartResponse{
		Lines: make([]CartLineResponse, 0),
		Total: kernel.ZeroMoney(),
	}

	for rows.Next() {
		var line CartLineResponse
		var menuItemID uuid.UUID
		var unitPrice, price decimal.Decimal

		if err = rows.Scan(&menuItemID, &line.Title, &line.Quantity, &unitPrice, &price); err != nil {
			return CartResponse{}, err
		}

		if line.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return CartResponse{}, err
		}
		if line.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return CartResponse{}, err
		}
		if line.Price, err = kernel.NewMoney(price); err != nil {
			return CartResponse{}, err
		}

		response.Lines = append(response.Lines, line)
		response.Total = response.Total.Add(line.Price)
	}

	if err = rows.Err(); err != nil {
		return CartResponse{}, err
	}

	return response, nil
}
