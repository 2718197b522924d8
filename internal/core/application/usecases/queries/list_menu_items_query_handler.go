package queries

import (
	"context"
	"database/sql"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListMenuItemsQueryHandler retrieves catalog listings from the database.
type ListMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewListMenuItemsQueryHandler creates a handler for catalog listings.
func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db}
}

// Handle executes the catalog listing, sorted by title.
func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			mi.id,
			mi.title,
			mi.price,
			mi.featured,
			mi.category_id,
			c.title
		FROM menu_items mi
		JOIN categories c ON c.id = mi.category_id
		ORDER BY mi.title
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)
	for rows.Next() {
		item, scanErr := scanMenuItemRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetMenuItemQueryHandler retrieves a single catalog item.
type GetMenuItemQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemQueryHandler creates a handler for single item reads.
func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db}
}

// Handle fetches one menu item.
// Returns errs.ErrObjectNotFound when no such item exists.
func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return MenuItemResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			mi.id,
			mi.title,
			mi.price,
			mi.featured,
			mi.category_id,
			c.title
		FROM menu_items mi
		JOIN categories c ON c.id = mi.category_id
		WHERE mi.id = ?
	`, query.ItemID().Bytes()).Rows()
	if err != nil {
		return MenuItemResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return MenuItemResponse{}, err
		}
		return MenuItemResponse{}, errs.NewObjectNotFoundError("menuItemID", query.ItemID())
	}

	return scanMenuItemRow(rows)
}

// ListCategoriesQueryHandler retrieves category listings.
type ListCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewListCategoriesQueryHandler creates a handler for category listings.
func NewListCategoriesQueryHandler(db *gorm.DB) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db}
}

// Handle executes the category listing, sorted by title.
func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]CategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			slug
		FROM categories
		ORDER BY title
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]CategoryResponse, 0)
	for rows.Next() {
		var category CategoryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &category.Title, &category.Slug); err != nil {
			return nil, err
		}

		if category.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func scanMenuItemRow(rows *sql.Rows) (MenuItemResponse, error) {
	var item MenuItemResponse
	var id, categoryID uuid.UUID
	var price decimal.Decimal

	err := rows.Scan(
		&id,
		&item.Title,
		&price,
		&item.Featured,
		&categoryID,
		&item.CategoryTitle,
	)
	if err != nil {
		return MenuItemResponse{}, err
	}

	if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return MenuItemResponse{}, err
	}
	if item.CategoryID, err = kernel.UUIDFromBytes(categoryID[:]); err != nil {
		return MenuItemResponse{}, err
	}
	if item.Price, err = kernel.NewMoney(price); err != nil {
		return MenuItemResponse{}, err
	}

	return item, nil
}
