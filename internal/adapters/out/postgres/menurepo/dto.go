// Package menurepo provides persistence for the menu catalog: categories and
// menu items.
package menurepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryDTO represents the database structure for menu categories.
type CategoryDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string    `gorm:"type:varchar(255);uniqueIndex"`
	Slug  string    `gorm:"type:varchar(255);uniqueIndex"`
}

// TableName specifies the database table name for categories.
func (CategoryDTO) TableName() string {
	return "categories"
}

// MenuItemDTO represents the database structure for catalog items.
type MenuItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title      string          `gorm:"type:varchar(255)"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2)"`
	CategoryID uuid.UUID       `gorm:"type:uuid;index"`
	Featured   bool
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func categoryFromDomain(category *menu.Category) CategoryDTO {
	return CategoryDTO{
		ID:    category.ID().Bytes(),
		Title: category.Title(),
		Slug:  category.Slug(),
	}
}

func categoryToDomain(dto CategoryDTO) (*menu.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreCategory(id, dto.Title, dto.Slug)
}

func itemFromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:         item.ID().Bytes(),
		Title:      item.Title(),
		Price:      item.Price().Decimal(),
		CategoryID: item.CategoryID().Bytes(),
		Featured:   item.Featured(),
	}
}

func itemToDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.NewMenuItem(id, dto.Title, price, categoryID, dto.Featured)
}
