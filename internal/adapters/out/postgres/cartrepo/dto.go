// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. A cart is stored as its lines only: the aggregate is
// keyed by the owning user and reconstructed from whatever lines exist.
package cartrepo

import (
	"time"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLineDTO represents one stored cart line. UpdatedAt feeds the abandoned
// cart purge job.
type CartLineDTO struct {
	UserID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2)"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2)"`
	UpdatedAt  time.Time       `gorm:"autoUpdateTime;index"`
}

// TableName specifies the database table name for cart lines.
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

func fromDomain(c *cart.Cart) []CartLineDTO {
	dtos := make([]CartLineDTO, 0, len(c.Lines()))
	for _, line := range c.Lines() {
		dtos = append(dtos, CartLineDTO{
			UserID:     c.UserID().Bytes(),
			MenuItemID: line.MenuItemID().Bytes(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice().Decimal(),
			Price:      line.Price().Decimal(),
		})
	}
	return dtos
}

func toDomain(userID kernel.UUID, dtos []CartLineDTO) (*cart.Cart, error) {
	lines := make([]cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
		if err != nil {
			return nil, err
		}

		unitPrice, err := kernel.NewMoney(dto.UnitPrice)
		if err != nil {
			return nil, err
		}

		line, err := cart.NewLine(menuItemID, dto.Quantity, unitPrice)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(userID, lines)
}
