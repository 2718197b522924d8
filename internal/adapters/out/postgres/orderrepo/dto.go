// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order and its item lines form one aggregate; the
// repository always writes and reads them together.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by customer and crew for the role-scoped listings.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;index"`
	DeliveryCrewID *uuid.UUID      `gorm:"type:uuid;index"`
	Status         string          `gorm:"type:varchar(16);index"`
	Total          decimal.Decimal `gorm:"type:numeric(10,2)"`
	Date           time.Time
	Items          []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted order line, an immutable snapshot of
// quantity and price taken at checkout.
type OrderItemDTO struct {
	OrderID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2)"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// TableName specifies the database table name for order lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var crewID *uuid.UUID
	if id := aggregate.DeliveryCrew(); id != nil {
		raw := id.Bytes()
		crewID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    aggregate.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Decimal(),
			Price:      item.Price().Decimal(),
		})
	}

	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		DeliveryCrewID: crewID,
		Status:         aggregate.Status().String(),
		Total:          aggregate.Total().Decimal(),
		Date:           aggregate.Date(),
		Items:          items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var crewID *kernel.UUID
	if dto.DeliveryCrewID != nil {
		cID, crewErr := kernel.UUIDFromBytes((*dto.DeliveryCrewID)[:])
		if crewErr != nil {
			return nil, crewErr
		}
		crewID = &cID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, crewID, status, total, dto.Date, items)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(menuItemID, dto.Quantity, unitPrice, price)
}
