package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/order"
)

// Request payloads.

// CategoryRequest is the body for creating a category.
type CategoryRequest struct {
	Title string `json:"title"`
}

// MenuItemRequest is the body for creating or replacing a menu item.
type MenuItemRequest struct {
	Title      string `json:"title"`
	Price      string `json:"price"`
	Featured   bool   `json:"featured"`
	CategoryID string `json:"category_id"`
}

// CartItemRequest is the body for adding a menu item to the cart.
type CartItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// GroupMemberRequest is the body for adding a user to a group.
type GroupMemberRequest struct {
	Username string `json:"username"`
}

// OrderReplaceRequest is the body for a full order update.
type OrderReplaceRequest struct {
	Status         string  `json:"status"`
	DeliveryCrewID *string `json:"delivery_crew_id"`
}

// Response payloads.

// CategoryPayload is the JSON shape of a menu category.
type CategoryPayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// MenuItemPayload is the JSON shape of a catalog item.
type MenuItemPayload struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Price         string `json:"price"`
	Featured      bool   `json:"featured"`
	CategoryID    string `json:"category_id"`
	CategoryTitle string `json:"category_title"`
}

// CartLinePayload is the JSON shape of one cart line.
type CartLinePayload struct {
	MenuItemID string `json:"menu_item_id"`
	Title      string `json:"title"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	Price      string `json:"price"`
}

// CartPayload is the JSON shape of the cart listing.
type CartPayload struct {
	Lines []CartLinePayload `json:"lines"`
	Total string            `json:"total"`
}

// OrderPayload is the JSON shape of an order without its items.
type OrderPayload struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customer_id"`
	DeliveryCrewID *string   `json:"delivery_crew_id"`
	Status         string    `json:"status"`
	Total          string    `json:"total"`
	Date           time.Time `json:"date"`
}

// OrderItemPayload is the JSON shape of one order line.
type OrderItemPayload struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	Price      string `json:"price"`
}

// OrderDetailPayload is the JSON shape of a freshly created order with its
// item lines. Single-order reads return the bare item list instead.
type OrderDetailPayload struct {
	OrderPayload
	Items []OrderItemPayload `json:"items"`
}

// GroupMemberPayload is the JSON shape of one group member.
type GroupMemberPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func toCategoryPayload(resp queries.CategoryResponse) CategoryPayload {
	return CategoryPayload{
		ID:    resp.ID.String(),
		Title: resp.Title,
		Slug:  resp.Slug,
	}
}

func toMenuItemPayload(resp queries.MenuItemResponse) MenuItemPayload {
	return MenuItemPayload{
		ID:            resp.ID.String(),
		Title:         resp.Title,
		Price:         resp.Price.String(),
		Featured:      resp.Featured,
		CategoryID:    resp.CategoryID.String(),
		CategoryTitle: resp.CategoryTitle,
	}
}

func toCartPayload(resp queries.CartResponse) CartPayload {
	lines := make([]CartLinePayload, 0, len(resp.Lines))
	for _, line := range resp.Lines {
		lines = append(lines, CartLinePayload{
			MenuItemID: line.MenuItemID.String(),
			Title:      line.Title,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice.String(),
			Price:      line.Price.String(),
		})
	}

	return CartPayload{
		Lines: lines,
		Total: resp.Total.String(),
	}
}

func toOrderPayload(resp queries.OrderResponse) OrderPayload {
	payload := OrderPayload{
		ID:         resp.ID.String(),
		CustomerID: resp.CustomerID.String(),
		Status:     resp.Status.String(),
		Total:      resp.Total.String(),
		Date:       resp.Date,
	}
	if resp.DeliveryCrewID != nil {
		crewID := resp.DeliveryCrewID.String()
		payload.DeliveryCrewID = &crewID
	}

	return payload
}

func toOrderItemPayloads(items []queries.OrderItemResponse) []OrderItemPayload {
	payloads := make([]OrderItemPayload, 0, len(items))
	for _, item := range items {
		payloads = append(payloads, OrderItemPayload{
			MenuItemID: item.MenuItemID.String(),
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.String(),
			Price:      item.Price.String(),
		})
	}

	return payloads
}

func toCreatedOrderPayload(placed *order.Order) OrderDetailPayload {
	items := make([]OrderItemPayload, 0, len(placed.Items()))
	for _, item := range placed.Items() {
		items = append(items, OrderItemPayload{
			MenuItemID: item.MenuItemID().String(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().String(),
			Price:      item.Price().String(),
		})
	}

	payload := OrderDetailPayload{
		OrderPayload: OrderPayload{
			ID:         placed.ID().String(),
			CustomerID: placed.CustomerID().String(),
			Status:     placed.Status().String(),
			Total:      placed.Total().String(),
			Date:       placed.Date(),
		},
		Items: items,
	}
	if crewID := placed.DeliveryCrew(); crewID != nil {
		s := crewID.String()
		payload.DeliveryCrewID = &s
	}

	return payload
}

func toGroupMemberPayloads(members []queries.GroupMemberResponse) []GroupMemberPayload {
	payloads := make([]GroupMemberPayload, 0, len(members))
	for _, member := range members {
		payloads = append(payloads, GroupMemberPayload{
			ID:       member.ID.String(),
			Username: member.Username,
		})
	}

	return payloads
}
