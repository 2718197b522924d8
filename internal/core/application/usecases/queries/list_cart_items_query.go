package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrListCartItemsQueryIsNotConstructed = errors.New(
	"ListCartItemsQuery must be created via NewListCartItemsQuery constructor",
)

// ListCartItemsQuery retrieves the acting user's cart lines.
// Carts are strictly private: the query is scoped by the user's own id.
type ListCartItemsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListCartItemsQuery creates a query listing the user's cart.
func NewListCartItemsQuery(userID kernel.UUID) (ListCartItemsQuery, error) {
	if err := userID.Validate(); err != nil {
		return ListCartItemsQuery{}, err
	}

	return ListCartItemsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCartItemsQuery) Validate() error {
	return q.guard.Validate(ErrListCartItemsQueryIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (q ListCartItemsQuery) UserID() kernel.UUID {
	return q.userID
}

// CartLineResponse represents one cart line with its captured price.
type CartLineResponse struct {
	MenuItemID kernel.UUID
	Title      string
	Quantity   int
	UnitPrice  kernel.Money
	Price      kernel.Money
}

// CartResponse represents the cart listing with its running total.
type CartResponse struct {
	Lines []CartLineResponse
	Total kernel.Money
}
