package commands

import (
	"context"
)

// AddCartItemCommandHandler handles adding a line to the user's cart.
// Looks up the menu item so the line snapshots the catalog price in force
// at the moment of adding. Adding the same item again merges quantities
// and keeps the original snapshot.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart addition command.
// Returns errs.ErrObjectNotFound when the menu item does not exist.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.MenuItemRepository().Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	userCart, err := uow.CartRepository().GetByUser(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = userCart.AddItem(item, cmd.Quantity()); err != nil {
		return err
	}

	if err = uow.CartRepository().Save(ctx, userCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
