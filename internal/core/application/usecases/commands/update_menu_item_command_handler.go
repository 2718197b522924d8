package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// UpdateMenuItemCommandHandler handles editing a catalog item. Manager only.
// Price changes never rewrite carts or past orders: lines keep the snapshot
// taken when they were added.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	policy     services.AccessPolicy
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item updates.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the menu item update command.
// Returns errs.ErrObjectNotFound when the item does not exist.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.policy.CanManageMenu(cmd.Actor()) {
		return errs.NewOperationForbiddenError("manage menu")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	item, err := uow.MenuItemRepository().Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = item.Rename(cmd.Title()); err != nil {
		return err
	}
	item.ChangePrice(cmd.Price())
	item.SetFeatured(cmd.Featured())

	if err = uow.MenuItemRepository().Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
