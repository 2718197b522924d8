package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// DeleteMenuItemCommandHandler handles removing a catalog item. Manager only.
type DeleteMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	policy     services.AccessPolicy
}

// NewDeleteMenuItemCommandHandler creates a handler for menu item deletion.
func NewDeleteMenuItemCommandHandler(uowFactory MenuUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the menu item deletion command.
// Returns errs.ErrObjectNotFound when the item does not exist.
func (h *DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
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

	if err = uow.MenuItemRepository().Delete(ctx, item.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
