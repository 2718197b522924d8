package commands

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// CreateMenuItemCommandHandler handles adding a catalog item. Manager only.
// The referenced category must exist.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
	policy     services.AccessPolicy
}

// NewCreateMenuItemCommandHandler creates a handler for menu item creation.
func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the menu item creation command.
// Returns errs.ErrObjectNotFound when the category does not exist.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) error {
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

	if _, err := uow.CategoryRepository().Get(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	item, err := menu.NewMenuItem(cmd.ItemID(), cmd.Title(), cmd.Price(), cmd.CategoryID(), cmd.Featured())
	if err != nil {
		return err
	}

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
