package commands

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// CreateCategoryCommandHandler handles adding a menu category. Manager only.
type CreateCategoryCommandHandler struct {
	uowFactory MenuUoWFactory
	policy     services.AccessPolicy
}

// NewCreateCategoryCommandHandler creates a handler for category creation.
func NewCreateCategoryCommandHandler(uowFactory MenuUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the category creation command.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.policy.CanManageMenu(cmd.Actor()) {
		return errs.NewOperationForbiddenError("manage menu")
	}

	category, err := menu.NewCategory(cmd.CategoryID(), cmd.Title())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CategoryRepository().Add(ctx, category); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
