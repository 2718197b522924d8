package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// AddGroupMemberCommandHandler handles granting a role to a user.
// Manager only. Reports whether the user was actually added so callers can
// distinguish a fresh grant from a repeat.
type AddGroupMemberCommandHandler struct {
	uowFactory UserUoWFactory
	policy     services.AccessPolicy
}

// NewAddGroupMemberCommandHandler creates a handler for group additions.
func NewAddGroupMemberCommandHandler(uowFactory UserUoWFactory) AddGroupMemberCommandHandler {
	return AddGroupMemberCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the group addition command.
// Returns errs.ErrObjectNotFound when no user has the given username.
func (h *AddGroupMemberCommandHandler) Handle(ctx context.Context, cmd AddGroupMemberCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	if !h.policy.CanManageGroups(cmd.Actor()) {
		return false, errs.NewOperationForbiddenError("manage groups")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	user, err := uow.UserRepository().GetByUsername(ctx, cmd.Username())
	if err != nil {
		return false, err
	}

	if user.HasRole(cmd.Role()) {
		return false, uow.Commit(ctx)
	}

	if err = uow.UserRepository().AddToRole(ctx, user.ID(), cmd.Role()); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
