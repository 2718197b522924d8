package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// RemoveGroupMemberCommandHandler handles revoking a role from a user.
// Manager only.
type RemoveGroupMemberCommandHandler struct {
	uowFactory UserUoWFactory
	policy     services.AccessPolicy
}

// NewRemoveGroupMemberCommandHandler creates a handler for group removals.
func NewRemoveGroupMemberCommandHandler(uowFactory UserUoWFactory) RemoveGroupMemberCommandHandler {
	return RemoveGroupMemberCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the group removal command.
// Returns errs.ErrObjectNotFound when the user does not exist or does not
// hold the role, matching how group membership is addressed by id.
func (h *RemoveGroupMemberCommandHandler) Handle(ctx context.Context, cmd RemoveGroupMemberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.policy.CanManageGroups(cmd.Actor()) {
		return errs.NewOperationForbiddenError("manage groups")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	user, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if !user.HasRole(cmd.Role()) {
		return errs.NewObjectNotFoundError("userID", cmd.UserID())
	}

	if err = uow.UserRepository().RemoveFromRole(ctx, user.ID(), cmd.Role()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
