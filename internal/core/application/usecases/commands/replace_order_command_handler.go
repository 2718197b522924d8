package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// ReplaceOrderCommandHandler handles full order updates.
// Only managers may replace an order. An assigned crew member must exist
// and actually hold the Delivery crew role.
type ReplaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewReplaceOrderCommandHandler creates a handler for full order updates.
func NewReplaceOrderCommandHandler(uowFactory OrderUoWFactory) ReplaceOrderCommandHandler {
	return ReplaceOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the replace command.
// Returns errs.ErrOperationForbidden when the actor is not a manager,
// errs.ErrObjectNotFound when the order or the crew user is missing, and
// errs.ErrInvalidRequest when the assignee is not a delivery crew member.
func (h *ReplaceOrderCommandHandler) Handle(ctx context.Context, cmd ReplaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !h.policy.CanReplaceOrder(cmd.Actor()) {
		return errs.NewOperationForbiddenError("replace order")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if crewID := cmd.DeliveryCrewID(); crewID != nil {
		crew, err := uow.UserRepository().Get(ctx, *crewID)
		if err != nil {
			return err
		}

		if !crew.IsDeliveryCrew() {
			return errs.NewInvalidRequestError("user is not a delivery crew member")
		}

		if err = aggregate.AssignDeliveryCrew(*crewID); err != nil {
			return err
		}
	} else {
		aggregate.UnassignDeliveryCrew()
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
