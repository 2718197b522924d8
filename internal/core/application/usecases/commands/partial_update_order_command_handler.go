package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// StatusOnlyUpdateMessage is returned to delivery crew members who try to
// touch anything beyond the status field.
const StatusOnlyUpdateMessage = "You can only update the 'status' field."

// PartialUpdateOrderCommandHandler handles partial order updates.
// Managers may change any mutable field. A delivery crew member assigned to
// the order may change status and nothing else. Everyone else is refused.
type PartialUpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

// NewPartialUpdateOrderCommandHandler creates a handler for partial order updates.
func NewPartialUpdateOrderCommandHandler(uowFactory OrderUoWFactory) PartialUpdateOrderCommandHandler {
	return PartialUpdateOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the partial update command.
// Returns errs.ErrObjectNotFound when the order is missing,
// errs.ErrOperationForbidden when the actor may not update it at all, and
// errs.ErrInvalidRequest when a crew member sends fields beyond status.
func (h *PartialUpdateOrderCommandHandler) Handle(ctx context.Context, cmd PartialUpdateOrderCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch h.policy.PartialUpdateScope(cmd.Actor(), aggregate) {
	case services.UpdateScopeFull:
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
		} else if cmd.UnassignCrew() {
			aggregate.UnassignDeliveryCrew()
		}

	case services.UpdateScopeStatusOnly:
		// The key set must be exactly {status}: nothing extra, and not empty.
		if len(cmd.ExtraFields()) > 0 || cmd.DeliveryCrewID() != nil || cmd.UnassignCrew() ||
			cmd.Status() == nil {
			return errs.NewInvalidRequestError(StatusOnlyUpdateMessage)
		}

		// Reopening a delivered order is a manager call; crew only move
		// orders forward.
		if status := cmd.Status(); status != nil &&
			*status == order.Placed && aggregate.Status() == order.Delivered {
			return errs.NewOperationForbiddenError("reopen order")
		}

	case services.UpdateScopeNone:
		return errs.NewOperationForbiddenError("update order")
	}

	if status := cmd.Status(); status != nil {
		if err = aggregate.ChangeStatus(*status); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
