package commands

import (
	"context"
)

// PurgeAbandonedCartsCommandHandler handles the periodic cart retention sweep.
type PurgeAbandonedCartsCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewPurgeAbandonedCartsCommandHandler creates a handler for the cart sweep.
func NewPurgeAbandonedCartsCommandHandler(uowFactory CartUoWFactory) PurgeAbandonedCartsCommandHandler {
	return PurgeAbandonedCartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and returns the number of cart lines
// removed.
func (h *PurgeAbandonedCartsCommandHandler) Handle(ctx context.Context, cmd PurgeAbandonedCartsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.CartRepository().PurgeAbandoned(ctx, cmd.OlderThan())
	if err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
