package commands

import (
	"errors"
	"time"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrPurgeAbandonedCartsCommandIsNotConstructed = errors.New(
	"PurgeAbandonedCartsCommand must be created via NewPurgeAbandonedCartsCommand constructor",
)

// PurgeAbandonedCartsCommand represents a sweep deleting cart lines that have
// not been touched within the retention window.
type PurgeAbandonedCartsCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Time

	guard guard.ConstructorGuard
}

// NewPurgeAbandonedCartsCommand creates a command purging cart lines last
// updated before the given cutoff.
func NewPurgeAbandonedCartsCommand(olderThan time.Time) (PurgeAbandonedCartsCommand, error) {
	purgeCommand := PurgeAbandonedCartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := purgeCommand.setOlderThan(olderThan); err != nil {
		return PurgeAbandonedCartsCommand{}, err
	}

	return purgeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeAbandonedCartsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeAbandonedCartsCommandIsNotConstructed)
}

// OlderThan returns the cutoff; lines last updated before it are removed.
func (c PurgeAbandonedCartsCommand) OlderThan() time.Time {
	return c.olderThan
}

func (c *PurgeAbandonedCartsCommand) setOlderThan(olderThan time.Time) error {
	if olderThan.IsZero() {
		return errs.NewValueIsRequiredError("olderThan")
	}

	c.olderThan = olderThan
	return nil
}
