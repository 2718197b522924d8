package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrClearCartCommandIsNotConstructed = errors.New(
	"ClearCartCommand must be created via NewClearCartCommand constructor",
)

// ClearCartCommand represents a request to empty the user's cart.
// Clearing an already empty cart succeeds.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClearCartCommand creates a command to empty the given user's cart.
func NewClearCartCommand(userID kernel.UUID) (ClearCartCommand, error) {
	clearCommand := ClearCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := userID.Validate(); err != nil {
		return ClearCartCommand{}, err
	}
	clearCommand.userID = userID

	return clearCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (c ClearCartCommand) UserID() kernel.UUID {
	return c.userID
}
