package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddCartItemCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewAddCartItemCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAddCartItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	item := newTestMenuItem(t, "5.00")
	userCart, err := cart.NewCart(userID)
	require.NoError(t, err)

	cmd, err := commands.NewAddCartItemCommand(userID, item.ID(), 3)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	menuRepo := new(MockMenuItemRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", mock.Anything, item.ID()).Return(item, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByUser", mock.Anything, userID).Return(userCart, nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Save", mock.Anything, userCart).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// The saved cart carries the price snapshot taken at add time.
	require.Len(t, userCart.Lines(), 1)
	require.Equal(t, "15.00", userCart.Total().String())

	cartRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_MenuItemNotFound(t *testing.T) {
	ctx := t.Context()
	menuItemID := kernel.NewUUID()

	cmd, err := commands.NewAddCartItemCommand(kernel.NewUUID(), menuItemID, 1)
	require.NoError(t, err)

	menuRepo := new(MockMenuItemRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", mock.Anything, menuItemID).
			Return(nil, errs.NewObjectNotFoundError("menuItemID", menuItemID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddCartItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	menuRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestClearCartCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()

	cmd, err := commands.NewClearCartCommand(userID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Clear", mock.Anything, userID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClearCartCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
