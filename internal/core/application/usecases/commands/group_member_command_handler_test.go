package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/principal"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddGroupMemberCommandHandler_Handle_AddsUser(t *testing.T) {
	ctx := t.Context()
	manager := newManager(t)
	target := newCustomer(t)

	cmd, err := commands.NewAddGroupMemberCommand(manager, target.Username(), principal.RoleDeliveryCrew)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByUsername", mock.Anything, target.Username()).Return(target, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("AddToRole", mock.Anything, target.ID(), principal.RoleDeliveryCrew).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddGroupMemberCommandHandler(factory)
	added, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, added)

	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddGroupMemberCommandHandler_Handle_AlreadyMember(t *testing.T) {
	ctx := t.Context()
	manager := newManager(t)
	crewID := kernel.NewUUID()
	target := newCrew(t, crewID)

	cmd, err := commands.NewAddGroupMemberCommand(manager, target.Username(), principal.RoleDeliveryCrew)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByUsername", mock.Anything, target.Username()).Return(target, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddGroupMemberCommandHandler(factory)
	added, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.False(t, added)

	userRepo.AssertNotCalled(t, "AddToRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddGroupMemberCommandHandler_Handle_NonManagerForbidden(t *testing.T) {
	ctx := t.Context()
	customer := newCustomer(t)

	cmd, err := commands.NewAddGroupMemberCommand(customer, "someone", principal.RoleManager)
	require.NoError(t, err)

	factory := new(MockUserUoWFactory)
	h := commands.NewAddGroupMemberCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrOperationForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestRemoveGroupMemberCommandHandler_Handle_RemovesUser(t *testing.T) {
	ctx := t.Context()
	manager := newManager(t)
	crewID := kernel.NewUUID()
	target := newCrew(t, crewID)

	cmd, err := commands.NewRemoveGroupMemberCommand(manager, crewID, principal.RoleDeliveryCrew)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, crewID).Return(target, nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("RemoveFromRole", mock.Anything, crewID, principal.RoleDeliveryCrew).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveGroupMemberCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	userRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveGroupMemberCommandHandler_Handle_NotAMember(t *testing.T) {
	ctx := t.Context()
	manager := newManager(t)
	target := newCustomer(t)

	cmd, err := commands.NewRemoveGroupMemberCommand(manager, target.ID(), principal.RoleDeliveryCrew)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveGroupMemberCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	userRepo.AssertNotCalled(t, "RemoveFromRole", mock.Anything, mock.Anything, mock.Anything)
}
