package commands_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/principal"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}
func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCartRepository) Clear(ctx context.Context, userID kernel.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockCartRepository) PurgeAbandoned(ctx context.Context, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockMenuItemRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}
func (m *MockMenuItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) Add(ctx context.Context, category *menu.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}
func (m *MockCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*menu.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Category), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (principal.Principal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(principal.Principal), args.Error(1)
}
func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (principal.Principal, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(principal.Principal), args.Error(1)
}
func (m *MockUserRepository) GetAllInRole(ctx context.Context, role principal.Role) ([]principal.Principal, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]principal.Principal), args.Error(1)
}
func (m *MockUserRepository) AddToRole(ctx context.Context, userID kernel.UUID, role principal.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}
func (m *MockUserRepository) RemoveFromRole(ctx context.Context, userID kernel.UUID, role principal.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

// mockTx embeds transaction lifecycle expectations shared by every UoW mock.
type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockCheckoutUoW struct{ mockTx }

func (m *MockCheckoutUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}
func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockCartUoW struct{ mockTx }

func (m *MockCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}
func (m *MockCartUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockOrderUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUserUoW struct{ mockTx }

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockMenuUoW struct{ mockTx }

func (m *MockMenuUoW) MenuItemRepository() ports.MenuItemRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuItemRepository)
}
func (m *MockMenuUoW) CategoryRepository() ports.CategoryRepository {
	args := m.Called()
	return args.Get(0).(ports.CategoryRepository)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

// Fixtures.

func newCustomer(t *testing.T) principal.Principal {
	t.Helper()
	p, err := principal.NewPrincipal(kernel.NewUUID(), "adrian", nil, false)
	require.NoError(t, err)
	return p
}

func newManager(t *testing.T) principal.Principal {
	t.Helper()
	p, err := principal.NewPrincipal(
		kernel.NewUUID(), "mario", []principal.Role{principal.RoleManager}, false,
	)
	require.NoError(t, err)
	return p
}

func newCrew(t *testing.T, id kernel.UUID) principal.Principal {
	t.Helper()
	p, err := principal.NewPrincipal(
		id, "courier", []principal.Role{principal.RoleDeliveryCrew}, false,
	)
	require.NoError(t, err)
	return p
}

func newTestMenuItem(t *testing.T, price string) *menu.MenuItem {
	t.Helper()
	money, err := kernel.NewMoneyFromString(price)
	require.NoError(t, err)
	item, err := menu.NewMenuItem(kernel.NewUUID(), "Greek Salad", money, kernel.NewUUID(), false)
	require.NoError(t, err)
	return item
}

func newCartWithItem(t *testing.T, userID kernel.UUID, item *menu.MenuItem, quantity int) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(userID)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(item, quantity))
	return c
}

func newPlacedOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	item := newTestMenuItem(t, "12.50")
	c := newCartWithItem(t, customerID, item, 2)
	o, err := order.NewOrderFromCart(kernel.NewUUID(), c, time.Now())
	require.NoError(t, err)
	return o
}

func newAssignedOrder(t *testing.T, customerID, crewID kernel.UUID) *order.Order {
	t.Helper()
	o := newPlacedOrder(t, customerID)
	require.NoError(t, o.AssignDeliveryCrew(crewID))
	return o
}
