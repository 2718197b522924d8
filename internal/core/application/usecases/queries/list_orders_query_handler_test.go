package queries_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/principal"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// ListOrdersQueryHandlerTestSuite verifies role-scoped order listings
// against a real PostgreSQL database.
type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.ListOrdersQueryHandler
	orderHandler queries.GetOrderQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewListOrdersQueryHandler(db)
	suite.orderHandler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *ListOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items").Error
	suite.Require().NoError(err)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_CustomerSeesOnlyOwnOrders() {
	customer := suite.principal()
	otherCustomer := suite.principal()

	own := suite.seedOrder(customer.ID(), nil)
	suite.seedOrder(otherCustomer.ID(), nil)

	query, err := queries.NewListOrdersQuery(customer)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(own.ID()))
	suite.True(result[0].CustomerID.IsEqual(customer.ID()))
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_ManagerSeesAllOrders() {
	manager := suite.principal(principal.RoleManager)
	customer1 := suite.principal()
	customer2 := suite.principal()

	suite.seedOrder(customer1.ID(), nil)
	suite.seedOrder(customer2.ID(), nil)

	query, err := queries.NewListOrdersQuery(manager)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_SuperuserSeesAllOrders() {
	superuser, err := principal.NewPrincipal(kernel.NewUUID(), "root", nil, true)
	suite.Require().NoError(err)

	suite.seedOrder(kernel.NewUUID(), nil)
	suite.seedOrder(kernel.NewUUID(), nil)

	query, err := queries.NewListOrdersQuery(superuser)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_CrewSeesOnlyAssignedOrders() {
	crewID := kernel.NewUUID()
	crew, err := principal.NewPrincipal(
		crewID, "courier", []principal.Role{principal.RoleDeliveryCrew}, false,
	)
	suite.Require().NoError(err)

	assigned := suite.seedOrder(kernel.NewUUID(), &crewID)
	suite.seedOrder(kernel.NewUUID(), nil)

	query, err := queries.NewListOrdersQuery(crew)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(assigned.ID()))
	suite.Require().NotNil(result[0].DeliveryCrewID)
	suite.True(result[0].DeliveryCrewID.IsEqual(crewID))
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewListOrdersQuery(suite.principal(principal.RoleManager))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestGetOrder_OwnerSeesItems() {
	customer := suite.principal()
	own := suite.seedOrder(customer.ID(), nil)

	query, err := queries.NewGetOrderQuery(customer, own.ID())
	suite.Require().NoError(err)

	result, err := suite.orderHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(2, result[0].Quantity)
	suite.Equal("12.50", result[0].UnitPrice.String())
	suite.Equal("25.00", result[0].Price.String())
	suite.True(result[0].MenuItemID.IsEqual(own.Items()[0].MenuItemID()))
}

func (suite *ListOrdersQueryHandlerTestSuite) TestGetOrder_StrangerForbidden() {
	customer := suite.principal()
	stranger := suite.principal()
	own := suite.seedOrder(customer.ID(), nil)

	query, err := queries.NewGetOrderQuery(stranger, own.ID())
	suite.Require().NoError(err)

	_, err = suite.orderHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrOperationForbidden)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestGetOrder_NotFound() {
	query, err := queries.NewGetOrderQuery(suite.principal(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.orderHandler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ListOrdersQueryHandlerTestSuite) principal(roles ...principal.Role) principal.Principal {
	p, err := principal.NewPrincipal(kernel.NewUUID(), "user-"+kernel.NewUUID().String(), roles, false)
	suite.Require().NoError(err)
	return p
}

// seedOrder persists a one-line order worth 25.00 for the customer,
// optionally assigned to a crew member.
func (suite *ListOrdersQueryHandlerTestSuite) seedOrder(customerID kernel.UUID, crewID *kernel.UUID) *order.Order {
	price, err := kernel.NewMoneyFromString("12.50")
	suite.Require().NoError(err)

	item, err := menu.NewMenuItem(kernel.NewUUID(), "Moussaka", price, kernel.NewUUID(), false)
	suite.Require().NoError(err)

	customerCart, err := cart.NewCart(customerID)
	suite.Require().NoError(err)
	suite.Require().NoError(customerCart.AddItem(item, 2))

	aggregate, err := order.NewOrderFromCart(kernel.NewUUID(), customerCart, time.Now())
	suite.Require().NoError(err)

	if crewID != nil {
		suite.Require().NoError(aggregate.AssignDeliveryCrew(*crewID))
	}

	suite.Require().NoError(suite.orderRepo.Add(context.Background(), aggregate))
	return aggregate
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}
