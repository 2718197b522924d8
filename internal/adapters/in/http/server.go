package http

import (
	"encoding/json"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/principal"

	"github.com/labstack/echo/v4"
)

// Handlers bundles the use case handlers the server dispatches to.
type Handlers struct {
	// Command handlers
	AddCartItem        commands.AddCartItemCommandHandler
	ClearCart          commands.ClearCartCommandHandler
	CreateOrder        commands.CreateOrderCommandHandler
	ReplaceOrder       commands.ReplaceOrderCommandHandler
	PartialUpdateOrder commands.PartialUpdateOrderCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler
	AddGroupMember     commands.AddGroupMemberCommandHandler
	RemoveGroupMember  commands.RemoveGroupMemberCommandHandler
	CreateCategory     commands.CreateCategoryCommandHandler
	CreateMenuItem     commands.CreateMenuItemCommandHandler
	UpdateMenuItem     commands.UpdateMenuItemCommandHandler
	DeleteMenuItem     commands.DeleteMenuItemCommandHandler

	// Query handlers
	ListOrders       queries.ListOrdersQueryHandler
	GetOrder         queries.GetOrderQueryHandler
	ListCartItems    queries.ListCartItemsQueryHandler
	ListMenuItems    queries.ListMenuItemsQueryHandler
	GetMenuItem      queries.GetMenuItemQueryHandler
	ListCategories   queries.ListCategoriesQueryHandler
	ListGroupMembers queries.ListGroupMembersQueryHandler
}

// Server handles HTTP requests for the ordering API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the API under /api. Every route runs behind the
// principal middleware, matching the upstream requirement that all endpoints
// are authenticated.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api", PrincipalMiddleware())

	api.GET("/categories", s.ListCategories)
	api.POST("/categories", s.CreateCategory)

	api.GET("/menu-items", s.ListMenuItems)
	api.POST("/menu-items", s.CreateMenuItem)
	api.GET("/menu-items/:id", s.GetMenuItem)
	api.PUT("/menu-items/:id", s.UpdateMenuItem)
	api.DELETE("/menu-items/:id", s.DeleteMenuItem)

	api.GET("/groups/manager/users", s.groupListHandler(principal.RoleManager))
	api.POST("/groups/manager/users", s.groupAddHandler(principal.RoleManager))
	api.DELETE("/groups/manager/users/:id", s.groupRemoveHandler(principal.RoleManager))
	api.GET("/groups/delivery-crew/users", s.groupListHandler(principal.RoleDeliveryCrew))
	api.POST("/groups/delivery-crew/users", s.groupAddHandler(principal.RoleDeliveryCrew))
	api.DELETE("/groups/delivery-crew/users/:id", s.groupRemoveHandler(principal.RoleDeliveryCrew))

	api.GET("/cart/menu-items", s.ListCartItems)
	api.POST("/cart/menu-items", s.AddCartItem)
	api.DELETE("/cart/menu-items", s.ClearCart)

	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.ReplaceOrder)
	api.PATCH("/orders/:id", s.PartialUpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
}

// ListCategories handles GET /api/categories.
func (s *Server) ListCategories(ctx echo.Context) error {
	categories, err := s.handlers.ListCategories.Handle(
		ctx.Request().Context(), queries.NewListCategoriesQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	payloads := make([]CategoryPayload, 0, len(categories))
	for _, category := range categories {
		payloads = append(payloads, toCategoryPayload(category))
	}

	return ctx.JSON(http.StatusOK, payloads)
}

// CreateCategory handles POST /api/categories.
func (s *Server) CreateCategory(ctx echo.Context) error {
	var req CategoryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	categoryID := kernel.NewUUID()
	cmd, err := commands.NewCreateCategoryCommand(currentPrincipal(ctx), categoryID, req.Title)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": categoryID.String()})
}

// ListMenuItems handles GET /api/menu-items.
func (s *Server) ListMenuItems(ctx echo.Context) error {
	items, err := s.handlers.ListMenuItems.Handle(
		ctx.Request().Context(), queries.NewListMenuItemsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	payloads := make([]MenuItemPayload, 0, len(items))
	for _, item := range items {
		payloads = append(payloads, toMenuItemPayload(item))
	}

	return ctx.JSON(http.StatusOK, payloads)
}

// GetMenuItem handles GET /api/menu-items/:id.
func (s *Server) GetMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid menu item id")
	}

	query, err := queries.NewGetMenuItemQuery(itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.handlers.GetMenuItem.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toMenuItemPayload(item))
}

// CreateMenuItem handles POST /api/menu-items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var req MenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoneyFromString(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	categoryID, err := kernel.UUIDFromString(req.CategoryID)
	if err != nil {
		return badRequest(ctx, "invalid category id")
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuItemCommand(
		currentPrincipal(ctx), itemID, req.Title, price, categoryID, req.Featured)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": itemID.String()})
}

// UpdateMenuItem handles PUT /api/menu-items/:id.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid menu item id")
	}

	var req MenuItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoneyFromString(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		currentPrincipal(ctx), itemID, req.Title, price, req.Featured)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.UpdateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteMenuItem handles DELETE /api/menu-items/:id.
func (s *Server) DeleteMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid menu item id")
	}

	cmd, err := commands.NewDeleteMenuItemCommand(currentPrincipal(ctx), itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DeleteMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) groupListHandler(role principal.Role) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		query, err := queries.NewListGroupMembersQuery(currentPrincipal(ctx), role)
		if err != nil {
			return respondError(ctx, err)
		}

		members, err := s.handlers.ListGroupMembers.Handle(ctx.Request().Context(), query)
		if err != nil {
			return respondError(ctx, err)
		}

		return ctx.JSON(http.StatusOK, toGroupMemberPayloads(members))
	}
}

func (s *Server) groupAddHandler(role principal.Role) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var req GroupMemberRequest
		if err := ctx.Bind(&req); err != nil {
			return badRequest(ctx, "invalid request body")
		}

		cmd, err := commands.NewAddGroupMemberCommand(currentPrincipal(ctx), req.Username, role)
		if err != nil {
			return respondError(ctx, err)
		}

		added, err := s.handlers.AddGroupMember.Handle(ctx.Request().Context(), cmd)
		if err != nil {
			return respondError(ctx, err)
		}

		if !added {
			return ctx.NoContent(http.StatusOK)
		}

		return ctx.NoContent(http.StatusCreated)
	}
}

func (s *Server) groupRemoveHandler(role principal.Role) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		userID, err := kernel.UUIDFromString(ctx.Param("id"))
		if err != nil {
			return badRequest(ctx, "invalid user id")
		}

		cmd, err := commands.NewRemoveGroupMemberCommand(currentPrincipal(ctx), userID, role)
		if err != nil {
			return respondError(ctx, err)
		}

		if err := s.handlers.RemoveGroupMember.Handle(ctx.Request().Context(), cmd); err != nil {
			return respondError(ctx, err)
		}

		return ctx.NoContent(http.StatusOK)
	}
}

// ListCartItems handles GET /api/cart/menu-items.
func (s *Server) ListCartItems(ctx echo.Context) error {
	query, err := queries.NewListCartItemsQuery(currentPrincipal(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	cart, err := s.handlers.ListCartItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartPayload(cart))
}

// AddCartItem handles POST /api/cart/menu-items.
func (s *Server) AddCartItem(ctx echo.Context) error {
	var req CartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(req.MenuItemID)
	if err != nil {
		return badRequest(ctx, "invalid menu item id")
	}

	cmd, err := commands.NewAddCartItemCommand(currentPrincipal(ctx).ID(), menuItemID, req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.AddCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ClearCart handles DELETE /api/cart/menu-items.
func (s *Server) ClearCart(ctx echo.Context) error {
	cmd, err := commands.NewClearCartCommand(currentPrincipal(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	query, err := queries.NewListOrdersQuery(currentPrincipal(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	payloads := make([]OrderPayload, 0, len(orders))
	for _, o := range orders {
		payloads = append(payloads, toOrderPayload(o))
	}

	return ctx.JSON(http.StatusOK, payloads)
}

// CreateOrder handles POST /api/orders. It converts the actor's cart into an
// order and clears the cart in the same transaction.
func (s *Server) CreateOrder(ctx echo.Context) error {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), currentPrincipal(ctx).ID())
	if err != nil {
		return respondError(ctx, err)
	}

	placed, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toCreatedOrderPayload(placed))
}

// GetOrder handles GET /api/orders/:id. The response is the order's item
// lines only; the order fields themselves come from the listing.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(currentPrincipal(ctx), orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderItemPayloads(items))
}

// ReplaceOrder handles PUT /api/orders/:id. Managers set the status and the
// delivery crew assignment in one shot; omitting delivery_crew_id clears the
// assignment.
func (s *Server) ReplaceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req OrderReplaceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	var crewID *kernel.UUID
	if req.DeliveryCrewID != nil {
		parsed, parseErr := kernel.UUIDFromString(*req.DeliveryCrewID)
		if parseErr != nil {
			return badRequest(ctx, "invalid delivery crew id")
		}
		crewID = &parsed
	}

	cmd, err := commands.NewReplaceOrderCommand(currentPrincipal(ctx), orderID, status, crewID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.ReplaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// PartialUpdateOrder handles PATCH /api/orders/:id. The raw key set is
// preserved so the status-only rule for delivery crew can reject payloads
// carrying anything beyond the status field.
func (s *Server) PartialUpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var fields map[string]json.RawMessage
	if err := json.NewDecoder(ctx.Request().Body).Decode(&fields); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var status *order.Status
	if raw, ok := fields["status"]; ok {
		var statusString string
		if err := json.Unmarshal(raw, &statusString); err != nil {
			return badRequest(ctx, "invalid status")
		}
		parsed, parseErr := order.StatusFromString(statusString)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		status = &parsed
	}

	var crewID *kernel.UUID
	var unassignCrew bool
	if raw, ok := fields["delivery_crew_id"]; ok {
		var crewString *string
		if err := json.Unmarshal(raw, &crewString); err != nil {
			return badRequest(ctx, "invalid delivery crew id")
		}
		if crewString == nil {
			unassignCrew = true
		} else {
			parsed, parseErr := kernel.UUIDFromString(*crewString)
			if parseErr != nil {
				return badRequest(ctx, "invalid delivery crew id")
			}
			crewID = &parsed
		}
	}

	var extraFields []string
	for name := range fields {
		if name != "status" && name != "delivery_crew_id" {
			extraFields = append(extraFields, name)
		}
	}

	cmd, err := commands.NewPartialUpdateOrderCommand(
		currentPrincipal(ctx), orderID, status, crewID, unassignCrew, extraFields)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.PartialUpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteOrder handles DELETE /api/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(currentPrincipal(ctx), orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
