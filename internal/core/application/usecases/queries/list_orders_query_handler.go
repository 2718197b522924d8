package queries

import (
	"context"
	"database/sql"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves order listings from the database.
// The WHERE clause applies the actor's visibility, so a customer can never
// page through someone else's orders.
type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewListOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle executes the listing scoped to the actor's visibility.
// Results are sorted by date, newest first, then by ID for a stable order.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseQuery = `
		SELECT
			id,
			customer_id,
			delivery_crew_id,
			status,
			total,
			date
		FROM orders
	`
	const ordering = ` ORDER BY date DESC, id`

	var rows *sql.Rows
	var err error

	switch h.policy.OrderVisibility(query.Actor()) {
	case services.VisibilityAll:
		rows, err = h.db.WithContext(ctx).Raw(baseQuery + ordering).Rows()
	case services.VisibilityAssigned:
		rows, err = h.db.WithContext(ctx).Raw(
			baseQuery+` WHERE delivery_crew_id = ?`+ordering,
			query.Actor().ID().Bytes(),
		).Rows()
	case services.VisibilityOwn:
		rows, err = h.db.WithContext(ctx).Raw(
			baseQuery+` WHERE customer_id = ?`+ordering,
			query.Actor().ID().Bytes(),
		).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var id, customerID uuid.UUID
	var crewID *uuid.UUID
	var status string
	var total decimal.Decimal

	err := rows.Scan(
		&id,
		&customerID,
		&crewID,
		&status,
		&total,
		&resp.Date,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderResponse{}, err
	}
	if crewID != nil {
		crew, crewErr := kernel.UUIDFromBytes(crewID[:])
		if crewErr != nil {
			return OrderResponse{}, crewErr
		}
		resp.DeliveryCrewID = &crew
	}
	if resp.Status, err = order.StatusFromString(status); err != nil {
		return OrderResponse{}, err
	}
	if resp.Total, err = kernel.NewMoney(total); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}
