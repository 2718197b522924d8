package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/principal"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipalMiddleware_ResolvesPrincipal(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "550e8400-e29b-41d4-a716-446655440000")
	req.Header.Set(HeaderUserName, "maria")
	req.Header.Set(HeaderUserRoles, principal.ManagerGroupName+", "+principal.DeliveryCrewGroupName)
	rec := httptest.NewRecorder()

	var captured principal.Principal
	handler := PrincipalMiddleware()(func(ctx echo.Context) error {
		captured = currentPrincipal(ctx)
		return ctx.NoContent(http.StatusOK)
	})

	err := handler(e.NewContext(req, rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "maria", captured.Username())
	assert.True(t, captured.IsManager())
	assert.True(t, captured.IsDeliveryCrew())
	assert.False(t, captured.IsSuperuser())
}

func TestPrincipalMiddleware_Superuser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "550e8400-e29b-41d4-a716-446655440000")
	req.Header.Set(HeaderUserName, "admin")
	req.Header.Set(HeaderUserSuperuser, "true")
	rec := httptest.NewRecorder()

	var captured principal.Principal
	handler := PrincipalMiddleware()(func(ctx echo.Context) error {
		captured = currentPrincipal(ctx)
		return ctx.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.True(t, captured.IsSuperuser())
}

func TestPrincipalMiddleware_IgnoresUnknownGroups(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "550e8400-e29b-41d4-a716-446655440000")
	req.Header.Set(HeaderUserName, "petra")
	req.Header.Set(HeaderUserRoles, "Accounting,"+principal.DeliveryCrewGroupName)
	rec := httptest.NewRecorder()

	var captured principal.Principal
	handler := PrincipalMiddleware()(func(ctx echo.Context) error {
		captured = currentPrincipal(ctx)
		return ctx.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.False(t, captured.IsManager())
	assert.True(t, captured.IsDeliveryCrew())
}

func TestPrincipalMiddleware_RejectsMissingUser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	nextCalled := false
	handler := PrincipalMiddleware()(func(ctx echo.Context) error {
		nextCalled = true
		return ctx.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusUnauthorized, body.Code)
}

func TestPrincipalMiddleware_RejectsMalformedUserID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderUserID, "not-a-uuid")
	rec := httptest.NewRecorder()

	handler := PrincipalMiddleware()(func(ctx echo.Context) error {
		return ctx.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "not found maps to 404",
			err:        errs.NewObjectNotFoundError("orderID", "abc"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "forbidden maps to 403",
			err:        errs.NewOperationForbiddenError("delete order"),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "invalid request maps to 400",
			err:        errs.NewInvalidRequestError("You can only update the 'status' field."),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid state maps to 400",
			err:        errs.NewInvalidStateError("cart is empty"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid value maps to 400",
			err:        errs.NewValueIsInvalidError("status"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "required value maps to 400",
			err:        errs.NewValueIsRequiredError("quantity"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unclassified maps to 500",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			require.NoError(t, respondError(e.NewContext(req, rec), tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Code)
		})
	}
}

func TestRespondError_HidesInternalDetails(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, respondError(e.NewContext(req, rec), errors.New("dial tcp: timeout")))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Message)
	assert.NotContains(t, body.Message, "dial tcp")
}

func TestToOrderPayload(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	crewID := kernel.NewUUID()
	total, err := kernel.NewMoneyFromString("42.50")
	require.NoError(t, err)
	date := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	payload := toOrderPayload(queries.OrderResponse{
		ID:             orderID,
		CustomerID:     customerID,
		DeliveryCrewID: &crewID,
		Status:         order.Placed,
		Total:          total,
		Date:           date,
	})

	assert.Equal(t, orderID.String(), payload.ID)
	assert.Equal(t, customerID.String(), payload.CustomerID)
	require.NotNil(t, payload.DeliveryCrewID)
	assert.Equal(t, crewID.String(), *payload.DeliveryCrewID)
	assert.Equal(t, "Placed", payload.Status)
	assert.Equal(t, "42.50", payload.Total)
	assert.Equal(t, date, payload.Date)
}

func TestToOrderPayload_UnassignedCrew(t *testing.T) {
	total, err := kernel.NewMoneyFromString("10.00")
	require.NoError(t, err)

	payload := toOrderPayload(queries.OrderResponse{
		ID:         kernel.NewUUID(),
		CustomerID: kernel.NewUUID(),
		Status:     order.Placed,
		Total:      total,
		Date:       time.Now(),
	})

	assert.Nil(t, payload.DeliveryCrewID)
}

func TestToCartPayload_EmptyCart(t *testing.T) {
	payload := toCartPayload(queries.CartResponse{Total: kernel.ZeroMoney()})

	assert.Empty(t, payload.Lines)
	assert.Equal(t, "0.00", payload.Total)
}
