package http

import (
	"net/http"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/principal"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the authenticating gateway. Authentication itself
// happens upstream; this service only consumes the resolved identity.
const (
	HeaderUserID        = "X-User-Id"
	HeaderUserName      = "X-User-Name"
	HeaderUserRoles     = "X-User-Roles"
	HeaderUserSuperuser = "X-User-Superuser"
)

const principalContextKey = "principal"

// PrincipalMiddleware resolves the acting principal from gateway headers and
// stores it on the request context. Requests without a valid user id are
// rejected as unauthenticated.
func PrincipalMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			p, err := principalFromHeaders(ctx.Request().Header)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "authentication required",
				})
			}

			ctx.Set(principalContextKey, p)
			return next(ctx)
		}
	}
}

// currentPrincipal returns the principal stored by PrincipalMiddleware.
func currentPrincipal(ctx echo.Context) principal.Principal {
	p, _ := ctx.Get(principalContextKey).(principal.Principal)
	return p
}

func principalFromHeaders(header http.Header) (principal.Principal, error) {
	id, err := kernel.UUIDFromString(header.Get(HeaderUserID))
	if err != nil {
		return principal.Principal{}, err
	}

	username := header.Get(HeaderUserName)

	var roles []principal.Role
	if raw := header.Get(HeaderUserRoles); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			role, roleErr := principal.RoleFromString(strings.TrimSpace(name))
			if roleErr != nil {
				// Unknown group names are ignored: the ordering domain only
				// cares about the roles it defines.
				continue
			}
			roles = append(roles, role)
		}
	}

	isSuperuser := strings.EqualFold(header.Get(HeaderUserSuperuser), "true")

	return principal.NewPrincipal(id, username, roles, isSuperuser)
}
