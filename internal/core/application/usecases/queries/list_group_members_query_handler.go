package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListGroupMembersQueryHandler retrieves role membership listings.
type ListGroupMembersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewListGroupMembersQueryHandler creates a handler for membership listings.
func NewListGroupMembersQueryHandler(db *gorm.DB) ListGroupMembersQueryHandler {
	return ListGroupMembersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

// Handle executes the membership listing, sorted by username.
// Returns errs.ErrOperationForbidden when the actor is not a manager.
func (h ListGroupMembersQueryHandler) Handle(
	ctx context.Context,
	query ListGroupMembersQuery,
) ([]GroupMemberResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !h.policy.CanManageGroups(query.Actor()) {
		return nil, errs.NewOperationForbiddenError("manage groups")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.username
		FROM users u
		JOIN user_roles ur ON ur.user_id = u.id
		WHERE ur.role = ?
		ORDER BY u.username
	`, query.Role().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]GroupMemberResponse, 0)
	for rows.Next() {
		var member GroupMemberResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &member.Username); err != nil {
			return nil, err
		}

		if member.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
