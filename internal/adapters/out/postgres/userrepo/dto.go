// Package userrepo provides persistence for users and their role
// memberships. Users are managed by an identity system upstream; this
// repository only resolves principals and maintains group membership rows.
package userrepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/principal"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for users.
type UserDTO struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Username    string        `gorm:"type:varchar(150);uniqueIndex"`
	IsSuperuser bool          `gorm:"not null;default:false"`
	Roles       []UserRoleDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// UserRoleDTO represents one role membership row. The role column stores the
// group name ("Manager", "Delivery crew").
type UserRoleDTO struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role   string    `gorm:"type:varchar(32);primaryKey"`
}

// TableName specifies the database table name for role memberships.
func (UserRoleDTO) TableName() string {
	return "user_roles"
}

func toDomain(dto UserDTO) (principal.Principal, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return principal.Principal{}, err
	}

	roles := make([]principal.Role, 0, len(dto.Roles))
	for _, roleDTO := range dto.Roles {
		role, roleErr := principal.RoleFromString(roleDTO.Role)
		if roleErr != nil {
			return principal.Principal{}, roleErr
		}
		roles = append(roles, role)
	}

	return principal.NewPrincipal(id, dto.Username, roles, dto.IsSuperuser)
}
