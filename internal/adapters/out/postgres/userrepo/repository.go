package userrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/principal"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Get retrieves a user by ID with its resolved role set.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (principal.Principal, error) {
	if err := id.Validate(); err != nil {
		return principal.Principal{}, err
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).
		Preload("Roles").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return principal.Principal{}, errs.NewObjectNotFoundError("userID", id.String())
		}
		return principal.Principal{}, err
	}

	return toDomain(dto)
}

// GetByUsername retrieves a user by login name with its resolved role set.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (principal.Principal, error) {
	if username == "" {
		return principal.Principal{}, errs.NewValueIsRequiredError("username")
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).
		Preload("Roles").
		First(&dto, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return principal.Principal{}, errs.NewObjectNotFoundError("username", username)
		}
		return principal.Principal{}, err
	}

	return toDomain(dto)
}

// GetAllInRole retrieves every user holding the given role.
func (r *GormUserRepository) GetAllInRole(ctx context.Context, role principal.Role) ([]principal.Principal, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []UserDTO
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Joins("JOIN user_roles ON user_roles.user_id = users.id").
		Where("user_roles.role = ?", role.String()).
		Order("users.username").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	users := make([]principal.Principal, 0, len(dtos))
	for _, dto := range dtos {
		user, userErr := toDomain(dto)
		if userErr != nil {
			return nil, userErr
		}
		users = append(users, user)
	}

	return users, nil
}

// AddToRole adds the user to the role's group. Idempotent.
func (r *GormUserRepository) AddToRole(ctx context.Context, userID kernel.UUID, role principal.Role) error {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return err
	}

	dto := UserRoleDTO{
		UserID: userID.Bytes(),
		Role:   role.String(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

// RemoveFromRole removes the user from the role's group. Removing a
// non-member succeeds.
func (r *GormUserRepository) RemoveFromRole(ctx context.Context, userID kernel.UUID, role principal.Role) error {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&UserRoleDTO{}, "user_id = ? AND role = ?", userID.Bytes(), role.String()).Error
}
