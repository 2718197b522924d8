package cartrepo

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetByUser retrieves the user's cart. A user with no stored lines gets an
// empty cart, never an error.
func (r *GormCartRepository) GetByUser(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartLineDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "user_id = ?", userID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomain(userID, dtos)
}

// Save replaces the user's stored lines with the cart's current lines.
func (r *GormCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	if err := c.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).
		Delete(&CartLineDTO{}, "user_id = ?", c.UserID().Bytes()).Error
	if err != nil {
		return err
	}

	if dtos := fromDomain(c); len(dtos) > 0 {
		if err = r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(c.UserID(), c)
	return nil
}

// Clear deletes all of the user's lines.
func (r *GormCartRepository) Clear(ctx context.Context, userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Delete(&CartLineDTO{}, "user_id = ?", userID.Bytes()).Error
}

// PurgeAbandoned deletes lines untouched since the cutoff across all users.
func (r *GormCartRepository) PurgeAbandoned(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Delete(&CartLineDTO{}, "updated_at < ?", olderThan)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
