package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"recipebox/internal/model"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	if err := r.db.WithContext(ctx).Create(activity).Error; err != nil {
		return fmt.Errorf("create activity failed: %w", err)
	}
	return nil
}

// ListRecentByUserID returns the user's newest activities first.
func (r *ActivityRepository) ListRecentByUserID(ctx context.Context, userID uint, limit int) ([]model.Activity, error) {
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	activities := make([]model.Activity, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id DESC").Limit(limit).Find(&activities).Error; err != nil {
		return nil, fmt.Errorf("list activities failed: %w", err)
	}
	return activities, nil
}
