package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"recipebox/internal/model"
)

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func (r *RecipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return fmt.Errorf("create recipe failed: %w", err)
	}
	return nil
}

func (r *RecipeRepository) ListByUserID(ctx context.Context, userID uint) ([]model.Recipe, error) {
	recipes := make([]model.Recipe, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("list recipes failed: %w", err)
	}
	return recipes, nil
}
