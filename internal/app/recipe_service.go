package app

import (
	"context"
	"errors"
	"fmt"

	"recipebox/internal/model"
	"recipebox/internal/repository"
)

type RecipeService struct {
	userRepo   *repository.UserRepository
	recipeRepo *repository.RecipeRepository
	publisher  ActivityPublisher
}

type CreateRecipeInput struct {
	UserID            uint
	Title             string
	Instructions      string
	MinutesToComplete int
}

func NewRecipeService(userRepo *repository.UserRepository, recipeRepo *repository.RecipeRepository, publisher ActivityPublisher) *RecipeService {
	return &RecipeService{
		userRepo:   userRepo,
		recipeRepo: recipeRepo,
		publisher:  publisher,
	}
}

// List returns the owner with its recipes attached.
func (s *RecipeService) List(ctx context.Context, userID uint) (*model.User, error) {
	owner, err := s.owner(ctx, userID)
	if err != nil {
		return nil, err
	}
	recipes, err := s.recipeRepo.ListByUserID(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	owner.Recipes = recipes
	return owner, nil
}

// Create stores a recipe owned by input.UserID and returns it with its owner.
func (s *RecipeService) Create(ctx context.Context, input CreateRecipeInput) (*model.Recipe, *model.User, error) {
	if input.UserID == 0 {
		return nil, nil, ErrUnauthenticated
	}
	if input.Title == "" || input.Instructions == "" || input.MinutesToComplete == 0 {
		return nil, nil, ErrInvalidInput
	}

	owner, err := s.owner(ctx, input.UserID)
	if err != nil {
		return nil, nil, err
	}

	recipe := &model.Recipe{
		Title:             input.Title,
		Instructions:      input.Instructions,
		MinutesToComplete: input.MinutesToComplete,
		UserID:            owner.ID,
	}
	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		if errors.Is(err, model.ErrInstructionsTooShort) {
			return nil, nil, fmt.Errorf("%w: %w", ErrInvalidInput, model.ErrInstructionsTooShort)
		}
		return nil, nil, err
	}

	recordActivity(ctx, s.publisher, owner.ID, model.ActivityRecipeCreated, recipe.ID)
	return recipe, owner, nil
}

func (s *RecipeService) owner(ctx context.Context, userID uint) (*model.User, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
