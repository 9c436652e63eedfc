package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"recipebox/internal/model"
	"recipebox/internal/repository"
)

// unknownUserHash is compared against when a login names no existing user,
// so both failure paths pay for one bcrypt comparison.
var unknownUserHash = sync.OnceValue(func() model.PasswordHash {
	hash, err := model.HashPassword("recipebox:unknown-user")
	if err != nil {
		panic(fmt.Sprintf("hash placeholder password: %v", err))
	}
	return hash
})

type AuthService struct {
	userRepo  *repository.UserRepository
	publisher ActivityPublisher
}

type SignupInput struct {
	Username string
	Password string
	ImageURL string
	Bio      string
}

type LoginInput struct {
	Username string
	Password string
}

func NewAuthService(userRepo *repository.UserRepository, publisher ActivityPublisher) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		publisher: publisher,
	}
}

// Signup relies on the unique index rather than a lookup so that two racing
// signups for one username cannot both succeed.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*model.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, ErrMissingFields
	}

	user := &model.User{
		Username: input.Username,
		ImageURL: input.ImageURL,
		Bio:      input.Bio,
	}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}
	user.Recipes = []model.Recipe{}

	recordActivity(ctx, s.publisher, user.ID, model.ActivitySignup, 0)
	return user, nil
}

// DiscardSignup removes a user created by Signup whose session could not be
// started, releasing the username for a retry.
func (s *AuthService) DiscardSignup(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("discard signup failed: %w", err)
	}
	return nil
}

// Login answers ErrInvalidCredentials for both unknown users and wrong
// passwords.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*model.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		unknownUserHash().Verify(input.Password)
		return nil, ErrInvalidCredentials
	}
	if !user.Authenticate(input.Password) {
		return nil, ErrInvalidCredentials
	}

	full, err := s.userRepo.GetByIDWithRecipes(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if full == nil {
		return nil, ErrInvalidCredentials
	}

	recordActivity(ctx, s.publisher, full.ID, model.ActivityLogin, 0)
	return full, nil
}

// CurrentUser loads the session's user together with its recipes.
func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*model.User, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	user, err := s.userRepo.GetByIDWithRecipes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load current user failed: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
