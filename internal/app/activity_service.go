package app

import (
	"context"

	"recipebox/internal/model"
	"recipebox/internal/repository"
)

const recentActivityLimit = 50

// ActivityService reads back the feed the activity worker persists.
type ActivityService struct {
	userRepo     *repository.UserRepository
	activityRepo *repository.ActivityRepository
}

func NewActivityService(userRepo *repository.UserRepository, activityRepo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
	}
}

// Recent returns the user's latest activities, newest first.
func (s *ActivityService) Recent(ctx context.Context, userID uint) ([]model.Activity, error) {
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
	return s.activityRepo.ListRecentByUserID(ctx, user.ID, recentActivityLimit)
}
