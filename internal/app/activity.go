package app

import (
	"context"
	"time"

	"recipebox/internal/model"
	"recipebox/internal/pkg/logx"
)

type ActivityPublisher interface {
	Publish(ctx context.Context, activity model.Activity) error
}

// recordActivity never fails the caller; the activity feed is best effort.
func recordActivity(ctx context.Context, publisher ActivityPublisher, userID uint, kind model.ActivityKind, subjectID uint) {
	if publisher == nil {
		return
	}
	activity := model.Activity{
		UserID:    userID,
		Kind:      kind,
		SubjectID: subjectID,
		CreatedAt: time.Now(),
	}
	if err := publisher.Publish(ctx, activity); err != nil {
		logx.FromContext(ctx).Warn("publish activity failed",
			"kind", kind,
			"user_id", userID,
			"error", err,
		)
	}
}
