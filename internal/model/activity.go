package model

import "time"

type ActivityKind string

const (
	ActivitySignup        ActivityKind = "user.signup"
	ActivityLogin         ActivityKind = "user.login"
	ActivityLogout        ActivityKind = "user.logout"
	ActivityRecipeCreated ActivityKind = "recipe.created"
)

// Activity is an audit record written asynchronously by the activity worker.
type Activity struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uint         `gorm:"not null;index" json:"user_id"`
	Kind      ActivityKind `gorm:"size:32;not null;index" json:"kind"`
	SubjectID uint         `json:"subject_id,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}
