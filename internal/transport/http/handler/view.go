package handler

import "recipebox/internal/model"

// UserView is the public shape of a user. It has no password field at all.
type UserView struct {
	ID       uint         `json:"id"`
	Username string       `json:"username"`
	ImageURL string       `json:"image_url"`
	Bio      string       `json:"bio"`
	Recipes  []RecipeView `json:"recipes"`
}

// OwnerView is the user as seen from one of its recipes; it stops the
// user -> recipes -> user expansion after one level.
type OwnerView struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}

type RecipeView struct {
	ID                uint       `json:"id"`
	Title             string     `json:"title"`
	Instructions      string     `json:"instructions"`
	MinutesToComplete int        `json:"minutes_to_complete"`
	UserID            uint       `json:"user_id"`
	User              *OwnerView `json:"user,omitempty"`
}

func newOwnerView(u *model.User) *OwnerView {
	if u == nil {
		return nil
	}
	return &OwnerView{
		ID:       u.ID,
		Username: u.Username,
		ImageURL: u.ImageURL,
		Bio:      u.Bio,
	}
}

func newUserView(u *model.User) UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
		ImageURL: u.ImageURL,
		Bio:      u.Bio,
		Recipes:  newRecipeViews(u.Recipes, u),
	}
}

func newRecipeView(r *model.Recipe, owner *model.User) RecipeView {
	return RecipeView{
		ID:                r.ID,
		Title:             r.Title,
		Instructions:      r.Instructions,
		MinutesToComplete: r.MinutesToComplete,
		UserID:            r.UserID,
		User:              newOwnerView(owner),
	}
}

func newRecipeViews(recipes []model.Recipe, owner *model.User) []RecipeView {
	views := make([]RecipeView, 0, len(recipes))
	for i := range recipes {
		views = append(views, newRecipeView(&recipes[i], owner))
	}
	return views
}
