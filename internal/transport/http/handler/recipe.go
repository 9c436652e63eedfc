package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipebox/internal/app"
	"recipebox/internal/pkg/logx"
	"recipebox/internal/transport/http/middleware"
	"recipebox/internal/transport/http/response"
)

type RecipeHandler struct {
	recipeService *app.RecipeService
}

func NewRecipeHandler(recipeService *app.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

func (h *RecipeHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, app.ErrUnauthenticated)
		return
	}

	owner, err := h.recipeService.List(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, newRecipeViews(owner.Recipes, owner))
}

func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, app.ErrUnauthenticated)
		return
	}

	body, err := readFields(c)
	if err != nil ||
		!body.truthy("title") ||
		!body.truthy("instructions") ||
		!body.truthy("minutes_to_complete") {
		response.Fail(c, http.StatusUnprocessableEntity, app.ErrInvalidInput)
		return
	}
	minutes, err := body.integer("minutes_to_complete")
	if err != nil {
		response.Fail(c, http.StatusUnprocessableEntity, app.ErrInvalidInput)
		return
	}

	recipe, owner, err := h.recipeService.Create(c.Request.Context(), app.CreateRecipeInput{
		UserID:            userID,
		Title:             body.text("title"),
		Instructions:      body.text("instructions"),
		MinutesToComplete: minutes,
	})
	if err != nil {
		// Unexpected persistence errors surface their message with 422.
		h.writeError(c, err, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusCreated, newRecipeView(recipe, owner))
}

func (h *RecipeHandler) writeError(c *gin.Context, err error, fallbackStatus int) {
	switch {
	case errors.Is(err, app.ErrUnauthenticated):
		response.Fail(c, http.StatusUnauthorized, err)
	case errors.Is(err, app.ErrUserNotFound):
		response.Fail(c, http.StatusNotFound, err)
	case errors.Is(err, app.ErrInvalidInput):
		response.Fail(c, http.StatusUnprocessableEntity, err)
	default:
		logx.FromContext(c.Request.Context()).Error("recipe request failed", "error", err)
		if fallbackStatus == http.StatusInternalServerError {
			response.Error(c, fallbackStatus, response.InternalErrorMessage)
			return
		}
		response.Fail(c, fallbackStatus, err)
	}
}
