package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recipebox/internal/app"
	"recipebox/internal/model"
	"recipebox/internal/pkg/logx"
	"recipebox/internal/transport/http/middleware"
	"recipebox/internal/transport/http/response"
)

type ActivityHandler struct {
	activityService *app.ActivityService
}

type ActivityView struct {
	ID        uint      `json:"id"`
	Kind      string    `json:"kind"`
	SubjectID uint      `json:"subject_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewActivityHandler(activityService *app.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, app.ErrUnauthenticated)
		return
	}

	activities, err := h.activityService.Recent(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUnauthenticated):
			response.Fail(c, http.StatusUnauthorized, err)
		case errors.Is(err, app.ErrUserNotFound):
			response.Fail(c, http.StatusNotFound, err)
		default:
			logx.FromContext(c.Request.Context()).Error("list activity failed", "error", err)
			response.Error(c, http.StatusInternalServerError, response.InternalErrorMessage)
		}
		return
	}

	views := make([]ActivityView, 0, len(activities))
	for _, a := range activities {
		views = append(views, newActivityView(a))
	}
	c.JSON(http.StatusOK, views)
}

func newActivityView(a model.Activity) ActivityView {
	return ActivityView{
		ID:        a.ID,
		Kind:      string(a.Kind),
		SubjectID: a.SubjectID,
		CreatedAt: a.CreatedAt,
	}
}
