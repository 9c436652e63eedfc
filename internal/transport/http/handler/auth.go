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

type AuthHandler struct {
	authService *app.AuthService
	sessions    *app.SessionManager
	cookie      SessionCookie
}

// SessionCookie describes how the session reference travels to the client.
type SessionCookie struct {
	Name   string
	Secure bool
	// MaxAge in seconds; 0 makes it a browser-session cookie.
	MaxAge int
}

func (s SessionCookie) set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.Name, token, s.MaxAge, "/", "", s.Secure, true)
}

func (s SessionCookie) clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.Name, "", -1, "/", "", s.Secure, true)
}

func NewAuthHandler(authService *app.AuthService, sessions *app.SessionManager, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		cookie:      cookie,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	body, err := readFields(c)
	if err != nil || !body.truthy("username") || !body.truthy("password") {
		response.Fail(c, http.StatusUnprocessableEntity, app.ErrMissingFields)
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), app.SignupInput{
		Username: body.text("username"),
		Password: body.text("password"),
		ImageURL: body.text("image_url"),
		Bio:      body.text("bio"),
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrMissingFields), errors.Is(err, app.ErrDuplicateUsername):
			response.Fail(c, http.StatusUnprocessableEntity, err)
		default:
			logx.FromContext(c.Request.Context()).Error("signup failed", "error", err)
			response.Fail(c, http.StatusUnprocessableEntity, err)
		}
		return
	}

	if err := h.startSession(c, user.ID); err != nil {
		// Release the username for a retry.
		ctx := c.Request.Context()
		if discardErr := h.authService.DiscardSignup(ctx, user.ID); discardErr != nil {
			logx.FromContext(ctx).Error("discard signup failed", "user_id", user.ID, "error", discardErr)
		}
		response.Error(c, http.StatusInternalServerError, response.InternalErrorMessage)
		return
	}
	c.JSON(http.StatusCreated, newUserView(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	body, err := readFields(c)
	if err != nil || !body.truthy("username") || !body.truthy("password") {
		response.Fail(c, http.StatusUnprocessableEntity, app.ErrMissingFields)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), app.LoginInput{
		Username: body.text("username"),
		Password: body.text("password"),
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrMissingFields):
			response.Fail(c, http.StatusUnprocessableEntity, err)
		case errors.Is(err, app.ErrInvalidCredentials):
			response.Fail(c, http.StatusUnauthorized, err)
		default:
			logx.FromContext(c.Request.Context()).Error("login failed", "error", err)
			response.Error(c, http.StatusInternalServerError, response.InternalErrorMessage)
		}
		return
	}

	if err := h.startSession(c, user.ID); err != nil {
		response.Error(c, http.StatusInternalServerError, response.InternalErrorMessage)
		return
	}
	c.JSON(http.StatusOK, newUserView(user))
}

func (h *AuthHandler) CheckSession(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, app.ErrUnauthenticated)
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Fail(c, http.StatusNotFound, err)
		case errors.Is(err, app.ErrUnauthenticated):
			response.Fail(c, http.StatusUnauthorized, err)
		default:
			logx.FromContext(c.Request.Context()).Error("check session failed", "error", err)
			response.Error(c, http.StatusInternalServerError, response.InternalErrorMessage)
		}
		return
	}

	c.JSON(http.StatusOK, newUserView(user))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.End(c.Request.Context(), middleware.SessionToken(c)); err != nil {
		switch {
		case errors.Is(err, app.ErrUnauthenticated):
			response.Fail(c, http.StatusUnauthorized, err)
		default:
			logx.FromContext(c.Request.Context()).Error("logout failed", "error", err)
			response.Error(c, http.StatusInternalServerError, response.InternalErrorMessage)
		}
		return
	}

	h.cookie.clear(c)
	response.NoContent(c)
}

// startSession replaces any session the client already holds and sets the
// new session cookie. The caller writes the failure response.
func (h *AuthHandler) startSession(c *gin.Context, userID uint) error {
	ctx := c.Request.Context()
	if previous := middleware.SessionToken(c); previous != "" {
		if err := h.sessions.End(ctx, previous); err != nil && !errors.Is(err, app.ErrUnauthenticated) {
			logx.FromContext(ctx).Warn("end previous session failed", "error", err)
		}
	}

	token, err := h.sessions.Start(ctx, userID)
	if err != nil {
		logx.FromContext(ctx).Error("start session failed", "user_id", userID, "error", err)
		return err
	}
	h.cookie.set(c, token)
	c.Set(middleware.ContextUserIDKey, userID)
	return nil
}
