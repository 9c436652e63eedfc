package http

import (
	"github.com/gin-gonic/gin"

	appsvc "recipebox/internal/app"
	"recipebox/internal/bootstrap"
	"recipebox/internal/cache"
	"recipebox/internal/repository"
	"recipebox/internal/transport/http/handler"
	"recipebox/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(middleware.RequestLogger(app.Logger), gin.Recovery())

	// A nil *ActivityPublisher must not become a non-nil interface.
	var publisher appsvc.ActivityPublisher
	if app.ActivityPublisher != nil {
		publisher = app.ActivityPublisher
	}

	userRepo := repository.NewUserRepository(app.MySQL)
	recipeRepo := repository.NewRecipeRepository(app.MySQL)
	activityRepo := repository.NewActivityRepository(app.MySQL)
	sessionStore := cache.NewSessionStore(app.Redis, app.Config.SessionTTL())

	sessions := appsvc.NewSessionManager(sessionStore, app.Config.Session.Secret, app.Config.SessionTTL(), publisher)
	authService := appsvc.NewAuthService(userRepo, publisher)
	recipeService := appsvc.NewRecipeService(userRepo, recipeRepo, publisher)
	activityService := appsvc.NewActivityService(userRepo, activityRepo)

	healthHandler := handler.NewHealthHandler(app)
	authHandler := handler.NewAuthHandler(authService, sessions, handler.SessionCookie{
		Name:   app.Config.Session.CookieName,
		Secure: app.Config.Session.CookieSecure,
		MaxAge: int(app.Config.SessionTTL().Seconds()),
	})
	recipeHandler := handler.NewRecipeHandler(recipeService)
	activityHandler := handler.NewActivityHandler(activityService)

	router.GET("/healthz", healthHandler.Check)

	api := router.Group("/")
	api.Use(middleware.Session(sessions, app.Config.Session.CookieName))
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)

	authed := api.Group("/")
	authed.Use(middleware.RequireSession())
	authed.GET("/check_session", authHandler.CheckSession)
	authed.DELETE("/logout", authHandler.Logout)
	authed.GET("/recipes", recipeHandler.List)
	authed.POST("/recipes", recipeHandler.Create)
	authed.GET("/activity", activityHandler.List)

	return router
}
