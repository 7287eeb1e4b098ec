package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"photoevent-admin-go/internal/config"
	"photoevent-admin-go/internal/core"
	"photoevent-admin-go/internal/db"
	"photoevent-admin-go/internal/middleware"
	"photoevent-admin-go/internal/session"
)

// SetupRoutes configures all application routes with their handlers and
// middleware. Global middleware (request id, logging, recovery, CORS) is
// applied to the router in main before this runs.
func SetupRoutes(
	router *gin.Engine,
	appConfig *config.Config,
	logger *zap.Logger,
	sessions *session.Manager,
	authService core.AuthService,
	statsService core.StatsService,
	planService core.PlanService,
	userService core.UserService,
	eventService core.EventService,
) {
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("CRITICAL_SETUP_ERROR: Firebase Auth client is not initialized. AuthMiddleware cannot be created, and routes will not be set up.")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient, sessions, appConfig.AdminEmail)

	authHandler := NewAuthHandler(authService, sessions)
	dashboardHandler := NewDashboardHandler(statsService)
	planHandler := NewPlanHandler(planService)
	userHandler := NewUserHandler(userService)
	eventHandler := NewEventHandler(eventService)

	apiV1 := router.Group("/api/v1")
	{
		// Login is the only route outside the session guard. Session and
		// logout stay public too: an expired session must still be able to
		// ask "am I logged in?" and to clear itself.
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.GET("/session", authHandler.Session)
		}

		// Everything else requires the reconciled server-side session.
		guarded := apiV1.Group("", authMW.RequireSession())
		{
			guarded.GET("/dashboard/stats", dashboardHandler.GetStats)

			subscriptions := guarded.Group("/subscriptions")
			{
				subscriptions.GET("", planHandler.List)
				subscriptions.POST("", planHandler.Create)
				// Bulk deletes additionally demand a verified admin token,
				// not just the server-side session.
				subscriptions.POST("/bulk-delete", authMW.VerifyToken(), planHandler.BulkDelete)
				subscriptions.GET("/most-popular", planHandler.MostPopular)
				subscriptions.GET("/duration/:duration", planHandler.ListByDuration)
				subscriptions.GET("/:planId", planHandler.Get)
				subscriptions.PUT("/:planId", planHandler.Update)
				subscriptions.PATCH("/:planId/status", planHandler.ToggleStatus)
				subscriptions.DELETE("/:planId", planHandler.Delete)
			}

			users := guarded.Group("/users")
			{
				users.GET("", userHandler.List)
				users.POST("/bulk-delete", authMW.VerifyToken(), userHandler.BulkDelete)
				users.GET("/statistics", userHandler.Statistics)
				users.GET("/:userId", userHandler.Get)
				users.GET("/:userId/activity", userHandler.Activity)
				users.PUT("/:userId", userHandler.Update)
				users.DELETE("/:userId", userHandler.Delete)
			}

			events := guarded.Group("/events")
			{
				events.GET("", eventHandler.List)
				events.POST("/bulk-delete", authMW.VerifyToken(), eventHandler.BulkDelete)
				events.GET("/statistics", eventHandler.Statistics)
				events.GET("/:eventId", eventHandler.Get)
				events.GET("/:eventId/guests", eventHandler.Guests)
				events.PUT("/:eventId", eventHandler.Update)
				events.DELETE("/:eventId", eventHandler.Delete)
			}
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Photo event admin backend is healthy."})
	})

	logger.Info("API routes configured successfully under /api/v1 and /health.")
}
