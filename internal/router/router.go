package router

import (
	"github.com/gin-gonic/gin"

	"github.com/jobtrail/jobtrail/internal/handlers"
	"github.com/jobtrail/jobtrail/internal/middleware"
	"github.com/jobtrail/jobtrail/internal/session"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Application *handlers.ApplicationHandler
	Reminder    *handlers.ReminderHandler
	Preference  *handlers.PreferenceHandler
	Dashboard   *handlers.DashboardHandler
	Export      *handlers.ExportHandler
}

// Register wires every route. Everything except health and the auth
// endpoints sits behind the session middleware.
func Register(r *gin.Engine, h Handlers, sessions *session.Store) {
	api := r.Group("/api/v1")

	api.GET("/health", handlers.HealthCheck)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.POST("/password-reset/request", h.Auth.RequestPasswordReset)
		auth.POST("/password-reset/confirm", h.Auth.ConfirmPasswordReset)
	}

	private := api.Group("")
	private.Use(middleware.RequireSession(sessions))

	apps := private.Group("/applications")
	{
		apps.GET("", h.Application.List)
		apps.POST("", h.Application.Create)
		apps.GET("/:id", h.Application.Get)
		apps.PUT("/:id", h.Application.Update)
		apps.DELETE("/:id", h.Application.Delete)
		apps.POST("/:id/status", h.Application.UpdateStatus)
		apps.GET("/:id/events", h.Application.Events)
	}

	reminders := private.Group("/reminders")
	{
		reminders.GET("", h.Reminder.List)
		reminders.POST("/:id/complete", h.Reminder.Complete)
	}

	prefs := private.Group("/preferences")
	{
		prefs.GET("", h.Preference.Get)
		prefs.PUT("", h.Preference.Update)
	}

	private.GET("/dashboard", h.Dashboard.Summary)
	private.GET("/export/applications.csv", h.Export.ApplicationsCSV)
}
