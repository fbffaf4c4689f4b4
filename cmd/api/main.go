package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobtrail/jobtrail/internal/config"
	"github.com/jobtrail/jobtrail/internal/database"
	"github.com/jobtrail/jobtrail/internal/handlers"
	"github.com/jobtrail/jobtrail/internal/router"
	"github.com/jobtrail/jobtrail/internal/services"
	"github.com/jobtrail/jobtrail/internal/session"
	"github.com/jobtrail/jobtrail/pkg/logger"
)

func main() {
	// 1. Configuration (.env + environment)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	zl, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatal("Error building logger: ", err)
	}
	defer zl.Sync()

	// 2. Database + Redis connections
	db, err := database.Connect(cfg)
	if err != nil {
		zl.Fatal("database connection failed", zap.Error(err))
	}
	zl.Info("database connection established")

	rdb, err := database.ConnectRedis(cfg)
	if err != nil {
		zl.Fatal("redis connection failed", zap.Error(err))
	}

	// 3. Session store
	sessionTTL := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	sessions := session.NewStore(rdb, sessionTTL)

	// 4. Core services
	reminderService := services.NewReminderService(db)
	prefService := services.NewPreferenceService(db, reminderService)
	appService := services.NewApplicationService(db, prefService, zl)
	dashboardService := services.NewDashboardService(db)
	exportService := services.NewExportService(db)
	authService := services.NewAuthService(db, sessions, zl,
		time.Duration(cfg.ResetTokenTTLMinutes)*time.Minute)

	// 5. Handlers
	h := router.Handlers{
		Auth:        handlers.NewAuthHandler(authService, !cfg.IsDevelopment(), int(sessionTTL.Seconds())),
		Application: handlers.NewApplicationHandler(appService),
		Reminder:    handlers.NewReminderHandler(reminderService),
		Preference:  handlers.NewPreferenceHandler(prefService),
		Dashboard:   handlers.NewDashboardHandler(dashboardService),
		Export:      handlers.NewExportHandler(exportService),
	}

	// 6. Router & CORS
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowCredentials = false
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	router.Register(r, h, sessions)

	zl.Info("server starting", zap.String("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		zl.Fatal("server failed to start", zap.Error(err))
	}
}
