package main

import (
	"log"
	"time"

	"clubhub/config"
	"clubhub/internal/blob"
	"clubhub/internal/handler"
	"clubhub/internal/redis"
	"clubhub/internal/repository"
	"clubhub/internal/server"
	"clubhub/internal/services"
	"clubhub/pkg/database"
	"clubhub/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()
	l := logger.New(cfg.AppMode)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	blobs, err := blob.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize blob store: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	designRepo := repository.NewDesignRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	linkRepo := repository.NewLinkRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	financeRepo := repository.NewFinanceRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Services
	auditService := services.NewAuditService(auditRepo, l, cfg.AuditPageSize)
	authService := services.NewAuthService(userRepo, auditService, cfg)
	userService := services.NewUserService(userRepo, auditService)
	activityService := services.NewActivityService(activityRepo, blobs, auditService, l)
	designService := services.NewDesignService(designRepo, blobs, auditService, l)
	vendorService := services.NewVendorService(vendorRepo, auditService, l)
	linkService := services.NewLinkService(linkRepo, auditService, l)
	meetingService := services.NewMeetingService(meetingRepo, auditService, l)
	financeService := services.NewFinanceService(financeRepo, blobs, auditService, l)

	// Optional login rate limiting via Redis
	var limiter *redis.RateLimiter
	if cfg.RedisHost != "" {
		client := redis.NewClient(redis.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
		})
		limiter = redis.NewRateLimiter(client, redis.RateLimitConfig{
			LoginLimit:  cfg.LoginRateLimit,
			LoginWindow: time.Duration(cfg.LoginRateWindow) * time.Second,
		})
	}

	handlers := &server.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Activity: handler.NewActivityHandler(activityService),
		Design:   handler.NewDesignHandler(designService),
		Vendor:   handler.NewVendorHandler(vendorService),
		Link:     handler.NewLinkHandler(linkService),
		Meeting:  handler.NewMeetingHandler(meetingService),
		Finance:  handler.NewFinanceHandler(financeService),
		AuditLog: handler.NewAuditLogHandler(auditService),
		User:     handler.NewUserHandler(userService),
	}

	srv := server.New(cfg, l)
	srv.SetupRoutes(handlers, authService, db, limiter)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
