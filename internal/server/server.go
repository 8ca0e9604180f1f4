package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clubhub/config"
	"clubhub/internal/handler"
	"clubhub/internal/middleware"
	"clubhub/internal/redis"
	"clubhub/internal/services"
	"clubhub/internal/transport/httpdto"
	"clubhub/pkg/database"
	"clubhub/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Activity *handler.ActivityHandler
	Design   *handler.DesignHandler
	Vendor   *handler.VendorHandler
	Link     *handler.LinkHandler
	Meeting  *handler.MeetingHandler
	Finance  *handler.FinanceHandler
	AuditLog *handler.AuditLogHandler
	User     *handler.UserHandler
}

func New(cfg *config.Config, l *logger.Logger) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}
}

// SetupRoutes installs middleware and the full route table. The rate
// limiter may be nil when Redis is not configured.
func (s *Server) SetupRoutes(handlers *Handlers, authService *services.AuthService, db *gorm.DB, limiter *redis.RateLimiter) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware(s.config.CORSOrigins))
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger))

	s.engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"message": "pong"}))
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(db); err != nil {
			c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse(err.Error(), "UNHEALTHY"))
			return
		}
		c.JSON(http.StatusOK, httpdto.NewSuccessResponse(gin.H{"status": "healthy"}))
	})

	authRequired := middleware.AuthMiddleware(authService)
	adminOnly := middleware.RequireAdmin()

	auth := s.engine.Group("/auth")
	{
		login := []gin.HandlerFunc{}
		if limiter != nil {
			login = append(login, middleware.LoginRateLimitMiddleware(limiter))
		}
		login = append(login, handlers.Auth.Login)
		auth.POST("/login", login...)
		auth.POST("/logout", authRequired, handlers.Auth.Logout)
		auth.GET("/check", authRequired, handlers.Auth.Check)
	}

	api := s.engine.Group("/api", authRequired)
	{
		activity := api.Group("/activity")
		{
			activity.POST("/upload", handlers.Activity.Upload)
			activity.GET("/files", handlers.Activity.List)
			activity.GET("/download/:id", handlers.Activity.Download)
			activity.DELETE("/files/:id", handlers.Activity.Delete)
		}

		design := api.Group("/design")
		{
			design.POST("/upload/uniform", handlers.Design.UploadUniform)
			design.POST("/upload/post", handlers.Design.UploadPost)
			design.GET("/files", handlers.Design.List)
			design.GET("/download/:id", handlers.Design.Download)
			design.DELETE("/files/:id", handlers.Design.Delete)
		}

		vendors := api.Group("/vendors")
		{
			vendors.POST("", handlers.Vendor.Create)
			vendors.GET("", handlers.Vendor.List)
			vendors.GET("/:id", handlers.Vendor.Get)
			vendors.PUT("/:id", handlers.Vendor.Update)
			vendors.DELETE("/all", adminOnly, handlers.Vendor.DeleteAll)
			vendors.DELETE("/:id", handlers.Vendor.Delete)
		}

		secretary := api.Group("/secretary")
		{
			secretary.POST("/links", handlers.Link.Create)
			secretary.GET("/links", handlers.Link.List)
			secretary.PUT("/links/:id", handlers.Link.Update)
			secretary.DELETE("/links/:id", handlers.Link.Delete)

			secretary.POST("/meetings", handlers.Meeting.Create)
			secretary.GET("/meetings", handlers.Meeting.List)
			secretary.GET("/meetings/:id", handlers.Meeting.Get)
			secretary.PUT("/meetings/:id", handlers.Meeting.Update)
			secretary.DELETE("/meetings/:id", handlers.Meeting.Delete)
		}

		finance := api.Group("/finance")
		{
			finance.POST("/records", handlers.Finance.Create)
			finance.GET("/records", handlers.Finance.List)
			finance.GET("/records/:id", handlers.Finance.Get)
			finance.PUT("/records/:id", handlers.Finance.Update)
			finance.DELETE("/records/:id", handlers.Finance.Delete)
			finance.GET("/records/:id/receipt", handlers.Finance.DownloadReceipt)
			finance.GET("/statistics", handlers.Finance.Statistics)
		}

		// Reads are open to any authenticated user (the audit filter UI
		// lists usernames); only mutations are admin-gated.
		logs := api.Group("/operation-logs")
		{
			logs.GET("", handlers.AuditLog.List)
			logs.DELETE("/all", adminOnly, handlers.AuditLog.DeleteAll)
			logs.DELETE("/:id", adminOnly, handlers.AuditLog.Delete)
		}

		users := api.Group("/users")
		{
			users.GET("", handlers.User.List)
			users.POST("", adminOnly, handlers.User.Create)
			users.DELETE("/:id", adminOnly, handlers.User.Delete)
		}
	}
}

func (s *Server) Start() error {
	go func() {
		s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Errorf("Error in starting the server: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	s.logger.Infof("Server is running on :%s", s.config.AppPort)

	<-quit

	s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Infof("Error in the graceful shutdown of the server: %s", err)
		return err
	}

	s.logger.Infof("Server stopped gracefully")
	return nil
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
