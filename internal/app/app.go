package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	controller "mld-backend/internal/controller/http"
	"mld-backend/internal/repo/persistent"
	"mld-backend/internal/usecase"
	"mld-backend/pkg/config"
	"mld-backend/pkg/database"
	"mld-backend/pkg/jwt"
	"mld-backend/pkg/logger"
	"mld-backend/pkg/middleware"
	"mld-backend/pkg/upload"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type App struct {
	cfg        *config.Config
	log        *logger.Logger
	db         *gorm.DB
	jwtService *jwt.Service
	httpServer *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	return &App{
		cfg:        cfg,
		log:        log,
		db:         db,
		jwtService: jwt.NewService(cfg.JWTSecret),
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	newsRepo := persistent.NewNewsRepository(a.db)
	catalogRepo := persistent.NewCatalogRepository(a.db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.log)
	newsUseCase := usecase.NewNewsUseCase(newsRepo, a.log)
	cctvUseCase := usecase.NewCatalogUseCase(catalogRepo, usecase.CCTVCatalog, a.log)
	nanoBeamUseCase := usecase.NewCatalogUseCase(catalogRepo, usecase.NanoBeamCatalog, a.log)
	internetUseCase := usecase.NewCatalogUseCase(catalogRepo, usecase.InternetCatalog, a.log)

	saver := upload.NewSaver(a.cfg.UploadDir)

	// Initialize HTTP handlers
	authHandler := controller.NewAuthHandler(authUseCase)
	newsHandler := controller.NewNewsHandler(newsUseCase, saver, a.log)
	cctvHandler := controller.NewCatalogHandler(cctvUseCase, saver, a.log)
	nanoBeamHandler := controller.NewCatalogHandler(nanoBeamUseCase, saver, a.log)
	internetHandler := controller.NewCatalogHandler(internetUseCase, saver, a.log)

	authRequired := middleware.AuthMiddleware(a.jwtService, authUseCase.ResolveRole)
	adminRequired := middleware.RequireRole("admin")

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded images are served straight from disk
	r.Static("/uploads", a.cfg.UploadDir)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/setup", authHandler.Setup)
		auth.GET("/me", authRequired, authHandler.Me)
		auth.PUT("/profile", authRequired, authHandler.UpdateProfile)
	}

	catalogs := map[string]*controller.CatalogHandler{
		"/cctv-products":     cctvHandler,
		"/nanobeam-products": nanoBeamHandler,
		"/internet-packages": internetHandler,
	}
	for path, handler := range catalogs {
		group := api.Group(path)
		group.GET("", handler.List)
		group.GET("/:id", handler.Get)
		group.POST("", authRequired, handler.Create)
		group.PUT("/:id", authRequired, handler.Update)
		group.DELETE("/:id", authRequired, handler.Delete)
	}

	news := api.Group("/news")
	{
		news.GET("", newsHandler.List)
		news.GET("/:id", newsHandler.Get)

		news.POST("", authRequired, adminRequired, newsHandler.Create)
		news.PUT("/:id", authRequired, adminRequired, newsHandler.Update)
		news.DELETE("/:id", authRequired, adminRequired, newsHandler.Delete)

		news.POST("/:id/like", authRequired, newsHandler.Like)
		news.POST("/:id/comment", authRequired, newsHandler.AddComment)
		news.DELETE("/:id/comment/:commentId", authRequired, newsHandler.DeleteComment)
		news.POST("/:id/comment/:commentId/reply", authRequired, newsHandler.AddReply)
		news.DELETE("/:id/comment/:commentId/reply/:replyId", authRequired, newsHandler.DeleteReply)
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Server starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down server...")
}

func (a *App) Shutdown() error {
	// The context gives in-flight requests 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	// Shutdown server
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Server exited")
	return nil
}
