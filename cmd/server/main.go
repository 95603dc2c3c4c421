package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	storeapp "github.com/jkhopkins39/sxnctuary/internal/application/store"
	"github.com/jkhopkins39/sxnctuary/internal/application/upload"
	"github.com/jkhopkins39/sxnctuary/internal/infrastructure/config"
	"github.com/jkhopkins39/sxnctuary/internal/infrastructure/imagehost"
	"github.com/jkhopkins39/sxnctuary/internal/infrastructure/logger"
	"github.com/jkhopkins39/sxnctuary/internal/infrastructure/persistence"
	"github.com/jkhopkins39/sxnctuary/internal/interfaces/http/handler"
	"github.com/jkhopkins39/sxnctuary/internal/interfaces/http/middleware"
	"github.com/jkhopkins39/sxnctuary/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting SXNCTUARY backend",
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("database", cfg.Database.Driver),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to migrate schema", zap.Error(err))
	}
	log.Info("Database ready")

	// Repositories and services
	productRepo := persistence.NewGormProductRepository(db.DB)
	contentRepo := persistence.NewGormContentRepository(db.DB)
	productService := storeapp.NewProductService(productRepo)
	contentService := storeapp.NewContentService(contentRepo)

	var host upload.ImageHost
	if cfg.Upload.CloudinaryURL != "" {
		host, err = imagehost.NewCloudinary(cfg.Upload.CloudinaryURL, log)
		if err != nil {
			log.Fatal("Failed to initialize image host", zap.Error(err))
		}
	} else {
		log.Warn("No Cloudinary credential configured; uploads will fail")
		host = imagehost.NewDisabled()
	}
	uploadService := upload.NewService(host, upload.Limits{
		MaxFiles:    cfg.Upload.MaxFiles,
		MaxFileSize: cfg.Upload.MaxFileSize,
	})

	// HTTP engine and middleware
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.HTTP.CORSAllowOrigins,
			AllowMethods: cfg.HTTP.CORSAllowMethods,
			AllowHeaders: cfg.HTTP.CORSAllowHeaders,
			MaxAge:       12 * time.Hour,
		}),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	systemHandler := handler.NewSystemHandler(db)
	engine.GET("/health", systemHandler.Health)

	router.NewRouter(engine).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewContentHandler(contentService)).
		Register(handler.NewUploadHandler(uploadService)).
		Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}
