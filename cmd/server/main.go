package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"todo-manager/backend/internal/config"
	"todo-manager/backend/internal/handlers"
	"todo-manager/backend/internal/middleware"
	"todo-manager/backend/internal/monitoring"
	"todo-manager/backend/internal/notifier"
	"todo-manager/backend/internal/services"
	"todo-manager/backend/internal/state"
	"todo-manager/backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	if cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := buildStore(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to initialize storage backend")
	}
	logrus.WithField("storage", store.Name()).Info("storage backend ready")

	st, err := state.New(store)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load application state")
	}

	projectService := services.NewProjectService(st)
	taskService := services.NewTaskService(st)
	notificationService := services.NewNotificationService(st)

	var dispatcher *notifier.Dispatcher
	if cfg.Notifier.Enabled {
		dispatcher = notifier.New(notificationService, cfg.Notifier.PollInterval)
		dispatcher.Start()
	}

	router := gin.New()
	router.Use(middleware.RecoveryWithLog())
	router.Use(monitoring.MetricsMiddleware())
	router.Use(cors.Default())

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMin, cfg.RateLimit.BurstSize, cfg.RateLimit.CleanupInterval)
		router.Use(limiter.Middleware())
	}

	handlers.Register(router, st, projectService, taskService, notificationService)
	router.GET("/metrics", monitoring.MetricsHandler())
	router.GET("/health/live", monitoring.LivenessHandler())
	router.GET("/health/ready", monitoring.ReadinessHandler(func() error {
		_, err := store.Load()
		return err
	}))

	srv := &http.Server{
		Addr:         cfg.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logrus.WithField("addr", srv.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down")

	if dispatcher != nil {
		dispatcher.Stop()
	}
	if limiter != nil {
		limiter.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("forced shutdown")
	}
	logrus.Info("server stopped")
}

func buildStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case "redis":
		return storage.NewRedisStore(&storage.RedisConfig{
			Addr:         cfg.GetRedisAddr(),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			Key:          cfg.Redis.Key,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			MaxRetries:   cfg.Redis.MaxRetries,
			DialTimeout:  cfg.Redis.DialTimeout,
			ReadTimeout:  cfg.Redis.ReadTimeout,
			WriteTimeout: cfg.Redis.WriteTimeout,
		}), nil
	case "database":
		return storage.NewDatabaseStore(cfg.Database.Driver, cfg.Database.DSN)
	default:
		return storage.NewFileStore(cfg.Storage.FilePath)
	}
}
