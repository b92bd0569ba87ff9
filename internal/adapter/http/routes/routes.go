package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "petsit_booking/docs"
	"petsit_booking/internal/adapter/http/middleware"
	"petsit_booking/internal/config"
	"petsit_booking/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Run loads the configuration, wires the service and serves HTTP until SIGINT or SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := Build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	if cfg.Environment != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter mounts every route on a fresh engine.
func NewRouter(d Dependencies) *gin.Engine {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	router.Use(
		middleware.CORS(),
		middleware.RequestLogger(log, d.Metrics),
		middleware.Recovery(log),
	)

	router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addNotificationRoutes(v1, d)

	authed := v1.Group("", d.Auth.RequireAuth())
	idempotent := idempotency(d, log)
	addBookingRoutes(authed, d, idempotent)
	addAdminRoutes(authed, d, idempotent)

	return router
}

func idempotency(d Dependencies, log *zap.Logger) gin.HandlerFunc {
	if d.Idempotency == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return middleware.Idempotency(d.Idempotency, log)
}
