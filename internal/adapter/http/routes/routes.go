package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "po_tracker/docs" // generated by swag init
	"po_tracker/internal/adapter/http/middleware"
	"po_tracker/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run wires the application from cfg and serves HTTP until SIGINT/SIGTERM.
func Run(cfg *config.Config) error {
	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	a, err := buildApp(ctx, cfg, prometheus.DefaultRegisterer, nil)
	if err != nil {
		return err
	}
	defer a.close()

	router := newRouter(zap.L(), a)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("[routes] server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-quit:
	}

	zap.L().Info("[routes] shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("[routes] server forced to shutdown", zap.Error(err))
		return err
	}
	zap.L().Info("[routes] server exited")
	return nil
}

func newRouter(l *zap.Logger, a *app) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, l)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addVendorRoutes(v1, a.vendorHandler)
	addPurchaseOrderRoutes(v1, a.purchaseOrderHandler)

	return router
}

func setMiddlewares(router *gin.Engine, l *zap.Logger) {
	router.Use(middleware.Recovery(l))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(l))
	router.Use(middleware.Metrics())
}
