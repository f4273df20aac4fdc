// File: management/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"management/config"
	"management/database"
	"management/database/repository"
	"management/handlers"
	"management/middleware"
	"management/routes"
	"management/services/admin"
	"management/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			log.Fatalf("main: invalid configuration: %v", cfgErr)
		}
		log.Fatalf("main: failed to load configuration: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("main: failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("main: invalid timezone", zap.Error(err))
	}

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(rootCtx, cfg, logger)
	if err != nil {
		logger.Fatal("main: failed to connect to reservation store", zap.Error(err))
	}

	authCache, err := utils.NewAuthCacheClient(rootCtx, cfg)
	if err != nil {
		logger.Fatal("main: failed to initialize auth cache", zap.Error(err))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	// repositories.
	reservations := repository.NewMongoReservationQueryRepo(
		database.ReservationCollection(client, cfg),
		repository.ReservationQueryOptions{
			Logger:       logger,
			Location:     loc,
			QueryTimeout: cfg.QueryTimeout,
		},
	)

	// services.
	adminService := admin.NewAdminService(reservations, logger)
	adminHandler := handlers.NewAdminHandler(adminService, loc)

	if cfg.JWTSecret == "" {
		logger.Warn("main: JWT_SECRET is empty, every staff request will be rejected")
	}
	staffAuth := middleware.StaffAuth{
		Secret: []byte(cfg.JWTSecret),
		Roles:  cfg.Roles(),
	}
	var cachePinger utils.Pinger
	if authCache != nil {
		staffAuth.Cache = &utils.RedisVerdictCache{Client: authCache, TTL: cfg.AuthCacheTTL}
		cachePinger = utils.PingerFunc(func(ctx context.Context) error {
			return authCache.Ping(ctx).Err()
		})
	}

	monitor := utils.NewHealthMonitor(reservations, cachePinger, logger)
	monitor.Start(rootCtx, utils.HealthCheckInterval)
	healthHandler := &handlers.HealthHandler{Monitor: monitor}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		StaffAuth: middleware.StaffAuthMiddleware(staffAuth),

		GetDashboardStatsHandler: adminHandler.GetDashboardStatsHandler,

		ListReservationsHandler:        adminHandler.ListReservationsHandler,
		ListOverdueReservationsHandler: adminHandler.ListOverdueReservationsHandler,
		ListPendingCollectionsHandler:  adminHandler.ListPendingCollectionsHandler,

		HealthCheckHandler: healthHandler.HealthCheckHandler,
	}

	routes.RegisterRoutes(router, handlerBundle, cfg.AllowedOrigins())

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	<-rootCtx.Done()
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if authCache != nil {
		_ = authCache.Close()
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("main: failed to disconnect from reservation store: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
