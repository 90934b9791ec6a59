package main // Entry point package

import (
	"context"
	"time"

	"github.com/joho/godotenv"    // loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework
	"github.com/sirupsen/logrus"  // structured logging

	"github.com/iliyamo/restaurant-table-reservation/internal/booking"
	"github.com/iliyamo/restaurant-table-reservation/internal/config"
	"github.com/iliyamo/restaurant-table-reservation/internal/database"
	"github.com/iliyamo/restaurant-table-reservation/internal/handler"
	"github.com/iliyamo/restaurant-table-reservation/internal/middleware"
	"github.com/iliyamo/restaurant-table-reservation/internal/queue"
	"github.com/iliyamo/restaurant-table-reservation/internal/router"
	queue_publisher "github.com/iliyamo/restaurant-table-reservation/internal/service"
	"github.com/iliyamo/restaurant-table-reservation/internal/tools"
)

func main() {
	// Load .env if present; in production configuration comes from the
	// real environment and a missing file is not an error.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if cfg.Env == "dev" {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// All slot keys are interpreted in one reference timezone regardless of
	// where the server runs.
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logrus.WithError(err).Fatalf("invalid REFERENCE_TZ %q", cfg.Timezone)
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	if err := database.Migrate(db, "migrations"); err != nil {
		logrus.WithError(err).Fatal("database migration failed")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Seed(ctx, db); err != nil {
		cancel()
		logrus.WithError(err).Fatal("database seed failed")
	}
	cancel()

	svc := booking.New(db, loc)
	// Publish confirmations after commit; a broker outage only costs the
	// notification, never the booking.
	svc.OnConfirmed = func(ctx context.Context, ev queue.ReservationConfirmedEvent) {
		_ = queue_publisher.PublishReservationConfirmed(ctx, ev)
	}

	e := echo.New()
	e.HideBanner = true

	// Redis-backed rate limiting and response caching.  A nil client means
	// Redis is down or unconfigured; both middlewares degrade to no-ops.
	rdb := config.NewRedisClient()
	if rdb == nil {
		logrus.Warn("redis unavailable; rate limiting and response cache disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	authHandler := handler.NewAuthHandler(cfg)
	restaurantHandler := handler.NewRestaurantHandler(svc)
	reservationHandler := handler.NewReservationHandler(svc)
	toolsHandler := handler.NewToolsHandler(tools.NewDispatcher(svc))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler)
	router.RegisterPublic(e, restaurantHandler, reservationHandler)
	router.RegisterReservations(e, reservationHandler, toolsHandler, cfg.JWTSecret)

	// Consume confirmation events in the background; the consumer keeps its
	// own reconnect loop and never takes the server down.
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			logrus.WithError(err).Error("reservation consumer stopped")
		}
	}()

	addr := ":" + cfg.Port
	logrus.WithFields(logrus.Fields{"addr": addr, "env": cfg.Env, "tz": cfg.Timezone}).Info("listening")

	if err := e.Start(addr); err != nil { // Start HTTP server
		logrus.Fatal(err) // Log and exit if server fails
	}
}
