package main

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	_ "github.com/haidrrry/travellingapp/docs" // swagger docs

	"github.com/haidrrry/travellingapp/internal/auth"
	"github.com/haidrrry/travellingapp/internal/cache"
	"github.com/haidrrry/travellingapp/internal/config"
	"github.com/haidrrry/travellingapp/internal/db"
	"github.com/haidrrry/travellingapp/internal/handler"
	"github.com/haidrrry/travellingapp/internal/model"
	"github.com/haidrrry/travellingapp/internal/repository"
	"github.com/haidrrry/travellingapp/internal/router"
	"github.com/haidrrry/travellingapp/internal/service"
)

// @title Travel Planner API
// @version 1.0
// @description Travel-planning API with destinations, trips, bookings with simulated payment, and JWT authentication.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true

	gormDB, err := db.NewMySQL(cfg.DatabaseDSN, cfg.DBCACert)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Destination{},
		&model.Trip{},
		&model.Booking{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	destinationRepo := repository.NewDestinationRepository(gormDB)
	tripRepo := repository.NewTripRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	destinationService := service.NewDestinationService(destinationRepo, cacheClient)
	tripService := service.NewTripService(tripRepo, destinationRepo)
	bookingService := service.NewBookingService(bookingRepo, destinationRepo)
	userService := service.NewUserService(userRepo)

	// Handlers
	healthHandler := handler.NewHealthHandler(gormDB, cacheClient, cfg.Env)
	authHandler := handler.NewAuthHandler(authService)
	destinationHandler := handler.NewDestinationHandler(destinationService)
	tripHandler := handler.NewTripHandler(tripService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	userHandler := handler.NewUserHandler(userService)

	router.Register(
		e,
		cfg,
		healthHandler,
		authHandler,
		destinationHandler,
		tripHandler,
		bookingHandler,
		userHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
