package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/haidrrry/travellingapp/internal/auth"
	"github.com/haidrrry/travellingapp/internal/config"
	"github.com/haidrrry/travellingapp/internal/errors"
	"github.com/haidrrry/travellingapp/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	destinationHandler *handler.DestinationHandler,
	tripHandler *handler.TripHandler,
	bookingHandler *handler.BookingHandler,
	userHandler *handler.UserHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(corsConfig(cfg)))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/health", healthHandler.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	api.GET("/destinations", destinationHandler.List)
	api.GET("/destinations/search", destinationHandler.Search)
	api.GET("/destinations/:id", destinationHandler.Get)

	api.GET("/trips", tripHandler.List)
	api.GET("/trips/user/:userId", tripHandler.ListByUser)
	api.GET("/trips/:id", tripHandler.Get)

	// Secured routes (require a bearer token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			httpErr := errors.MapErrorToHTTP(errors.ErrUnauthorized)
			return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	}))

	secured.POST("/destinations", destinationHandler.Create)
	secured.PUT("/destinations/:id", destinationHandler.Update)
	secured.DELETE("/destinations/:id", destinationHandler.Delete)

	secured.POST("/trips", tripHandler.Create)
	secured.PUT("/trips/:id", tripHandler.Update)
	secured.DELETE("/trips/:id", tripHandler.Delete)

	secured.POST("/bookings", bookingHandler.Create)
	secured.GET("/bookings", bookingHandler.ListMine)

	secured.GET("/users/:id", userHandler.Get)
	secured.PUT("/users/:id", userHandler.Update)
	secured.DELETE("/users/:id", userHandler.Delete)
}

func corsConfig(cfg *config.Config) middleware.CORSConfig {
	origins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		origins = append(origins, cfg.FrontendURL)
	}
	return middleware.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowCredentials: true,
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
