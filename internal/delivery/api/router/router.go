// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"estate/config"
	"estate/internal/delivery/api/middleware"
	"estate/internal/delivery/api/router/handler"
	"estate/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const loginRateLimitScope = "login"

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	FavoriteHandler     *handler.FavoriteHandler
	PropertyHandler     *handler.PropertyHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Metrics             *metrics.Metrics `optional:"true"`
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	favoriteHandler     *handler.FavoriteHandler
	propertyHandler     *handler.PropertyHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	metrics             *metrics.Metrics
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		favoriteHandler:     params.FavoriteHandler,
		propertyHandler:     params.PropertyHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimitMiddleware.Limit(loginRateLimitScope))
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	favoritesGroup := e.Group("/favorites")
	favoritesGroup.Use(r.authMiddleware.Authenticate)
	{
		favoritesGroup.GET("", r.favoriteHandler.List)
		favoritesGroup.POST("", r.favoriteHandler.Add)
		favoritesGroup.DELETE("/:propertyId", r.favoriteHandler.Remove)
	}

	propertiesGroup := e.Group("/properties")
	propertiesGroup.Use(r.authMiddleware.Authenticate)
	{
		propertiesGroup.DELETE("/:propertyId", r.propertyHandler.Delete)
	}
}
