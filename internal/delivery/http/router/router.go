// Package router contains routing setup for the HTTP delivery.
package router

import (
	"ladle/internal/delivery/http/middleware"
	"ladle/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds everything the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	RecipeHandler  *handler.RecipeHandler
	AuthMiddleware *middleware.AuthMiddleware
}

type router struct {
	userHandler    *handler.UserHandler
	recipeHandler  *handler.RecipeHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		recipeHandler:  params.RecipeHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Session lifecycle. check_session resolves the cookie itself so a
	// stale user id and a missing cookie answer identically.
	e.POST("/signup", r.userHandler.Signup)
	e.POST("/login", r.userHandler.Login)
	e.GET("/check_session", r.userHandler.CheckSession)
	e.DELETE("/logout", r.userHandler.Logout, r.authMiddleware.Authenticate)

	recipeGroup := e.Group("/recipes")
	recipeGroup.Use(r.authMiddleware.Authenticate)
	{
		recipeGroup.GET("", r.recipeHandler.List)
		recipeGroup.POST("", r.recipeHandler.Create)
	}
}
