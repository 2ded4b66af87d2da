// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"canteen/internal/delivery/http/middleware"
	"canteen/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	MenuHandler    *handler.MenuHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	menuHandler    *handler.MenuHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		menuHandler:    params.MenuHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes: the member list and login need no session yet.
	authGroup := e.Group("/auth")
	{
		authGroup.GET("/members", r.sessionHandler.Members)
		authGroup.POST("/login", r.sessionHandler.Login)
	}
	authedAuthGroup := e.Group("/auth")
	authedAuthGroup.Use(r.authMiddleware.Authenticate)
	{
		authedAuthGroup.POST("/logout", r.sessionHandler.Logout)
	}

	e.GET("/profile", r.sessionHandler.Profile, r.authMiddleware.Authenticate)

	// Menu browsing requires a session, matching the app's login-first flow.
	menuGroup := e.Group("/menu")
	menuGroup.Use(r.authMiddleware.Authenticate)
	{
		menuGroup.GET("", r.menuHandler.List)
		menuGroup.GET("/categories", r.menuHandler.Categories)
		menuGroup.GET("/:id", r.menuHandler.Get)
	}

	// Cart and checkout
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/quantity", r.cartHandler.UpdateQuantity)
		cartGroup.PATCH("/items/payment-method", r.cartHandler.SetPaymentMethod)
		cartGroup.POST("/checkout", r.cartHandler.Checkout)
	}

	// Kitchen orders; Advance enforces the admin requirement in-core.
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.POST("/:id/advance", r.orderHandler.Advance)
		orderGroup.POST("/delete-request", r.orderHandler.RequestDelete)
		orderGroup.POST("/delete-commit", r.orderHandler.CommitDelete)
	}

	// Household administration requires the admin role.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/users", r.adminHandler.SaveUser)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)
		adminGroup.POST("/dishes", r.adminHandler.SaveDish)
		adminGroup.DELETE("/dishes/:id", r.adminHandler.DeleteDish)
	}
}
