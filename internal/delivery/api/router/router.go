// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"zerowaste/config"
	"zerowaste/internal/delivery/api/middleware"
	"zerowaste/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	rateLimitScopeLogin    = "login"
	rateLimitScopeRecovery = "password-recovery"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	BookingHandler      *handler.BookingHandler
	ReviewHandler       *handler.ReviewHandler
	PaymentHandler      *handler.PaymentHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	userHandler         *handler.UserHandler
	bookingHandler      *handler.BookingHandler
	reviewHandler       *handler.ReviewHandler
	paymentHandler      *handler.PaymentHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		userHandler:         params.UserHandler,
		bookingHandler:      params.BookingHandler,
		reviewHandler:       params.ReviewHandler,
		paymentHandler:      params.PaymentHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Public auth routes
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimitMiddleware.Limit(rateLimitScopeLogin))
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/verify-email", r.authHandler.VerifyEmail)
		authGroup.POST("/password-recovery", r.authHandler.RequestPasswordRecovery,
			r.rateLimitMiddleware.Limit(rateLimitScopeRecovery))
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	// Anyone may read the reviews an account has written
	apiV1.GET("/reviews/user/:userId", r.reviewHandler.ListByUser)

	userGroup := apiV1.Group("/users/me", r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.GetProfile)
		userGroup.PATCH("", r.userHandler.UpdateProfile)
		userGroup.PUT("", r.userHandler.ReplaceProfile)
		userGroup.DELETE("", r.userHandler.DeleteAccount)
		userGroup.POST("/password", r.userHandler.ChangePassword)
	}

	bookingsGroup := apiV1.Group("/bookings", r.authMiddleware.Authenticate)
	{
		bookingsGroup.POST("", r.bookingHandler.Create)
		bookingsGroup.GET("", r.bookingHandler.List)
		bookingsGroup.GET("/:id", r.bookingHandler.Get)
		bookingsGroup.PATCH("/:id", r.bookingHandler.Update)
		bookingsGroup.PUT("/:id", r.bookingHandler.Replace)
		bookingsGroup.DELETE("/:id", r.bookingHandler.Delete)
		bookingsGroup.POST("/:id/status", r.bookingHandler.AdvanceStatus)
		bookingsGroup.GET("/:id/qr", r.bookingHandler.PickupQR)
	}

	reviewsGroup := apiV1.Group("/reviews", r.authMiddleware.Authenticate)
	{
		reviewsGroup.POST("", r.reviewHandler.Create)
		reviewsGroup.GET("", r.reviewHandler.ListMine)
		reviewsGroup.PUT("/:id", r.reviewHandler.Update)
		reviewsGroup.DELETE("/:id", r.reviewHandler.Delete)
	}

	paymentsGroup := apiV1.Group("/payments", r.authMiddleware.Authenticate)
	{
		paymentsGroup.POST("/verify/:reference", r.paymentHandler.Verify)
	}

	// Staff routes: authenticate first, then check the role
	adminGroup := apiV1.Group("/admin", r.authMiddleware.Authenticate, r.authMiddleware.RequireStaff)
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.POST("/users", r.adminHandler.CreateUser)
		adminGroup.GET("/users/:id", r.adminHandler.GetUser)
		adminGroup.PUT("/users/:id", r.adminHandler.UpdateUser)
		adminGroup.DELETE("/users/:id", r.adminHandler.DeleteUser)
		adminGroup.POST("/bookings/:id/status", r.bookingHandler.AdvanceStatusAsStaff)
		adminGroup.GET("/bookings/:id/qr", r.bookingHandler.PickupQRAsStaff)
		adminGroup.DELETE("/reviews/:id", r.reviewHandler.DeleteAsStaff)
	}
}
