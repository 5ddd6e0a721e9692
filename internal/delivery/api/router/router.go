// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"habitrack/internal/delivery/api/middleware"
	"habitrack/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	HabitHandler        *handler.HabitHandler
	RecordHandler       *handler.RecordHandler
	GoalHandler         *handler.GoalHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	habitHandler        *handler.HabitHandler
	recordHandler       *handler.RecordHandler
	goalHandler         *handler.GoalHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		habitHandler:        params.HabitHandler,
		recordHandler:       params.RecordHandler,
		goalHandler:         params.GoalHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/verify", r.userHandler.VerifyEmail)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// All API v1 routes require authentication
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	meGroup := apiV1.Group("/me")
	{
		meGroup.GET("", r.userHandler.GetProfile)
		meGroup.PATCH("", r.userHandler.UpdateProfile)
		meGroup.PUT("/fcm-token", r.userHandler.UpdateFCMToken)
		meGroup.DELETE("/fcm-token", r.userHandler.ClearFCMToken)
	}

	habitsGroup := apiV1.Group("/habits")
	{
		habitsGroup.POST("", r.habitHandler.CreateHabit)
		habitsGroup.GET("", r.habitHandler.ListHabits)
		habitsGroup.GET("/:id", r.habitHandler.GetHabit)
		habitsGroup.PUT("/:id", r.habitHandler.UpdateHabit)
		habitsGroup.DELETE("/:id", r.habitHandler.DeleteHabit)

		habitsGroup.POST("/:id/records", r.recordHandler.CreateRecord)
		habitsGroup.GET("/:id/records", r.recordHandler.ListRecords)
		habitsGroup.PUT("/:id/records/:recordId", r.recordHandler.UpdateRecord)
		habitsGroup.DELETE("/:id/records/:recordId", r.recordHandler.DeleteRecord)

		habitsGroup.POST("/:id/goals", r.goalHandler.CreateGoal)
		habitsGroup.GET("/:id/goals", r.goalHandler.ListGoals)
		habitsGroup.GET("/:id/goals/:goalId", r.goalHandler.GetGoal)
		habitsGroup.DELETE("/:id/goals/:goalId", r.goalHandler.DeleteGoal)

		habitsGroup.POST("/:id/notifications", r.notificationHandler.CreateNotification)
		habitsGroup.GET("/:id/notifications", r.notificationHandler.ListNotifications)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.PUT("/:id", r.notificationHandler.UpdateNotification)
		notificationsGroup.DELETE("/:id", r.notificationHandler.DeleteNotification)
	}
}
