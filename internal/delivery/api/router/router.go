// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"suiteprop/internal/delivery/api/middleware"
	"suiteprop/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	DirectoryHandler *handler.DirectoryHandler
	AdminHandler     *handler.AdminHandler
	ResidentHandler  *handler.ResidentHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	directoryHandler *handler.DirectoryHandler
	adminHandler     *handler.AdminHandler
	residentHandler  *handler.ResidentHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		directoryHandler: params.DirectoryHandler,
		adminHandler:     params.AdminHandler,
		residentHandler:  params.ResidentHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Every API v1 route requires a session
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)
	{
		apiV1.GET("/me", r.authHandler.Me)
		apiV1.GET("/units", r.directoryHandler.Units)
		apiV1.GET("/bills", r.directoryHandler.Bills)
		apiV1.GET("/maintenance", r.directoryHandler.MaintenanceRequests)
		apiV1.GET("/lease", r.directoryHandler.Lease)
	}

	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/dashboard", r.adminHandler.Dashboard)
		adminGroup.GET("/revenue", r.adminHandler.Revenue)
		adminGroup.GET("/residents", r.adminHandler.Residents)
		adminGroup.GET("/documents", r.adminHandler.Documents)
		adminGroup.GET("/bills/export", r.adminHandler.ExportBills)
	}

	residentGroup := apiV1.Group("/resident")
	residentGroup.Use(r.authMiddleware.RequireResident)
	{
		residentGroup.GET("/dashboard", r.residentHandler.Dashboard)
		residentGroup.POST("/maintenance", r.residentHandler.SubmitMaintenanceRequest)
		residentGroup.GET("/lease/qr", r.residentHandler.LeaseQRCode)
	}
}
