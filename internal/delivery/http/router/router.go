// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"compras/internal/delivery/http/middleware"
	"compras/internal/delivery/http/router/handler"
	"compras/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	RequestHandler   *handler.RequestHandler
	ApprovalHandler  *handler.ApprovalHandler
	PurchaseHandler  *handler.PurchaseHandler
	DashboardHandler *handler.DashboardHandler
	ProfileHandler   *handler.ProfileHandler
	AdminHandler     *handler.AdminHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Identity routes, open to unauthenticated callers
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.params.UserHandler.SignUp)
		authGroup.POST("/signin", r.params.UserHandler.SignIn)
		authGroup.POST("/verificacao", r.params.UserHandler.RequestVerification)
		authGroup.POST("/verificacao/confirmar", r.params.UserHandler.ConfirmVerification)
		authGroup.POST("/senha/redefinir", r.params.UserHandler.RequestPasswordReset)
		authGroup.POST("/senha/confirmar", r.params.UserHandler.ConfirmPasswordReset)
	}

	// Requester routes: any authenticated user
	pedidosGroup := e.Group("/pedidos")
	pedidosGroup.Use(auth.Authenticate)
	{
		pedidosGroup.POST("", r.params.RequestHandler.Submit)
		pedidosGroup.GET("", r.params.RequestHandler.ListMine)
		pedidosGroup.POST("/rastreio", r.params.RequestHandler.Track)
		pedidosGroup.GET("/:id", r.params.RequestHandler.Get)
	}

	// Reviewer routes
	aprovacaoGroup := e.Group("/aprovacao")
	aprovacaoGroup.Use(auth.Authenticate)
	aprovacaoGroup.Use(auth.RequireRole(entity.RoleAdmin.String(), entity.RoleAprovador.String()))
	{
		aprovacaoGroup.GET("/pendentes", r.params.ApprovalHandler.ListPending)
		aprovacaoGroup.POST("/:id/aprovar", r.params.ApprovalHandler.Approve)
		aprovacaoGroup.POST("/:id/reprovar", r.params.ApprovalHandler.Reject)
	}

	// Purchasing-team routes
	comprasGroup := e.Group("/compras")
	comprasGroup.Use(auth.Authenticate)
	comprasGroup.Use(auth.RequireRole(entity.RoleAdmin.String(), entity.RoleComprador.String()))
	{
		comprasGroup.GET("/aprovados", r.params.PurchaseHandler.ListApproved)
		comprasGroup.POST("/:id/confirmar", r.params.PurchaseHandler.Confirm)
		comprasGroup.POST("/:id/nota", r.params.PurchaseHandler.AttachInvoice)
		comprasGroup.GET("/:id/nota", r.params.PurchaseHandler.GetInvoice)
	}

	// Dashboard, any authenticated user
	dashboardGroup := e.Group("/dashboard")
	dashboardGroup.Use(auth.Authenticate)
	{
		dashboardGroup.GET("", r.params.DashboardHandler.Summary)
	}

	// Own profile
	perfilGroup := e.Group("/perfil")
	perfilGroup.Use(auth.Authenticate)
	{
		perfilGroup.GET("", r.params.ProfileHandler.Get)
		perfilGroup.PUT("", r.params.ProfileHandler.Update)
	}

	// Administration
	adminGroup := e.Group("/admin")
	adminGroup.Use(auth.Authenticate)
	adminGroup.Use(auth.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.GET("/usuarios", r.params.AdminHandler.ListUsers)
		adminGroup.GET("/usuarios/:uid/role", r.params.AdminHandler.GetRole)
		adminGroup.PUT("/usuarios/:uid/role", r.params.AdminHandler.SetRole)
	}
}
