// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"staradmin/internal/delivery/http/middleware"
	"staradmin/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler      *handler.SessionHandler
	ProductHandler      *handler.ProductHandler
	OrderHandler        *handler.OrderHandler
	CustomerHandler     *handler.CustomerHandler
	MarketingHandler    *handler.MarketingHandler
	FinanceHandler      *handler.FinanceHandler
	BuilderHandler      *handler.BuilderHandler
	AssistantHandler    *handler.AssistantHandler
	UploadHandler       *handler.UploadHandler
	SettingsHandler     *handler.SettingsHandler
	NotificationHandler *handler.NotificationHandler
	SessionMiddleware   *middleware.SessionMiddleware
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
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes; restore is public because it is how a returning
	// operator turns the persisted token back into a session.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.SessionHandler.Login)
		authGroup.POST("/restore", r.params.SessionHandler.Restore)
		authGroup.POST("/logout", r.params.SessionHandler.Logout)
	}

	// Everything else requires a live admin session.
	api := e.Group("/api")
	api.Use(r.params.SessionMiddleware.Authenticate)

	api.GET("/me", r.params.SessionHandler.Me)

	dashboardGroup := api.Group("/dashboard")
	{
		dashboardGroup.GET("/stats", r.params.FinanceHandler.Stats)
		dashboardGroup.GET("/recent-orders", r.params.FinanceHandler.RecentOrders)
	}

	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.params.ProductHandler.List)
		productGroup.POST("", r.params.ProductHandler.Save)
		productGroup.GET("/:id", r.params.ProductHandler.Get)
		productGroup.DELETE("/:id", r.params.ProductHandler.Delete)
		productGroup.POST("/bulk-delete", r.params.ProductHandler.BulkDelete)
		productGroup.POST("/assign-category", r.params.ProductHandler.AssignCategory)
	}

	categoryGroup := api.Group("/categories")
	{
		categoryGroup.GET("", r.params.ProductHandler.Categories)
		categoryGroup.POST("", r.params.ProductHandler.CreateCategory)
	}

	orderGroup := api.Group("/orders")
	{
		orderGroup.GET("", r.params.OrderHandler.List)
		orderGroup.GET("/:id", r.params.OrderHandler.Get)
		orderGroup.PUT("/:id/status", r.params.OrderHandler.UpdateStatus)
	}

	customerGroup := api.Group("/customers")
	{
		customerGroup.GET("", r.params.CustomerHandler.List)
		customerGroup.POST("", r.params.CustomerHandler.Save)
		customerGroup.DELETE("/:id", r.params.CustomerHandler.Delete)
	}

	couponGroup := api.Group("/coupons")
	{
		couponGroup.GET("", r.params.MarketingHandler.Coupons)
		couponGroup.POST("", r.params.MarketingHandler.CreateCoupon)
		couponGroup.DELETE("/:id", r.params.MarketingHandler.DeleteCoupon)
	}

	defectiveGroup := api.Group("/defective-items")
	{
		defectiveGroup.GET("", r.params.MarketingHandler.DefectiveItems)
		defectiveGroup.POST("", r.params.MarketingHandler.CreateDefectiveItem)
		defectiveGroup.DELETE("/:id", r.params.MarketingHandler.DeleteDefectiveItem)
		defectiveGroup.PUT("/:id/status", r.params.MarketingHandler.UpdateDefectiveStatus)
	}

	financeGroup := api.Group("/finance")
	{
		financeGroup.GET("/summary", r.params.FinanceHandler.Summary)
		financeGroup.GET("/revenue", r.params.FinanceHandler.Revenue)
		financeGroup.GET("/refunds", r.params.FinanceHandler.Refunds)
	}

	builderGroup := api.Group("/builder")
	{
		builderGroup.GET("/sections", r.params.BuilderHandler.Sections)
		builderGroup.POST("/sections", r.params.BuilderHandler.AddSection)
		builderGroup.PUT("/sections/:id", r.params.BuilderHandler.UpdateSection)
		builderGroup.DELETE("/sections/:id", r.params.BuilderHandler.DeleteSection)
		builderGroup.POST("/sections/:id/move", r.params.BuilderHandler.MoveSection)
		builderGroup.GET("/pages", r.params.BuilderHandler.Pages)
		builderGroup.POST("/pages", r.params.BuilderHandler.AddPage)
		builderGroup.DELETE("/pages/:page", r.params.BuilderHandler.DeletePage)
		builderGroup.POST("/message", r.params.BuilderHandler.Message)
		builderGroup.GET("/preview-url", r.params.BuilderHandler.PreviewURL)
		builderGroup.PUT("/preview-url", r.params.BuilderHandler.SetPreviewURL)
		builderGroup.GET("/preview-qr", r.params.BuilderHandler.PreviewQR)
	}

	// The assistant stays reachable without a session: it degrades to the
	// canned-answer table and leaks nothing beyond headline stats.
	assistantGroup := e.Group("/api/assistant")
	{
		assistantGroup.POST("/ask", r.params.AssistantHandler.Ask)
		assistantGroup.GET("/history", r.params.AssistantHandler.History)
		assistantGroup.DELETE("/history", r.params.AssistantHandler.Reset)
	}

	api.POST("/uploads", r.params.UploadHandler.UploadImage)

	settingsGroup := api.Group("/settings")
	{
		settingsGroup.GET("", r.params.SettingsHandler.Get)
		settingsGroup.PUT("/theme", r.params.SettingsHandler.SetTheme)
		settingsGroup.PUT("/currency", r.params.SettingsHandler.SetCurrency)
		settingsGroup.GET("/format-price", r.params.SettingsHandler.FormatPrice)
	}

	notificationGroup := api.Group("/notifications")
	{
		notificationGroup.GET("/toasts", r.params.NotificationHandler.Toasts)
		notificationGroup.DELETE("/toasts/:id", r.params.NotificationHandler.DismissToast)
		notificationGroup.GET("/inbox", r.params.NotificationHandler.Inbox)
		notificationGroup.POST("/inbox/:id/read", r.params.NotificationHandler.MarkRead)
		notificationGroup.POST("/inbox/read-all", r.params.NotificationHandler.MarkAllRead)
		notificationGroup.DELETE("/inbox", r.params.NotificationHandler.ClearInbox)
	}

	activityGroup := api.Group("/activity")
	{
		activityGroup.GET("", r.params.NotificationHandler.Activity)
		activityGroup.DELETE("", r.params.NotificationHandler.ClearActivity)
		activityGroup.GET("/export", r.params.NotificationHandler.ExportActivityCSV)
	}

	api.POST("/sync/refresh", r.params.NotificationHandler.RefreshAll)
}
