package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "devicedesk/internal/interfaces/http/handlers/ticket"
	"devicedesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler    *tickethandlers.TicketHandler
	AuthMiddleware   *middleware.AuthMiddleware
	TenantMiddleware *middleware.TenantMiddleware
}

// SetupTicketRoutes registers the ticket API under /api/:kind/tickets where
// :kind is one of the three workflows. Kind validation happens in the
// handlers so an unknown segment reads as 404 rather than leaking route
// structure.
func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/api/:kind/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	tickets.Use(config.TenantMiddleware.ResolveTenant())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		tickets.POST("",
			config.TicketHandler.CreateTicket)
		tickets.GET("",
			config.TicketHandler.ListTickets)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.PATCH("/:id/status",
			config.TicketHandler.TransitionStatus)
		tickets.POST("/:id/messages",
			config.TicketHandler.AddMessage)
		tickets.GET("/:id/media",
			config.TicketHandler.ListMedia)

		// Generic parameterized routes (must come LAST)
		tickets.GET("/:id",
			config.TicketHandler.GetTicket)
	}
}
