package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, ownerMiddleware gin.HandlerFunc) {
	group := g.Group("/venues")

	// === Public Routes ===
	group.GET("", h.List)
	group.GET("/:id/availability", h.Availability)

	// === Owner Routes ===
	owner := group.Group("")
	owner.Use(authMiddleware, ownerMiddleware)
	{
		owner.POST("", h.Create)
		owner.POST("/:id/block", h.Block)
		owner.GET("/:id/bookings", h.Bookings)
	}
}
