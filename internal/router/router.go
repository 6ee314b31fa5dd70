package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateSlot(c *ginext.Context)
	GetSlot(c *ginext.Context)
	ListSlots(c *ginext.Context)
	DeleteSlot(c *ginext.Context)
	BookSlot(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	ListAudit(c *ginext.Context)
	BookingsReport(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Slots
		api.POST("/slots", h.CreateSlot)
		api.GET("/slots", h.ListSlots)
		api.GET("/slots/:id", h.GetSlot)
		api.DELETE("/slots/:id", h.DeleteSlot)

		// Bookings
		api.POST("/slots/:id/book", h.BookSlot)
		api.DELETE("/bookings/:id", h.CancelBooking)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", h.GetUserBookings)

		// Audit & reports
		api.GET("/audit", h.ListAudit)
		api.GET("/reports/bookings.csv", h.BookingsReport)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
