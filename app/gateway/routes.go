package gateway

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func Register(e *echo.Echo, h *Handler) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	// Users
	e.POST("/users", h.CreateUser)
	e.PATCH("/users/:id", h.UpdateUser)
	e.GET("/users/:id", h.GetUser)
	e.DELETE("/users/:id", h.DeleteUser)
	e.GET("/users", h.ListUsers)

	// Items
	e.POST("/items", h.CreateItem)
	e.PATCH("/items/:id", h.UpdateItem)
	e.GET("/items/:id", h.GetItem)
	e.GET("/items", h.OwnerItems)
	e.GET("/items/search", h.SearchItems)
	e.POST("/items/:id/comment", h.AddComment)

	// Bookings
	e.POST("/bookings", h.CreateBooking)
	e.PATCH("/bookings/:bookingId", h.ApproveBooking)
	e.GET("/bookings/:bookingId", h.GetBooking)
	e.GET("/bookings", h.ListBookings)
	e.GET("/bookings/owner", h.ListOwnerBookings)

	// Requests
	e.POST("/requests", h.CreateRequest)
	e.GET("/requests", h.OwnRequests)
	e.GET("/requests/all", h.AllRequests)
	e.GET("/requests/:requestId", h.GetRequest)
}
