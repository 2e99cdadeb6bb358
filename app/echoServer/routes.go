package echoServer

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"rentshare/app/echoServer/controller/booking"
	"rentshare/app/echoServer/controller/item"
	"rentshare/app/echoServer/controller/request"
	"rentshare/app/echoServer/controller/user"
)

type C struct {
	User    *user.Controller
	Item    *item.Controller
	Booking *booking.Controller
	Request *request.Controller
}

func Register(e *echo.Echo, c C) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Users
	e.POST("/users", c.User.Create)
	e.PATCH("/users/:id", c.User.Update)
	e.GET("/users/:id", c.User.Get)
	e.DELETE("/users/:id", c.User.Delete)
	e.GET("/users", c.User.List)

	// Items
	e.POST("/items", c.Item.Create)
	e.PATCH("/items/:id", c.Item.Update)
	e.GET("/items/:id", c.Item.Get)
	e.GET("/items", c.Item.OwnerItems)
	e.GET("/items/search", c.Item.Search)
	e.POST("/items/:id/comment", c.Item.AddComment)

	// Bookings
	e.POST("/bookings", c.Booking.Create)
	e.PATCH("/bookings/:bookingId", c.Booking.Approve)
	e.GET("/bookings/:bookingId", c.Booking.Get)
	e.GET("/bookings", c.Booking.ListForUser)
	e.GET("/bookings/owner", c.Booking.ListForOwner)

	// Requests
	e.POST("/requests", c.Request.Create)
	e.GET("/requests", c.Request.Own)
	e.GET("/requests/all", c.Request.All)
	e.GET("/requests/:requestId", c.Request.Get)
}
