// Package main rental sharing API.
//
// @title           RentShare API
// @version         1.0
// @description     item sharing service (users, items, bookings, requests).
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"rentshare/app/echoServer"
	bookingctrl "rentshare/app/echoServer/controller/booking"
	itemctrl "rentshare/app/echoServer/controller/item"
	requestctrl "rentshare/app/echoServer/controller/request"
	userctrl "rentshare/app/echoServer/controller/user"
	"rentshare/app/echoServer/validation"
	"rentshare/config"
	bookingrepo "rentshare/repository/booking"
	commentrepo "rentshare/repository/comment"
	itemrepo "rentshare/repository/item"
	requestrepo "rentshare/repository/request"
	userrepo "rentshare/repository/user"
	bookingsvc "rentshare/service/booking"
	itemsvc "rentshare/service/item"
	requestsvc "rentshare/service/request"
	usersvc "rentshare/service/user"
	"rentshare/util/database"
	"rentshare/util/obs"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	log := obs.NewLogger(cfg.Env)

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	ur := userrepo.New(db.Pool)
	ir := itemrepo.New(db.Pool)
	br := bookingrepo.New(db.Pool)
	cr := commentrepo.New(db.Pool)
	rr := requestrepo.New(db.Pool)

	// services
	us := usersvc.New(db, ur)
	is := itemsvc.New(db, ir, br, cr, ur)
	bs := bookingsvc.New(db, br, ir, ur, cfg.OverlapGuard)
	rs := requestsvc.New(rr, ir, ur)

	// controllers
	v := validator.New()
	userC := &userctrl.Controller{Svc: us, V: v, Log: log}
	itemC := &itemctrl.Controller{Svc: is, V: v, Log: log}
	bookingC := &bookingctrl.Controller{Svc: bs, V: v, Log: log}
	requestC := &requestctrl.Controller{Svc: rs, V: v, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	echoServer.Register(e, echoServer.C{
		User:    userC,
		Item:    itemC,
		Booking: bookingC,
		Request: requestC,
	})

	log.Info("starting server", "port", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
