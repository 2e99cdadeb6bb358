package main

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"rentshare/app/echoServer"
	"rentshare/app/gateway"
	"rentshare/config"
	"rentshare/util/obs"
)

func main() {
	cfg := config.LoadGateway()
	log := obs.NewLogger(cfg.Env)

	h := &gateway.Handler{
		C:   gateway.NewClient(cfg.ServerURL, log),
		V:   validator.New(),
		Log: log,
	}

	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)
	gateway.Register(e, h)

	log.Info("starting gateway", "port", cfg.Port, "server_url", cfg.ServerURL)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
