// Package main Car4You reservation API.
//
// @title           Car4You Reservation API
// @version         1.0
// @description     Car rental reservation wizard (catalog, booking sessions, pricing).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <session token>
package main

import (
	"log/slog"
	"os"

	"github.com/SelinaMogicato/Car4You/app/echoServer"
	bookingctrl "github.com/SelinaMogicato/Car4You/app/echoServer/controller/booking"
	catalogctrl "github.com/SelinaMogicato/Car4You/app/echoServer/controller/catalog"
	sessionctrl "github.com/SelinaMogicato/Car4You/app/echoServer/controller/session"
	"github.com/SelinaMogicato/Car4You/app/echoServer/validation"
	"github.com/SelinaMogicato/Car4You/config"
	catalogrepo "github.com/SelinaMogicato/Car4You/repository/catalog"
	sessionrepo "github.com/SelinaMogicato/Car4You/repository/session"
	bookingsvc "github.com/SelinaMogicato/Car4You/service/booking"
	catalogsvc "github.com/SelinaMogicato/Car4You/service/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// repos
	cr := catalogrepo.New()
	sr := sessionrepo.New()

	// services
	cs := catalogsvc.New(cr)
	bs := bookingsvc.New(sr, cr)

	// controllers
	v := validator.New()
	sessionC := &sessionctrl.Controller{Svc: bs, JWTSecret: cfg.JWTSecret, TTLHours: cfg.SessionTTLHours, Log: log}
	catalogC := &catalogctrl.Controller{Svc: cs, Log: log}
	bookingC := &bookingctrl.Controller{Svc: bs, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Session: sessionC,
		Catalog: catalogC,
		Booking: bookingC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "PORT_env", os.Getenv("PORT"), "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
