package echoServer

import (
	bookingctrl "github.com/SelinaMogicato/Car4You/app/echoServer/controller/booking"
	catalogctrl "github.com/SelinaMogicato/Car4You/app/echoServer/controller/catalog"
	sessionctrl "github.com/SelinaMogicato/Car4You/app/echoServer/controller/session"
	"github.com/SelinaMogicato/Car4You/app/echoServer/jwtx"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Session *sessionctrl.Controller
	Catalog *catalogctrl.Controller
	Booking *bookingctrl.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/sessions", c.Session.Start)

	// Catalog (read-only, no session needed)
	pub.GET("/catalog/vehicles", c.Catalog.Vehicles)
	pub.GET("/catalog/insurance", c.Catalog.Insurance)
	pub.GET("/catalog/extras", c.Catalog.Extras)
	pub.GET("/catalog/locations", c.Catalog.Locations)
	pub.GET("/catalog/colors", c.Catalog.Colors)

	// Booking (session token required)
	bk := e.Group("/v1/booking")
	bk.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(c.JWTSecret),

		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))
	// session id extraction
	bk.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sid, err := jwtx.SessionIDFromContext(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			ctx.Set("session_id", sid)
			return next(ctx)
		}
	})

	bk.GET("", c.Booking.Snapshot)
	bk.DELETE("", c.Booking.EndSession)

	bk.PUT("/vehicle", c.Booking.SetVehicle)
	bk.PUT("/locations", c.Booking.SetLocations)
	bk.PUT("/dates", c.Booking.SetDates)
	bk.PUT("/transmission", c.Booking.SetTransmission)
	bk.PUT("/color", c.Booking.SetColor)
	bk.PUT("/price-range", c.Booking.SetPriceRange)
	bk.PUT("/priority", c.Booking.SetPriority)
	bk.PUT("/insurance", c.Booking.SetInsurance)
	bk.POST("/extras/:id/toggle", c.Booking.ToggleExtra)
	bk.PUT("/contact", c.Booking.SetContact)

	bk.GET("/steps/:step/validity", c.Booking.StepValidity)
	bk.POST("/reset", c.Booking.Reset)
	bk.POST("/confirm", c.Booking.Confirm)
}
