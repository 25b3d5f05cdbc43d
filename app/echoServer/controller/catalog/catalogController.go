package catalog

import (
	"log/slog"
	"net/http"

	cs "github.com/SelinaMogicato/Car4You/service/catalog"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc cs.Service
	Log *slog.Logger
}

// GET /v1/catalog/vehicles?location=Zürich+Airport
//
// With a location the response is that location's deterministic subset,
// otherwise the full fleet.
func (h *Controller) Vehicles(c echo.Context) error {
	loc := c.QueryParam("location")
	return c.JSON(http.StatusOK, echo.Map{"data": h.Svc.VehiclesForLocation(loc)})
}

// GET /v1/catalog/insurance
func (h *Controller) Insurance(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Svc.InsuranceOptions()})
}

// GET /v1/catalog/extras
func (h *Controller) Extras(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Svc.Extras()})
}

// GET /v1/catalog/locations
func (h *Controller) Locations(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Svc.Locations()})
}

// GET /v1/catalog/colors
func (h *Controller) Colors(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"data": h.Svc.Colors()})
}
