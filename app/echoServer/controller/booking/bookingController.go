package booking

import (
	"log/slog"
	"net/http"

	"github.com/SelinaMogicato/Car4You/model"
	bs "github.com/SelinaMogicato/Car4You/service/booking"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc bs.Service
	V   *validator.Validate
	Log *slog.Logger
}

func sid(c echo.Context) string {
	s, _ := c.Get("session_id").(string)
	return s
}

func (h *Controller) respond(c echo.Context, snap *bs.Snapshot, err error) error {
	if err != nil {
		h.Log.Error("booking", "path", c.Path(), "err", err)
		switch bs.Code(err) {
		case bs.ErrSessionNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "session not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, snap)
}

// bind decodes and validates the payload; on failure the 400 response is
// already written and the handler must stop.
func (h *Controller) bind(c echo.Context, req any) bool {
	if err := c.Bind(req); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
		return false
	}
	if err := h.V.Struct(req); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
		return false
	}
	return true
}

// GET /v1/booking
func (h *Controller) Snapshot(c echo.Context) error {
	snap, err := h.Svc.Snapshot(c.Request().Context(), sid(c))
	return h.respond(c, snap, err)
}

// DELETE /v1/booking
func (h *Controller) EndSession(c echo.Context) error {
	if err := h.Svc.EndSession(c.Request().Context(), sid(c)); err != nil {
		h.Log.Error("session end", "err", err)
		switch bs.Code(err) {
		case bs.ErrSessionNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "session not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "session ended"})
}

// PUT /v1/booking/vehicle
func (h *Controller) SetVehicle(c echo.Context) error {
	var req SetVehicleReq
	if !h.bind(c, &req) {
		return nil
	}
	snap, err := h.Svc.SetVehicle(c.Request().Context(), sid(c), req.VehicleID)
	return h.respond(c, snap, err)
}

// PUT /v1/booking/locations
func (h *Controller) SetLocations(c echo.Context) error {
	var req SetLocationsReq
	if !h.bind(c, &req) {
		return nil
	}
	snap, err := h.Svc.SetLocations(c.Request().Context(), sid(c), req.PickupLocation, req.ReturnLocation)
	return h.respond(c, snap, err)
}

// PUT /v1/booking/dates
func (h *Controller) SetDates(c echo.Context) error {
	var req SetDatesReq
	if !h.bind(c, &req) {
		return nil
	}
	snap, err := h.Svc.SetDates(c.Request().Context(), sid(c), req.PickupDate, req.ReturnDate)
	return h.respond(c, snap, err)
}

// PUT /v1/booking/transmission
func (h *Controller) SetTransmission(c echo.Context) error {
	var req SetTransmissionReq
	if !h.bind(c, &req) {
		return nil
	}
	snap, err := h.Svc.SetTransmission(c.Request().Context(), sid(c), model.Transmission(req.Transmission))
	return h.respond(c, snap, err)
}

// PUT /v1/booking/color
func (h *Controller) SetColor(c echo.Context) error {
	var req SetColorReq
	if !h.bind(c, &req) {
		return nil
	}
	snap, err := h.Svc.SetColor(c.Request().Context(), sid(c), req.Color)
	return h.respond(c, snap, err)
}

// PUT /v1/booking/price-range
func (h *Controller) SetPriceRange(c echo.Context) error {
	var req SetPriceRangeReq
	if !h.bind(c, &req) {
		return nil
	}
	snap, err := h.Svc.SetPriceRange(c.Request().Context(), sid(c), req.Min, req.Max)
	return h.respond(c, snap, err)
}

// PUT /v1/booking/priority
func (h *Controller) SetPriority(c echo.Context) error {
	var req SetPriorityReq
	if !h.bind(c, &req) {
		return nil
	}
	snap, err := h.Svc.SetPriority(c.Request().Context(), sid(c), model.Priority(req.Priority))
	return h.respond(c, snap, err)
}

// PUT /v1/booking/insurance
func (h *Controller) SetInsurance(c echo.Context) error {
	var req SetInsuranceReq
	if !h.bind(c, &req) {
		return nil
	}
	snap, err := h.Svc.SetInsurance(c.Request().Context(), sid(c), req.InsuranceID)
	return h.respond(c, snap, err)
}

// POST /v1/booking/extras/:id/toggle
func (h *Controller) ToggleExtra(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	snap, err := h.Svc.ToggleExtra(c.Request().Context(), sid(c), id)
	return h.respond(c, snap, err)
}

// PUT /v1/booking/contact
func (h *Controller) SetContact(c echo.Context) error {
	var req SetContactReq
	if !h.bind(c, &req) {
		return nil
	}
	cd := model.ContactDetails{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes,
	}
	snap, err := h.Svc.SetContact(c.Request().Context(), sid(c), cd)
	return h.respond(c, snap, err)
}

// GET /v1/booking/steps/:step/validity
func (h *Controller) StepValidity(c echo.Context) error {
	step, ok := model.ParseStep(c.Param("step"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "unknown step"})
	}
	valid, err := h.Svc.StepValid(c.Request().Context(), sid(c), step)
	if err != nil {
		h.Log.Error("step validity", "err", err)
		switch bs.Code(err) {
		case bs.ErrSessionNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "session not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"step": step, "valid": valid})
}

// POST /v1/booking/reset
func (h *Controller) Reset(c echo.Context) error {
	snap, err := h.Svc.Reset(c.Request().Context(), sid(c))
	return h.respond(c, snap, err)
}

// POST /v1/booking/confirm
func (h *Controller) Confirm(c echo.Context) error {
	conf, err := h.Svc.Confirm(c.Request().Context(), sid(c))
	if err != nil {
		h.Log.Error("confirm", "err", err)
		switch bs.Code(err) {
		case bs.ErrSessionNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "session not found"})
		case bs.ErrIncomplete:
			return c.JSON(http.StatusConflict, echo.Map{"message": "booking incomplete"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, conf)
}
