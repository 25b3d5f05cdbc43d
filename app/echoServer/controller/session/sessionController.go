package session

import (
	"log/slog"
	"net/http"

	bs "github.com/SelinaMogicato/Car4You/service/booking"
	jwtutil "github.com/SelinaMogicato/Car4You/util/jwt"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc       bs.Service
	JWTSecret string
	TTLHours  int
	Log       *slog.Logger
}

// POST /v1/sessions
func (h *Controller) Start(c echo.Context) error {
	sid, snap, err := h.Svc.StartSession(c.Request().Context())
	if err != nil {
		h.Log.Error("session start", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	tok, err := jwtutil.Issue(h.JWTSecret, sid, h.TTLHours)
	if err != nil {
		h.Log.Error("session token", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"token":     tok,
		"state":     snap.State,
		"totals":    snap.Totals,
		"ttl_hours": h.TTLHours,
	})
}
