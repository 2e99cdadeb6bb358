package booking

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"rentshare/apperr"
	"rentshare/app/echoServer/web"
	"rentshare/model"
	bookingsvc "rentshare/service/booking"
	"rentshare/util/page"
)

type Controller struct {
	Svc bookingsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /bookings
func (h *Controller) Create(c echo.Context) error {
	userID, err := web.UserID(c)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	var req CreateBookingReq
	if err := c.Bind(&req); err != nil {
		return web.RespondBindError(c, "body", "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return web.RespondBindError(c, "itemId", err.Error())
	}
	// LocalTime fields escape the validator's required tag.
	if req.Start.IsZero() {
		return web.RespondBindError(c, "start", "start is required")
	}
	if req.End.IsZero() {
		return web.RespondBindError(c, "end", "end is required")
	}

	b, err := h.Svc.Create(c.Request().Context(), userID, req.ItemID, req.Start.Time, req.End.Time)
	if err != nil {
		h.Log.Error("booking create", "err", err, "user_id", userID, "item_id", req.ItemID)
		return web.RespondError(c, h.Log, err)
	}
	return c.JSON(http.StatusCreated, toResp(b))
}

// PATCH /bookings/:bookingId?approved=
func (h *Controller) Approve(c echo.Context) error {
	userID, err := web.UserID(c)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	bookingID, err := web.PathID(c, "bookingId")
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return web.RespondError(c, h.Log, apperr.Validation("approved", "approved must be true or false"))
	}

	b, err := h.Svc.Approve(c.Request().Context(), userID, bookingID, approved)
	if err != nil {
		h.Log.Error("booking decide", "err", err, "booking_id", bookingID)
		return web.RespondError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, toResp(b))
}

// GET /bookings/:bookingId
func (h *Controller) Get(c echo.Context) error {
	userID, err := web.UserID(c)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	bookingID, err := web.PathID(c, "bookingId")
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	b, err := h.Svc.Get(c.Request().Context(), userID, bookingID)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, toResp(b))
}

// GET /bookings?state=&from=&size=
func (h *Controller) ListForUser(c echo.Context) error {
	return h.list(c, h.Svc.ListForUser)
}

// GET /bookings/owner?state=&from=&size=
func (h *Controller) ListForOwner(c echo.Context) error {
	return h.list(c, h.Svc.ListForOwner)
}

func (h *Controller) list(
	c echo.Context,
	fetch func(ctx context.Context, userID int64, state model.BookingState, p page.Page) ([]model.Booking, error),
) error {
	userID, err := web.UserID(c)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	state, err := stateFromQuery(c)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	p, err := web.PageFromQuery(c)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	bs, err := fetch(c.Request().Context(), userID, state, p)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, toResps(bs))
}

func stateFromQuery(c echo.Context) (model.BookingState, error) {
	raw := c.QueryParam("state")
	if raw == "" {
		return model.StateAll, nil
	}
	state, err := model.StateFromString(raw)
	if err != nil {
		return "", apperr.Unsupported(err.Error())
	}
	return state, nil
}
