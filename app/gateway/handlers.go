package gateway

import (
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"rentshare/apperr"
	bookingctrl "rentshare/app/echoServer/controller/booking"
	itemctrl "rentshare/app/echoServer/controller/item"
	requestctrl "rentshare/app/echoServer/controller/request"
	userctrl "rentshare/app/echoServer/controller/user"
	"rentshare/app/echoServer/web"
	"rentshare/model"
)

// Handler checks what can be checked without state, then forwards.
type Handler struct {
	C   *Client
	V   *validator.Validate
	Log *slog.Logger
}

// ----- users -----

func (h *Handler) CreateUser(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return web.RespondBindError(c, "body", "unreadable body")
	}
	var req userctrl.CreateUserReq
	if err := json.Unmarshal(body, &req); err != nil {
		return web.RespondBindError(c, "body", "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return web.RespondBindError(c, "body", err.Error())
	}
	return h.C.Forward(c, body)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	if _, err := web.PathID(c, "id"); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	body, err := readBody(c)
	if err != nil {
		return web.RespondBindError(c, "body", "unreadable body")
	}
	var req userctrl.UpdateUserReq
	if err := json.Unmarshal(body, &req); err != nil {
		return web.RespondBindError(c, "body", "invalid JSON")
	}
	if req.Email != nil {
		if err := h.V.Var(*req.Email, "required,email"); err != nil {
			return web.RespondBindError(c, "email", "invalid email")
		}
	}
	return h.C.Forward(c, body)
}

func (h *Handler) GetUser(c echo.Context) error    { return h.forwardWithPathID(c, "id") }
func (h *Handler) DeleteUser(c echo.Context) error { return h.forwardWithPathID(c, "id") }
func (h *Handler) ListUsers(c echo.Context) error  { return h.C.Forward(c, nil) }

// ----- items -----

func (h *Handler) CreateItem(c echo.Context) error {
	if _, err := web.UserID(c); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	body, err := readBody(c)
	if err != nil {
		return web.RespondBindError(c, "body", "unreadable body")
	}
	var req itemctrl.CreateItemReq
	if err := json.Unmarshal(body, &req); err != nil {
		return web.RespondBindError(c, "body", "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return web.RespondBindError(c, "body", err.Error())
	}
	return h.C.Forward(c, body)
}

func (h *Handler) UpdateItem(c echo.Context) error {
	if _, err := web.UserID(c); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	if _, err := web.PathID(c, "id"); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	body, err := readBody(c)
	if err != nil {
		return web.RespondBindError(c, "body", "unreadable body")
	}
	var req itemctrl.UpdateItemReq
	if err := json.Unmarshal(body, &req); err != nil {
		return web.RespondBindError(c, "body", "invalid JSON")
	}
	return h.C.Forward(c, body)
}

func (h *Handler) GetItem(c echo.Context) error {
	if _, err := web.UserID(c); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	return h.forwardWithPathID(c, "id")
}

func (h *Handler) OwnerItems(c echo.Context) error  { return h.forwardListing(c) }
func (h *Handler) SearchItems(c echo.Context) error { return h.forwardListing(c) }

func (h *Handler) AddComment(c echo.Context) error {
	if _, err := web.UserID(c); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	if _, err := web.PathID(c, "id"); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	body, err := readBody(c)
	if err != nil {
		return web.RespondBindError(c, "body", "unreadable body")
	}
	var req itemctrl.CreateCommentReq
	if err := json.Unmarshal(body, &req); err != nil {
		return web.RespondBindError(c, "body", "invalid JSON")
	}
	if strings.TrimSpace(req.Text) == "" {
		return web.RespondBindError(c, "text", "comment text must not be blank")
	}
	return h.C.Forward(c, body)
}

// ----- bookings -----

func (h *Handler) CreateBooking(c echo.Context) error {
	if _, err := web.UserID(c); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	body, err := readBody(c)
	if err != nil {
		return web.RespondBindError(c, "body", "unreadable body")
	}
	var req bookingctrl.CreateBookingReq
	if err := json.Unmarshal(body, &req); err != nil {
		return web.RespondBindError(c, "body", "invalid JSON")
	}
	if req.ItemID <= 0 {
		return web.RespondBindError(c, "itemId", "itemId is required")
	}
	if req.Start.IsZero() {
		return web.RespondBindError(c, "start", "start is required")
	}
	if req.End.IsZero() {
		return web.RespondBindError(c, "end", "end is required")
	}
	return h.C.Forward(c, body)
}

func (h *Handler) ApproveBooking(c echo.Context) error {
	if _, err := web.UserID(c); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	if _, err := web.PathID(c, "bookingId"); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	if _, err := strconv.ParseBool(c.QueryParam("approved")); err != nil {
		return web.RespondError(c, h.Log, apperr.Validation("approved", "approved must be true or false"))
	}
	return h.C.Forward(c, nil)
}

func (h *Handler) GetBooking(c echo.Context) error {
	if _, err := web.UserID(c); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	return h.forwardWithPathID(c, "bookingId")
}

func (h *Handler) ListBookings(c echo.Context) error      { return h.forwardBookingListing(c) }
func (h *Handler) ListOwnerBookings(c echo.Context) error { return h.forwardBookingListing(c) }

// ----- requests -----

func (h *Handler) CreateRequest(c echo.Context) error {
	if _, err := web.UserID(c); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	body, err := readBody(c)
	if err != nil {
		return web.RespondBindError(c, "body", "unreadable body")
	}
	var req requestctrl.CreateRequestReq
	if err := json.Unmarshal(body, &req); err != nil {
		return web.RespondBindError(c, "body", "invalid JSON")
	}
	if strings.TrimSpace(req.Description) == "" {
		return web.RespondBindError(c, "description", "description must not be blank")
	}
	return h.C.Forward(c, body)
}

func (h *Handler) OwnRequests(c echo.Context) error {
	if _, err := web.UserID(c); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	return h.C.Forward(c, nil)
}

func (h *Handler) AllRequests(c echo.Context) error { return h.forwardListing(c) }

func (h *Handler) GetRequest(c echo.Context) error {
	if _, err := web.UserID(c); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	return h.forwardWithPathID(c, "requestId")
}

// ----- shared plumbing -----

func (h *Handler) forwardWithPathID(c echo.Context, name string) error {
	if _, err := web.PathID(c, name); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	return h.C.Forward(c, nil)
}

// forwardListing rejects bad user headers and page windows before the
// round trip.
func (h *Handler) forwardListing(c echo.Context) error {
	if _, err := web.UserID(c); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	if _, err := web.PageFromQuery(c); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	return h.C.Forward(c, nil)
}

func (h *Handler) forwardBookingListing(c echo.Context) error {
	if _, err := web.UserID(c); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	if raw := c.QueryParam("state"); raw != "" {
		if _, err := model.StateFromString(raw); err != nil {
			return web.RespondError(c, h.Log, apperr.Unsupported(err.Error()))
		}
	}
	if _, err := web.PageFromQuery(c); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	return h.C.Forward(c, nil)
}

func readBody(c echo.Context) ([]byte, error) {
	defer c.Request().Body.Close()
	return io.ReadAll(io.LimitReader(c.Request().Body, 1<<20))
}
