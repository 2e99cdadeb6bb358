package request

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"rentshare/app/echoServer/web"
	requestsvc "rentshare/service/request"
)

type Controller struct {
	Svc requestsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /requests
func (h *Controller) Create(c echo.Context) error {
	userID, err := web.UserID(c)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	var req CreateRequestReq
	if err := c.Bind(&req); err != nil {
		return web.RespondBindError(c, "body", "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil || strings.TrimSpace(req.Description) == "" {
		return web.RespondBindError(c, "description", "description must not be blank")
	}

	view, err := h.Svc.Add(c.Request().Context(), userID, req.Description)
	if err != nil {
		h.Log.Error("request create", "err", err, "user_id", userID)
		return web.RespondError(c, h.Log, err)
	}
	return c.JSON(http.StatusCreated, view)
}

// GET /requests
func (h *Controller) Own(c echo.Context) error {
	userID, err := web.UserID(c)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	views, err := h.Svc.Own(c.Request().Context(), userID)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, views)
}

// GET /requests/all?from=&size=
func (h *Controller) All(c echo.Context) error {
	userID, err := web.UserID(c)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	p, err := web.PageFromQuery(c)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	views, err := h.Svc.All(c.Request().Context(), userID, p)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, views)
}

// GET /requests/:requestId
func (h *Controller) Get(c echo.Context) error {
	userID, err := web.UserID(c)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	requestID, err := web.PathID(c, "requestId")
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	view, err := h.Svc.Get(c.Request().Context(), userID, requestID)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, view)
}
