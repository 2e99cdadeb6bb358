package user

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"rentshare/app/echoServer/web"
	"rentshare/model"
	usersvc "rentshare/service/user"
)

type Controller struct {
	Svc usersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /users
func (h *Controller) Create(c echo.Context) error {
	var req CreateUserReq
	if err := c.Bind(&req); err != nil {
		return web.RespondBindError(c, "body", "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return web.RespondBindError(c, "body", err.Error())
	}

	u, err := h.Svc.Create(c.Request().Context(), req.Name, req.Email)
	if err != nil {
		h.Log.Error("user create", "err", err)
		return web.RespondError(c, h.Log, err)
	}
	return c.JSON(http.StatusCreated, u)
}

// PATCH /users/:id
func (h *Controller) Update(c echo.Context) error {
	id, err := web.PathID(c, "id")
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	var req UpdateUserReq
	if err := c.Bind(&req); err != nil {
		return web.RespondBindError(c, "body", "invalid JSON")
	}

	u, err := h.Svc.Update(c.Request().Context(), id, model.UserPatch{Name: req.Name, Email: req.Email})
	if err != nil {
		h.Log.Error("user update", "err", err, "id", id)
		return web.RespondError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, u)
}

// GET /users/:id
func (h *Controller) Get(c echo.Context) error {
	id, err := web.PathID(c, "id")
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	u, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, u)
}

// DELETE /users/:id
func (h *Controller) Delete(c echo.Context) error {
	id, err := web.PathID(c, "id")
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		h.Log.Error("user delete", "err", err, "id", id)
		return web.RespondError(c, h.Log, err)
	}
	return c.NoContent(http.StatusOK)
}

// GET /users
func (h *Controller) List(c echo.Context) error {
	users, err := h.Svc.All(c.Request().Context())
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(http.StatusOK, users)
}
