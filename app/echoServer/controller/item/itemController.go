package item

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"rentshare/app/echoServer/web"
	"rentshare/model"
	itemsvc "rentshare/service/item"
)

type Controller struct {
	Svc itemsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /items
func (h *Controller) Create(c echo.Context) error {
	userID, err := web.UserID(c)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	var req CreateItemReq
	if err := c.Bind(&req); err != nil {
		return web.RespondBindError(c, "body", "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return web.RespondBindError(c, "body", err.Error())
	}

	it, err := h.Svc.Add(c.Request().Context(), userID, model.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	})
	if err != nil {
		h.Log.Error("item create", "err", err, "user_id", userID)
		return web.RespondError(c, h.Log, err)
	}
	return c.JSON(http.StatusCreated, it)
}

// PATCH /items/:id
func (h *Controller) Update(c echo.Context) error {
	userID, err := web.UserID(c)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	itemID, err := web.PathID(c, "id")
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	var req UpdateItemReq
	if err := c.Bind(&req); err != nil {
		return web.RespondBindError(c, "body", "invalid JSON")
	}

	it, err := h.Svc.Update(c.Request().Context(), userID, itemID, model.ItemPatch{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		h.Log.Error("item update", "err", err, "item_id", itemID)
		return web.RespondError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, it)
}

// GET /items/:id
func (h *Controller) Get(c echo.Context) error {
	userID, err := web.UserID(c)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	itemID, err := web.PathID(c, "id")
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	view, err := h.Svc.Get(c.Request().Context(), itemID, userID)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, view)
}

// GET /items
func (h *Controller) OwnerItems(c echo.Context) error {
	userID, err := web.UserID(c)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	p, err := web.PageFromQuery(c)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	views, err := h.Svc.OwnerItems(c.Request().Context(), userID, p)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, views)
}

// GET /items/search?text=
func (h *Controller) Search(c echo.Context) error {
	if _, err := web.UserID(c); err != nil {
		return web.RespondError(c, h.Log, err)
	}
	p, err := web.PageFromQuery(c)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	items, err := h.Svc.Search(c.Request().Context(), c.QueryParam("text"), p)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, items)
}

// POST /items/:id/comment
func (h *Controller) AddComment(c echo.Context) error {
	userID, err := web.UserID(c)
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	itemID, err := web.PathID(c, "id")
	if err != nil {
		return web.RespondError(c, h.Log, err)
	}
	var req CreateCommentReq
	if err := c.Bind(&req); err != nil {
		return web.RespondBindError(c, "body", "invalid JSON")
	}
	if err := h.V.Struct(req); err != nil {
		return web.RespondBindError(c, "text", err.Error())
	}

	comment, err := h.Svc.AddComment(c.Request().Context(), userID, itemID, req.Text)
	if err != nil {
		h.Log.Error("comment create", "err", err, "item_id", itemID, "user_id", userID)
		return web.RespondError(c, h.Log, err)
	}
	return c.JSON(http.StatusOK, comment)
}
