package web

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"rentshare/apperr"
	"rentshare/util/page"
)

// UserHeader identifies the acting user on every endpoint.
const UserHeader = "X-Sharer-User-Id"

// UserID extracts the acting user from the request header.
func UserID(c echo.Context) (int64, error) {
	raw := c.Request().Header.Get(UserHeader)
	if raw == "" {
		return 0, apperr.Validation(UserHeader, "missing user id header")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation(UserHeader, "invalid user id header")
	}
	return id, nil
}

// PathID parses a positive int64 path parameter.
func PathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation(name, "invalid "+name)
	}
	return id, nil
}

// PageFromQuery parses from/size; absent "from" means an unpaged listing,
// size defaults to 20.
func PageFromQuery(c echo.Context) (page.Page, error) {
	var from *int
	if raw := c.QueryParam("from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return page.Page{}, apperr.Validation("from", "invalid value: "+raw)
		}
		from = &v
	}
	size := 20
	if raw := c.QueryParam("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return page.Page{}, apperr.Validation("size", "invalid value: "+raw)
		}
		size = v
	}
	return page.New(from, size)
}
