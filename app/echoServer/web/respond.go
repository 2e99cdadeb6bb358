// Package web holds the pieces shared by all controllers: the error-to-HTTP
// translation and the common request parameter parsing.
package web

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"rentshare/apperr"
)

type violation struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// RespondError translates a business error into the wire error shape,
// exactly once, at the boundary.
func RespondError(c echo.Context, log *slog.Logger, err error) error {
	field, msg := apperr.Violation(err)
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return violations(c, http.StatusBadRequest, field, msg)
	case apperr.KindNotFound:
		return violations(c, http.StatusNotFound, field, msg)
	case apperr.KindConflict:
		return violations(c, http.StatusConflict, field, msg)
	case apperr.KindUnsupported:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	default:
		log.Error("internal error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}

// RespondBindError reports a malformed body or a failed DTO validation.
func RespondBindError(c echo.Context, field, msg string) error {
	return violations(c, http.StatusBadRequest, field, msg)
}

func violations(c echo.Context, status int, field, msg string) error {
	return c.JSON(status, echo.Map{"violations": []violation{{Name: field, Message: msg}}})
}
