// Package gateway is the thin edge in front of the server: it validates
// requests and forwards them unchanged, mirroring the server's response.
package gateway

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"rentshare/app/echoServer/web"
	"rentshare/util/httpx"
)

type Client struct {
	base string
	hc   *http.Client
	log  *slog.Logger
}

func NewClient(base string, log *slog.Logger) *Client {
	return &Client{base: strings.TrimRight(base, "/"), hc: httpx.Client(), log: log}
}

// Forward relays the incoming request to the server with the given body
// and writes the server's status and body back verbatim.
func (cl *Client) Forward(c echo.Context, body []byte) error {
	in := c.Request()
	url := cl.base + in.URL.Path
	if q := in.URL.RawQuery; q != "" {
		url += "?" + q
	}

	out, err := http.NewRequestWithContext(in.Context(), in.Method, url, bytes.NewReader(body))
	if err != nil {
		cl.log.Error("gateway request build", "err", err, "url", url)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
	out.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if v := in.Header.Get(web.UserHeader); v != "" {
		out.Header.Set(web.UserHeader, v)
	}

	resp, err := cl.hc.Do(out)
	if err != nil {
		cl.log.Error("gateway forward", "err", err, "url", url)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "server unavailable"})
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		cl.log.Error("gateway read response", "err", err, "url", url)
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "server unavailable"})
	}
	return c.Blob(resp.StatusCode, echo.MIMEApplicationJSON, b)
}
