package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// UserIDHeader carries the acting user's id. It is the only trusted source
// of identity; booker/owner ids in request bodies are ignored.
const UserIDHeader = "X-Sharer-User-Id"

func userIDFromHeader(c echo.Context) (uint, error) {
	raw := c.Request().Header.Get(UserIDHeader)
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "missing "+UserIDHeader+" header")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+UserIDHeader+" header")
	}
	return uint(id), nil
}

func idParam(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// pageParams reads from/size with the historical defaults from=0, size=10.
func pageParams(c echo.Context) (int, int, error) {
	from, size := 0, 10
	if raw := c.QueryParam("from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid from parameter")
		}
		from = v
	}
	if raw := c.QueryParam("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid size parameter")
		}
		size = v
	}
	return from, size, nil
}
