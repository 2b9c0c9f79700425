package middleware

import (
	"errors"
	"net/http"

	"gearshare/internal/dto"
	"gearshare/internal/service"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the single place service errors become HTTP statuses.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		msg = svcErr.Message
		switch svcErr.Kind {
		case service.KindNotFound:
			code = http.StatusNotFound
		case service.KindValidation:
			code = http.StatusBadRequest
		case service.KindForbidden:
			code = http.StatusForbidden
		case service.KindConflict:
			code = http.StatusConflict
		}
	} else if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}
