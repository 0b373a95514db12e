package auth

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Identity resolution happens upstream; handlers only trust the
// X-User-Id header the gateway sets after authenticating the caller.
const (
	XUserIDHeader = "X-User-Id"

	userIDKeyString = "userIDKey"
)

func MiddlewareUserID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(XUserIDHeader)
		if raw == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "No X-User-Id Header")
		}
		userID, err := strconv.Atoi(raw)
		if err != nil || userID <= 0 {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid X-User-Id Header")
		}
		c.Set(userIDKeyString, userID)
		return next(c)
	}
}

func GetUserID(c echo.Context) (int, error) {
	userID, ok := c.Get(userIDKeyString).(int)
	if !ok {
		return 0, errors.New("invalid userIDKey")
	}
	return userID, nil
}
