package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quillpad/blog-service/internal/api/middleware"
)

// ctxOwnerID extracts the authenticated user ID injected by the Auth
// middleware and performs a fast-fail check before any service call: a
// missing or zero ID means the middleware did not run for this route.
func ctxOwnerID(c echo.Context) (int64, error) {
	id, _ := c.Get(middleware.CtxUserID).(int64)
	if id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
