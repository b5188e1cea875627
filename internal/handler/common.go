package handler // declare the package name; contains HTTP handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/game-lounge/internal/utils"
)

// render executes a page template, attaching any pending flash notice so
// the template can show it exactly once.
func render(c echo.Context, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	if f, ok := utils.PopFlash(c); ok {
		data["Flash"] = f
	}
	return c.Render(http.StatusOK, name, data)
}

// currentUser reads the identity injected by the session middleware.  It is
// only called from handlers behind RequireSession, so the values are always
// present there.
func currentUser(c echo.Context) (uint64, string) {
	uid, _ := c.Get("user_id").(uint64)
	name, _ := c.Get("username").(string)
	return uid, name
}
