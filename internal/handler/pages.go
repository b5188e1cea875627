package handler

// pages.go holds the handlers for pages without their own resource: the
// public landing page and the authenticated dashboard and word-game stub.

import (
	"github.com/labstack/echo/v4"
)

// PageHandler serves the static-ish pages.
type PageHandler struct{}

func NewPageHandler() *PageHandler { return &PageHandler{} }

// Landing renders the public landing page.
func (h *PageHandler) Landing(c echo.Context) error {
	return render(c, "landing.html", nil)
}

// Dashboard renders the authenticated landing page.
func (h *PageHandler) Dashboard(c echo.Context) error {
	_, username := currentUser(c)
	return render(c, "dashboard.html", echo.Map{"Username": username})
}

// WordGame renders the word-game stub page.
func (h *PageHandler) WordGame(c echo.Context) error {
	_, username := currentUser(c)
	return render(c, "wordgame.html", echo.Map{"Username": username})
}
