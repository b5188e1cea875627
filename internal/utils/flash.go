package utils

// flash.go implements one-shot notices carried across a redirect in a
// short-lived cookie.  A handler sets the flash before redirecting; the next
// rendered page pops it (read + clear) and shows it to the user.

import (
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const flashCookie = "flash"

// Flash is a single user-visible notice with a category used for styling
// ("success", "error", "info").
type Flash struct {
	Category string
	Message  string
}

// SetFlash stores a notice in the flash cookie.  The value is base64-encoded
// because cookie values cannot contain spaces or separators.
func SetFlash(c echo.Context, category, message string) {
	v := base64.URLEncoding.EncodeToString([]byte(category + "|" + message))
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    v,
		Path:     "/",
		HttpOnly: true,
	})
}

// PopFlash returns the pending notice, if any, and clears the cookie so the
// notice is shown exactly once.
func PopFlash(c echo.Context) (Flash, bool) {
	ck, err := c.Cookie(flashCookie)
	if err != nil || ck.Value == "" {
		return Flash{}, false
	}
	// Expire the cookie regardless of whether the value decodes.
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
	raw, err := base64.URLEncoding.DecodeString(ck.Value)
	if err != nil {
		return Flash{}, false
	}
	category, message, found := strings.Cut(string(raw), "|")
	if !found || message == "" {
		return Flash{}, false
	}
	return Flash{Category: category, Message: message}, true
}
