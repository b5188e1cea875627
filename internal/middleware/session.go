package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"context"  // bounded timeouts for session store lookups
	"net/http" // HTTP status codes for responses
	"time"     // timeouts for session store lookups

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/game-lounge/internal/session"
	"github.com/iliyamo/game-lounge/internal/utils"
)

// resolve validates the session cookie against the signing secret and the
// server-side store.  Both checks must pass: the signature proves the token
// was issued here, the store lookup proves it has not been logged out or
// expired.  On success the account identity is returned.
func resolve(c echo.Context, secret string, store session.Store) (session.Identity, bool) {
	ck, err := c.Cookie(utils.SessionCookie)
	if err != nil || ck.Value == "" {
		return session.Identity{}, false
	}
	claims, err := utils.ParseSessionToken(secret, ck.Value)
	if err != nil {
		return session.Identity{}, false
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	id, err := store.Lookup(ctx, claims.SID)
	if err != nil {
		return session.Identity{}, false
	}
	return id, true
}

// RequireSession protects page routes.  Unauthenticated requests are
// flashed a login notice and redirected to /login before any resource
// handler (and therefore any database access) is reached.  On success the
// identity is injected into the context as `user_id` and `username`.
func RequireSession(secret string, store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := resolve(c, secret, store)
			if !ok {
				utils.SetFlash(c, "error", "Please login to access this page")
				return c.Redirect(http.StatusFound, "/login")
			}
			c.Set("user_id", id.UserID)
			c.Set("username", id.Username)
			return next(c)
		}
	}
}

// RequireSessionAPI protects JSON endpoints.  Unlike the page variant it
// answers 401 with a JSON error body instead of redirecting, since the
// caller is a script rather than a navigating browser.
func RequireSessionAPI(secret string, store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := resolve(c, secret, store)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"status": "error"})
			}
			c.Set("user_id", id.UserID)
			c.Set("username", id.Username)
			return next(c)
		}
	}
}
