package handler

import (
	"context"  // provides context with cancellation for DB calls
	"errors"   // sentinel error comparisons
	"net/http" // HTTP status codes and cookie type
	"strings"  // string manipulation utilities
	"time"     // timeouts for DB calls and cookie lifetimes

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/game-lounge/internal/config"     // app configuration
	"github.com/iliyamo/game-lounge/internal/repository" // DB repositories
	"github.com/iliyamo/game-lounge/internal/session"    // server-side session store
	"github.com/iliyamo/game-lounge/internal/utils"      // helper functions (hashing, tokens, flash)
)

// AuthHandler bundles dependencies for the register/login/logout pages.
type AuthHandler struct {
	Cfg      config.Config
	Users    *repository.UserRepo
	Sessions session.Store
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, s session.Store) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Sessions: s}
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return render(c, "login.html", nil)
}

// Login authenticates the posted credentials and establishes a session.
// Every failure path flashes the same generic notice so the response never
// reveals whether the username or the password was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	password := c.FormValue("password")
	if username == "" || password == "" {
		utils.SetFlash(c, "error", "Invalid username or password")
		return c.Redirect(http.StatusFound, "/login")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			utils.SetFlash(c, "error", "Invalid username or password")
			return c.Redirect(http.StatusFound, "/login")
		}
		return c.String(http.StatusInternalServerError, "login failed")
	}

	if err := h.establishSession(c, u.ID, u.Username); err != nil {
		return c.String(http.StatusInternalServerError, "login failed")
	}
	utils.SetFlash(c, "success", "Login successful!")
	return c.Redirect(http.StatusFound, "/dashboard")
}

// establishSession creates the server-side session entry and sets the
// signed cookie.  Called only after successful authentication.
func (h *AuthHandler) establishSession(c echo.Context, userID uint64, username string) error {
	sid, err := utils.NewSessionID()
	if err != nil {
		return err
	}
	ttl := time.Duration(h.Cfg.SessionTTLHours) * time.Hour

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()
	if err := h.Sessions.Save(ctx, sid, session.Identity{UserID: userID, Username: username}, ttl); err != nil {
		return err
	}

	token, err := utils.NewSessionToken(h.Cfg.SessionSecret,
		utils.SessionClaims{SID: sid, UserID: userID, Username: username}, ttl)
	if err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     utils.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl / time.Second),
	})
	return nil
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return render(c, "register.html", nil)
}

// Register creates a new account.  Username and email collisions, whether
// caught up front or by the UNIQUE constraints during a concurrent insert,
// surface as the same duplicate-field notice.
func (h *AuthHandler) Register(c echo.Context) error {
	username := strings.TrimSpace(c.FormValue("username"))
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")
	if username == "" || email == "" || password == "" {
		utils.SetFlash(c, "error", "All fields are required")
		return c.Redirect(http.StatusFound, "/register")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	_, err := h.Users.Create(ctx, username, email, password, h.Cfg.BcryptCost)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameExists):
			utils.SetFlash(c, "error", "Username already exists")
		case errors.Is(err, repository.ErrEmailExists):
			utils.SetFlash(c, "error", "Email already exists")
		default:
			return c.String(http.StatusInternalServerError, "registration failed")
		}
		return c.Redirect(http.StatusFound, "/register")
	}

	utils.SetFlash(c, "success", "Registration successful! Please login.")
	return c.Redirect(http.StatusFound, "/login")
}

// Logout clears the session.  It is idempotent: requests without a valid
// cookie still succeed and land back on the landing page.
func (h *AuthHandler) Logout(c echo.Context) error {
	if ck, err := c.Cookie(utils.SessionCookie); err == nil && ck.Value != "" {
		if claims, err := utils.ParseSessionToken(h.Cfg.SessionSecret, ck.Value); err == nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()
			_ = h.Sessions.Delete(ctx, claims.SID)
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     utils.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
	utils.SetFlash(c, "info", "You have been logged out")
	return c.Redirect(http.StatusFound, "/")
}
