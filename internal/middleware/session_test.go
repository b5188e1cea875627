package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/game-lounge/internal/middleware"
	"github.com/iliyamo/game-lounge/internal/session"
	"github.com/iliyamo/game-lounge/internal/utils"
)

const testSecret = "test-secret"

// newSessionCookie establishes a session in the store and returns the
// matching signed cookie, the way a successful login would.
func newSessionCookie(t *testing.T, store session.Store, id session.Identity) *http.Cookie {
	t.Helper()
	sid, err := utils.NewSessionID()
	require.NoError(t, err)
	require.NoError(t, store.Save(t.Context(), sid, id, time.Minute))
	tok, err := utils.NewSessionToken(testSecret,
		utils.SessionClaims{SID: sid, UserID: id.UserID, Username: id.Username}, time.Minute)
	require.NoError(t, err)
	return &http.Cookie{Name: utils.SessionCookie, Value: tok}
}

func TestRequireSession_RedirectsWithoutCookie(t *testing.T) {
	e := echo.New()
	store := session.NewMemoryStore()

	reached := false
	h := middleware.RequireSession(testSecret, store)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/notepad", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	require.False(t, reached, "protected handler must not run unauthenticated")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestRequireSession_PassesWithValidSession(t *testing.T) {
	e := echo.New()
	store := session.NewMemoryStore()
	cookie := newSessionCookie(t, store, session.Identity{UserID: 9, Username: "zoe"})

	h := middleware.RequireSession(testSecret, store)(func(c echo.Context) error {
		require.Equal(t, uint64(9), c.Get("user_id"))
		require.Equal(t, "zoe", c.Get("username"))
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/notepad", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)
}

// A signed token whose session was deleted from the store (logout) must be
// rejected: the store, not the signature, is the source of truth.
func TestRequireSession_RejectsLoggedOutSession(t *testing.T) {
	e := echo.New()
	store := session.NewMemoryStore()
	cookie := newSessionCookie(t, store, session.Identity{UserID: 5, Username: "eve"})

	claims, err := utils.ParseSessionToken(testSecret, cookie.Value)
	require.NoError(t, err)
	require.NoError(t, store.Delete(t.Context(), claims.SID))

	h := middleware.RequireSession(testSecret, store)(func(c echo.Context) error {
		t.Fatal("handler must not run after logout")
		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	require.Equal(t, http.StatusFound, rec.Code)
}

func TestRequireSessionAPI_Returns401JSON(t *testing.T) {
	e := echo.New()
	store := session.NewMemoryStore()

	h := middleware.RequireSessionAPI(testSecret, store)(func(c echo.Context) error {
		t.Fatal("API handler must not run unauthenticated")
		return nil
	})

	req := httptest.NewRequest(http.MethodPost, "/update_game_stats", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"status":"error"}`, rec.Body.String())
}

func TestRequireSessionAPI_RejectsTamperedToken(t *testing.T) {
	e := echo.New()
	store := session.NewMemoryStore()
	cookie := newSessionCookie(t, store, session.Identity{UserID: 3, Username: "mallory"})
	cookie.Value += "x" // break the signature

	h := middleware.RequireSessionAPI(testSecret, store)(func(c echo.Context) error {
		t.Fatal("API handler must not run with a tampered token")
		return nil
	})

	req := httptest.NewRequest(http.MethodPost, "/update_game_stats", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
