package router // package router defines how HTTP routes are registered for the application

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/game-lounge/internal/config"
	"github.com/iliyamo/game-lounge/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/game-lounge/internal/middleware" // import middleware that gates protected routes
	"github.com/iliyamo/game-lounge/internal/session"
)

// RegisterRoutes wires every route of the application onto the provided
// Echo instance.  Public pages are registered directly; protected pages go
// through the session middleware, which redirects to /login; the stats API
// goes through the API variant, which answers 401 JSON instead.
func RegisterRoutes(e *echo.Echo, cfg config.Config, store session.Store,
	a *handler.AuthHandler, p *handler.PageHandler, n *handler.NoteHandler, g *handler.GameHandler) {

	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Public pages: landing and the auth forms.
	e.GET("/", p.Landing)
	e.GET("/login", a.ShowLogin)
	e.POST("/login", a.Login)
	e.GET("/register", a.ShowRegister)
	e.POST("/register", a.Register)
	// Logout needs no auth: clearing an absent session is a no-op.
	e.GET("/logout", a.Logout)

	// Protected pages redirect unauthenticated visitors to the login form
	// before any resource handler runs.
	pages := e.Group("", middleware.RequireSession(cfg.SessionSecret, store))
	pages.GET("/dashboard", p.Dashboard)
	pages.GET("/notepad", n.ShowNotepad)
	pages.POST("/notepad", n.SaveNotepad)
	pages.GET("/tictactoe", g.ShowTicTacToe)
	pages.GET("/wordgame", p.WordGame)

	// The stats endpoint is called from page scripts, so failures must be
	// machine-readable rather than redirects.
	api := e.Group("", middleware.RequireSessionAPI(cfg.SessionSecret, store))
	api.POST("/update_game_stats", g.UpdateGameStats)
}
