package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/game-lounge/internal/queue"
	"github.com/iliyamo/game-lounge/internal/repository"
	queue_publisher "github.com/iliyamo/game-lounge/internal/service"
)

// GameHandler serves the tic-tac-toe page and the stats-update API.  The
// game itself runs in the browser; the server only records final outcomes
// and ranks wins.
type GameHandler struct {
	Stats *repository.StatsRepo
}

func NewGameHandler(s *repository.StatsRepo) *GameHandler { return &GameHandler{Stats: s} }

// leaderboardSize is how many accounts the game page ranks.
const leaderboardSize = 5

type updateStatsReq struct {
	Result string `json:"result"` // win | loss | tie
}

// ShowTicTacToe renders the game page with the caller's own record and the
// top-5 win leaderboard.
func (h *GameHandler) ShowTicTacToe(c echo.Context) error {
	userID, username := currentUser(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	stats, hasStats, err := h.Stats.Get(ctx, userID)
	if err != nil {
		return c.String(http.StatusInternalServerError, "failed to load stats")
	}
	board, err := h.Stats.Leaderboard(ctx, leaderboardSize)
	if err != nil {
		return c.String(http.StatusInternalServerError, "failed to load leaderboard")
	}

	return render(c, "tictactoe.html", echo.Map{
		"Username":    username,
		"Stats":       stats,
		"HasStats":    hasStats,
		"Leaderboard": board,
	})
}

// UpdateGameStats records a finished game.  The body must be JSON with a
// result of win, loss or tie; anything else is rejected with 400 and no
// counter changes.  On success a GameResultEvent is published to the broker
// on a best-effort basis (the publisher logs failures).
func (h *GameHandler) UpdateGameStats(c echo.Context) error {
	userID, username := currentUser(c)

	var req updateStatsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"status": "error"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Stats.ReportResult(ctx, userID, req.Result); err != nil {
		if errors.Is(err, repository.ErrInvalidResult) {
			return c.JSON(http.StatusBadRequest, echo.Map{"status": "error"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": "error"})
	}

	_ = queue_publisher.PublishGameResult(ctx, queue.GameResultEvent{
		UserID:     userID,
		Username:   username,
		Result:     req.Result,
		ReportedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{"status": "success"})
}
