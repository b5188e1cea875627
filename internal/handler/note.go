package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/game-lounge/internal/repository"
	"github.com/iliyamo/game-lounge/internal/utils"
)

// NoteHandler serves the notepad page: one persisted text blob per account.
type NoteHandler struct {
	Notes *repository.NoteRepo
}

func NewNoteHandler(n *repository.NoteRepo) *NoteHandler { return &NoteHandler{Notes: n} }

// ShowNotepad renders the account's note.  A user who has never saved gets
// an empty textarea and no "last saved" line.
func (h *NoteHandler) ShowNotepad(c echo.Context) error {
	userID, username := currentUser(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	note, found, err := h.Notes.Get(ctx, userID)
	if err != nil {
		return c.String(http.StatusInternalServerError, "failed to load notes")
	}

	data := echo.Map{"Username": username, "Notes": note.Content}
	if found {
		// Human-readable rendering is a page concern; the repository
		// hands back the raw timestamp.
		data["LastSaved"] = note.LastUpdated.Local().Format("2006-01-02 at 3:04 PM")
	}
	return render(c, "notepad.html", data)
}

// SaveNotepad upserts the posted content and redirects back to the page.
func (h *NoteHandler) SaveNotepad(c echo.Context) error {
	userID, _ := currentUser(c)
	content := c.FormValue("notes")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Notes.Save(ctx, userID, content); err != nil {
		return c.String(http.StatusInternalServerError, "failed to save notes")
	}
	utils.SetFlash(c, "success", "Notes saved successfully!")
	return c.Redirect(http.StatusFound, "/notepad")
}
