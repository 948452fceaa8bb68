package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.Get)
	r.Post("/xp", h.AddXP)
	r.Post("/xp/spend", h.SpendXP)
	r.Post("/themes", h.UnlockTheme)
	r.Post("/puzzles", h.UnlockPuzzle)
	r.Post("/badges", h.EarnBadge)

	return r
}
