package game

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Add)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)

	return r
}
