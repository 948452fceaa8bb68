package note

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/community", h.ListCommunity)
	r.Get("/{id}", h.Get)
	r.Put("/", h.Update)
	r.Delete("/{id}", h.Delete)
	r.Post("/{id}/publish", h.Publish)

	return r
}
