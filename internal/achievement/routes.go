package achievement

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.AddCustom)
	r.Post("/{key}/unlock", h.Unlock)

	return r
}
