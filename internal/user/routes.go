package user

import "github.com/go-chi/chi/v5"

// AuthRoutes is mounted outside the auth middleware.
func AuthRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/google", h.GoogleLogin)
	r.Post("/refresh", h.Refresh)
	return r
}

// Routes carries the authenticated profile endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/me", h.GetMe)
	r.Patch("/me", h.UpdateProfile)
	return r
}
