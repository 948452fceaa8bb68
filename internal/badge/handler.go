package badge

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyhive/studyhive-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	badges, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list badges")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, badges)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "badge id required", http.StatusBadRequest)
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to fetch badge")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if b == nil {
		http.Error(w, "badge not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, b)
}
