package game

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/studyhive/studyhive-lambda/internal/auth"
	"github.com/studyhive/studyhive-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var g CustomGame
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if g.Title == "" || g.Kind == "" {
		http.Error(w, "title and kind are required", http.StatusBadRequest)
		return
	}

	g.AuthorID = uuid.MustParse(claims.UserID)
	if err := h.service.Add(r.Context(), &g); err != nil {
		log.WithError(err).Error("Failed to store custom game")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, g)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	g, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("Failed to fetch custom game")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if g == nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, g)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	games, err := h.service.List(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to list custom games")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, games)
}
