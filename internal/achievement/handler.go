package achievement

import (
	"encoding/json"
	"errors"
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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID := uuid.MustParse(claims.UserID)
	views, err := h.service.List(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list achievements")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, views)
}

func (h *Handler) Unlock(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	key := chi.URLParam(r, "key")
	if key == "" {
		http.Error(w, "achievement key required", http.StatusBadRequest)
		return
	}

	userID := uuid.MustParse(claims.UserID)
	view, err := h.service.Unlock(r.Context(), userID, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "achievement not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to unlock achievement")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) AddCustom(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if _, err := auth.GetUserClaimsFromContext(r.Context()); err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto AddCustomDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		http.Error(w, "key, name and description are required", http.StatusBadRequest)
		return
	}

	def := Achievement{
		Key:         dto.Key,
		Name:        dto.Name,
		Description: dto.Description,
		Icon:        dto.Icon,
	}
	if err := h.service.AddCustom(r.Context(), &def); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			http.Error(w, "achievement key already exists", http.StatusConflict)
			return
		}
		log.WithError(err).Error("Failed to add custom achievement")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, def)
}
