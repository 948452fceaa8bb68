package note

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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateNoteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		http.Error(w, "title and content are required", http.StatusBadRequest)
		return
	}

	response, err := h.service.Create(r.Context(), uuid.MustParse(claims.UserID), dto)
	if err != nil {
		log.WithError(err).Error("Failed to create note")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, response)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	response, err := h.service.GetByID(r.Context(), id, uuid.MustParse(claims.UserID))
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "unauthorized", http.StatusForbidden)
			return
		}
		log.WithError(err).Error("Failed to fetch note")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if response == nil {
		http.Error(w, "note not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	responses, err := h.service.List(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to list notes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto UpdateNoteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		http.Error(w, "id, title and content are required", http.StatusBadRequest)
		return
	}

	response, err := h.service.Update(r.Context(), uuid.MustParse(claims.UserID), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			http.Error(w, "note not found", http.StatusNotFound)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusForbidden)
		default:
			log.WithError(err).Error("Failed to update note")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, response)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), id, uuid.MustParse(claims.UserID)); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "unauthorized", http.StatusForbidden)
			return
		}
		log.WithError(err).Error("Failed to delete note")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	shared, err := h.service.Publish(r.Context(), id, uuid.MustParse(claims.UserID))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			http.Error(w, "note not found", http.StatusNotFound)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusForbidden)
		default:
			log.WithError(err).Error("Failed to publish note")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, shared)
}

func (h *Handler) ListCommunity(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	shared, err := h.service.ListCommunity(r.Context(), r.URL.Query().Get("subject"))
	if err != nil {
		log.WithError(err).Error("Failed to list community notes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, shared)
}
