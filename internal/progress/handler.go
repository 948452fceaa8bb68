package progress

import (
	"encoding/json"
	"errors"
	"net/http"

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

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	p, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "progress not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to fetch progress")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) AddXP(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var dto XPAmountDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		http.Error(w, "amount must be a positive integer", http.StatusBadRequest)
		return
	}

	p, err := h.service.AddXP(r.Context(), userID, dto.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAmount):
			http.Error(w, "amount must be a positive integer", http.StatusBadRequest)
		case errors.Is(err, ErrNotFound):
			http.Error(w, "progress not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to add xp")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) SpendXP(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var dto XPAmountDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		http.Error(w, "amount must be a positive integer", http.StatusBadRequest)
		return
	}

	p, err := h.service.SpendXP(r.Context(), userID, dto.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ErrInsufficientXP):
			http.Error(w, "insufficient xp", http.StatusConflict)
		case errors.Is(err, ErrInvalidAmount):
			http.Error(w, "amount must be a positive integer", http.StatusBadRequest)
		case errors.Is(err, ErrNotFound):
			http.Error(w, "progress not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to spend xp")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) UnlockTheme(w http.ResponseWriter, r *http.Request) {
	h.unlock(w, r, true)
}

func (h *Handler) UnlockPuzzle(w http.ResponseWriter, r *http.Request) {
	h.unlock(w, r, false)
}

func (h *Handler) unlock(w http.ResponseWriter, r *http.Request, theme bool) {
	log := config.WithContext(r.Context())

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var dto UnlockDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}

	var (
		p   *Progress
		err error
	)
	if theme {
		p, err = h.service.UnlockTheme(r.Context(), userID, dto.ID)
	} else {
		p, err = h.service.UnlockPuzzle(r.Context(), userID, dto.ID)
	}
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "progress not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to store unlock")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, toResponse(p))
}

func (h *Handler) EarnBadge(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var dto EarnBadgeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		http.Error(w, "badge_id required", http.StatusBadRequest)
		return
	}

	p, err := h.service.EarnBadge(r.Context(), userID, dto.BadgeID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "progress not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to earn badge")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, toResponse(p))
}

func userIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return uuid.MustParse(claims.UserID), true
}
