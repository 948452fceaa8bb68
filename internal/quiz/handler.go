package quiz

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
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated to create quiz")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var payload struct {
		Quiz      Quiz            `json:"quiz"`
		Questions []*QuizQuestion `json:"questions"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.WithError(err).Error("Invalid request body for quiz creation")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if len(payload.Questions) == 0 {
		http.Error(w, "quiz must contain at least one question", http.StatusBadRequest)
		return
	}
	if payload.Quiz.Title == "" || payload.Quiz.Subject == "" {
		http.Error(w, "title and subject are required", http.StatusBadRequest)
		return
	}

	payload.Quiz.AuthorID = uuid.MustParse(claims.UserID)
	if payload.Quiz.ID == uuid.Nil {
		payload.Quiz.ID = uuid.New()
	}

	for _, q := range payload.Questions {
		if q.ID == uuid.Nil {
			q.ID = uuid.New()
		}
		q.QuizID = payload.Quiz.ID
	}

	if err := h.service.CreateQuizWithQuestions(r.Context(), &payload.Quiz, payload.Questions); err != nil {
		log.WithError(err).Error("Failed to create quiz with questions")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"quiz":      payload.Quiz,
		"questions": payload.Questions,
	})
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID := chi.URLParam(r, "id")
	if quizID == "" {
		http.Error(w, "quiz id required", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteQuiz(r.Context(), quizID); err != nil {
		log.WithError(err).Error("Failed to delete quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "quiz deleted successfully",
	})
}

func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID := chi.URLParam(r, "id")
	if quizID == "" {
		http.Error(w, "quiz id required", http.StatusBadRequest)
		return
	}

	var question QuizQuestion
	if err := json.NewDecoder(r.Body).Decode(&question); err != nil {
		log.WithError(err).Error("Invalid request body for question")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if question.ID == uuid.Nil {
		question.ID = uuid.New()
	}

	if err := h.service.AddQuestionToQuiz(r.Context(), quizID, &question); err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to add question to quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "question added successfully",
		"question": question,
	})
}

func (h *Handler) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	questionID := chi.URLParam(r, "questionID")
	if questionID == "" {
		http.Error(w, "question id required", http.StatusBadRequest)
		return
	}

	if err := h.service.RemoveQuestion(r.Context(), questionID); err != nil {
		log.WithError(err).Error("Failed to remove question")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "question removed successfully",
	})
}

func (h *Handler) GetQuizWithQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID := chi.URLParam(r, "id")
	if quizID == "" {
		http.Error(w, "quiz id required", http.StatusBadRequest)
		return
	}

	quizWithQuestions, err := h.service.GetQuizWithQuestions(r.Context(), quizID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz with questions")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if quizWithQuestions == nil {
		http.Error(w, "quiz not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, quizWithQuestions)
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	quizzes, err := h.service.ListQuizzesByAuthor(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to list quizzes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID := chi.URLParam(r, "id")
	if quizID == "" {
		http.Error(w, "quiz id required", http.StatusBadRequest)
		return
	}

	shared, err := h.service.Publish(r.Context(), quizID)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			http.Error(w, "quiz not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to publish quiz")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, shared)
}

func (h *Handler) Rate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	quizID := chi.URLParam(r, "id")
	if quizID == "" {
		http.Error(w, "quiz id required", http.StatusBadRequest)
		return
	}

	var dto RateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		http.Error(w, "rating must be between 1 and 5", http.StatusBadRequest)
		return
	}

	shared, err := h.service.Rate(r.Context(), quizID, dto.Rating)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuizNotFound):
			http.Error(w, "quiz not found in community pool", http.StatusNotFound)
		case errors.Is(err, ErrInvalidRating):
			http.Error(w, "rating must be between 1 and 5", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to rate quiz")
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
		log.WithError(err).Error("Failed to list community quizzes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, shared)
}

func (h *Handler) AddAttempt(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto AddAttemptDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(dto); err != nil {
		http.Error(w, "invalid attempt payload", http.StatusBadRequest)
		return
	}

	attempt := QuizAttempt{
		ID:             uuid.New(),
		UserID:         uuid.MustParse(claims.UserID),
		QuizID:         dto.QuizID,
		AssignmentID:   dto.AssignmentID,
		Title:          dto.Title,
		Subject:        dto.Subject,
		Score:          dto.Score,
		TotalQuestions: dto.TotalQuestions,
	}

	if err := h.service.AddAttempt(r.Context(), &attempt); err != nil {
		if errors.Is(err, ErrInvalidAttempt) {
			http.Error(w, "attempt score must be between 0 and total questions", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to record quiz attempt")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, attempt)
}

func (h *Handler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	attempts, err := h.service.ListAttempts(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to list quiz attempts")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, attempts)
}
