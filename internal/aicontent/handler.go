package aicontent

import (
	"encoding/json"
	"net/http"

	"github.com/studyhive/studyhive-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	questions, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		http.Error(w, "failed to generate questions", http.StatusInternalServerError)
		log.WithError(err).Errorf("Failed to generate questions: %v", err)
		return
	}

	config.JSON(w, http.StatusCreated, questions)
}

func (h *Handler) GenerateLessonPlan(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	var req LessonPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan, err := h.service.GenerateLessonPlan(r.Context(), req)
	if err != nil {
		http.Error(w, "failed to generate lesson plan", http.StatusInternalServerError)
		log.WithError(err).Errorf("Failed to generate lesson plan: %v", err)
		return
	}

	config.JSON(w, http.StatusCreated, plan)
}

func (h *Handler) GenerateWorksheet(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	var req WorksheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ws, err := h.service.GenerateWorksheet(r.Context(), req)
	if err != nil {
		http.Error(w, "failed to generate worksheet", http.StatusInternalServerError)
		log.WithError(err).Errorf("Failed to generate worksheet: %v", err)
		return
	}

	config.JSON(w, http.StatusCreated, ws)
}

func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.Validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := h.service.Summarize(r.Context(), req)
	if err != nil {
		http.Error(w, "failed to summarize text", http.StatusInternalServerError)
		log.WithError(err).Errorf("Failed to summarize text: %v", err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
