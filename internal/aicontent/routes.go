package aicontent

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/questions", h.GenerateQuestions)
	r.Post("/lesson-plans", h.GenerateLessonPlan)
	r.Post("/worksheets", h.GenerateWorksheet)
	r.Post("/summaries", h.Summarize)
	return r
}
