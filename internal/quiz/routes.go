package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateQuiz)
	r.Get("/", h.ListQuizzes)
	r.Get("/community", h.ListCommunity)
	r.Get("/attempts", h.ListAttempts)
	r.Post("/attempts", h.AddAttempt)
	r.Get("/{id}", h.GetQuizWithQuestions)
	r.Delete("/{id}", h.DeleteQuiz)
	r.Post("/{id}/questions", h.AddQuestion)
	r.Delete("/questions/{questionID}", h.RemoveQuestion)
	r.Post("/{id}/publish", h.Publish)
	r.Post("/{id}/rate", h.Rate)

	return r
}
