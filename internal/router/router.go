package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/studyhive/studyhive-lambda/internal/achievement"
	"github.com/studyhive/studyhive-lambda/internal/aicontent"
	"github.com/studyhive/studyhive-lambda/internal/auth"
	"github.com/studyhive/studyhive-lambda/internal/badge"
	"github.com/studyhive/studyhive-lambda/internal/game"
	"github.com/studyhive/studyhive-lambda/internal/middlewares"
	"github.com/studyhive/studyhive-lambda/internal/note"
	"github.com/studyhive/studyhive-lambda/internal/notification"
	"github.com/studyhive/studyhive-lambda/internal/planner"
	"github.com/studyhive/studyhive-lambda/internal/prefs"
	"github.com/studyhive/studyhive-lambda/internal/progress"
	"github.com/studyhive/studyhive-lambda/internal/quiz"
	"github.com/studyhive/studyhive-lambda/internal/user"
)

type RouterConfig struct {
	UserHandler         *user.Handler
	NotificationHandler *notification.Handler
	BadgeHandler        *badge.Handler
	ProgressHandler     *progress.Handler
	AchievementHandler  *achievement.Handler
	QuizHandler         *quiz.Handler
	NoteHandler         *note.Handler
	GameHandler         *game.Handler
	PlannerHandler      *planner.Handler
	PrefsHandler        *prefs.Handler
	AIContentHandler    *aicontent.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Mount("/", user.AuthRoutes(cfg.UserHandler))
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/notifications", notification.Routes(cfg.NotificationHandler))
		r.Mount("/badges", badge.Routes(cfg.BadgeHandler))
		r.Mount("/progress", progress.Routes(cfg.ProgressHandler))
		r.Mount("/achievements", achievement.Routes(cfg.AchievementHandler))
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
		r.Mount("/notes", note.Routes(cfg.NoteHandler))
		r.Mount("/games", game.Routes(cfg.GameHandler))
		r.Mount("/events", planner.Routes(cfg.PlannerHandler))
		r.Mount("/preferences", prefs.Routes(cfg.PrefsHandler))
		r.Mount("/ai", aicontent.Routes(cfg.AIContentHandler))
	})
	return r
}
