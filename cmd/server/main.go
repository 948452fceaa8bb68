package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/studyhive/studyhive-lambda/internal/container"
	"github.com/studyhive/studyhive-lambda/internal/jobs"
	"github.com/studyhive/studyhive-lambda/internal/router"
)

func main() {
	_ = godotenv.Load()

	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:         c.UserContainer.Handler,
		NotificationHandler: c.NotificationContainer.Handler,
		BadgeHandler:        c.BadgeContainer.Handler,
		ProgressHandler:     c.ProgressContainer.Handler,
		AchievementHandler:  c.AchievementContainer.Handler,
		QuizHandler:         c.QuizContainer.Handler,
		NoteHandler:         c.NoteContainer.Handler,
		GameHandler:         c.GameContainer.Handler,
		PlannerHandler:      c.PlannerContainer.Handler,
		PrefsHandler:        c.PrefsContainer.Handler,
		AIContentHandler:    c.AIContentContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.New(handler).ProxyWithContext)
		return
	}

	// Local mode runs the cron jobs in-process; on Lambda they are driven
	// by scheduled events instead.
	scheduler := jobs.NewScheduler(c.ProgressContainer.Repo)
	if err := scheduler.Start(); err != nil {
		log.WithError(err).Fatal("failed to start job scheduler")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Infof("listening on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
