package container

import (
	"context"
	"log"
	"os"

	"github.com/studyhive/studyhive-lambda/internal/achievement"
	"github.com/studyhive/studyhive-lambda/internal/aicontent"
	"github.com/studyhive/studyhive-lambda/internal/auth"
	"github.com/studyhive/studyhive-lambda/internal/badge"
	"github.com/studyhive/studyhive-lambda/internal/config"
	"github.com/studyhive/studyhive-lambda/internal/game"
	"github.com/studyhive/studyhive-lambda/internal/note"
	"github.com/studyhive/studyhive-lambda/internal/notification"
	"github.com/studyhive/studyhive-lambda/internal/planner"
	"github.com/studyhive/studyhive-lambda/internal/prefs"
	"github.com/studyhive/studyhive-lambda/internal/progress"
	"github.com/studyhive/studyhive-lambda/internal/quiz"
	"github.com/studyhive/studyhive-lambda/internal/user"
)

type Container struct {
	UserContainer         *user.UserContainer
	NotificationContainer *notification.Container
	BadgeContainer        *badge.Container
	ProgressContainer     *progress.Container
	AchievementContainer  *achievement.Container
	QuizContainer         *quiz.QuizContainer
	NoteContainer         *note.Container
	GameContainer         *game.Container
	PlannerContainer      *planner.Container
	PrefsContainer        *prefs.Container
	AIContentContainer    *aicontent.AIContentContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&notification.Notification{},
		&badge.Badge{},
		&progress.Progress{},
		&achievement.Achievement{},
		&achievement.UserAchievement{},
		&quiz.Quiz{},
		&quiz.QuizQuestion{},
		&quiz.SharedQuiz{},
		&quiz.QuizAttempt{},
		&note.Note{},
		&note.SharedNote{},
		&game.CustomGame{},
		&planner.Event{},
		&prefs.Preferences{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	notificationContainer := notification.NewContainer(config.DB)
	badgeContainer := badge.NewContainer(config.DB)
	progressContainer := progress.NewContainer(config.DB, badgeContainer.Service, notificationContainer.Service)
	achievementContainer := achievement.NewContainer(config.DB, notificationContainer.Service)
	userContainer := user.NewUserContainer(config.DB, progressContainer.Service, achievementContainer.Service)
	quizContainer := quiz.NewQuizContainer(config.DB)
	noteContainer := note.NewContainer(config.DB)
	gameContainer := game.NewContainer(config.DB)
	plannerContainer := planner.NewContainer(config.DB)
	prefsContainer := prefs.NewContainer(config.DB)
	aiContentContainer := aicontent.NewAIContentContainer()

	if err := badge.SeedDefaults(badgeContainer.Repo); err != nil {
		log.Fatalf("failed to seed badges: %v", err)
	}
	if err := achievement.SeedDefaults(achievementContainer.Repo); err != nil {
		log.Fatalf("failed to seed achievements: %v", err)
	}

	return &Container{
		UserContainer:         userContainer,
		NotificationContainer: notificationContainer,
		BadgeContainer:        badgeContainer,
		ProgressContainer:     progressContainer,
		AchievementContainer:  achievementContainer,
		QuizContainer:         quizContainer,
		NoteContainer:         noteContainer,
		GameContainer:         gameContainer,
		PlannerContainer:      plannerContainer,
		PrefsContainer:        prefsContainer,
		AIContentContainer:    aiContentContainer,
	}
}
