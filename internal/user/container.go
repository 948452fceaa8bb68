package user

import (
	"github.com/studyhive/studyhive-lambda/internal/achievement"
	"github.com/studyhive/studyhive-lambda/internal/progress"
	"gorm.io/gorm"
)

type UserContainer struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewUserContainer(db *gorm.DB, progressSvc progress.Service, achievementSvc achievement.Service) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, progressSvc, achievementSvc, NewGoogleVerifier())
	handler := NewHandler(service)

	return &UserContainer{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
