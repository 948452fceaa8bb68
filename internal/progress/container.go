package progress

import (
	"github.com/studyhive/studyhive-lambda/internal/badge"
	"github.com/studyhive/studyhive-lambda/internal/notification"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(db *gorm.DB, badgeService badge.Service, notifier notification.Service) *Container {
	repo := NewRepository(db)
	service := NewService(repo, badgeService, notifier)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
