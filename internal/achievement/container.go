package achievement

import (
	"github.com/studyhive/studyhive-lambda/internal/notification"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(db *gorm.DB, notifier notification.Service) *Container {
	repo := NewRepository(db)
	service := NewService(repo, notifier)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
