package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/studyhive/studyhive-lambda/internal/config"
)

type Service interface {
	Notify(ctx context.Context, userID uuid.UUID, kind Kind, title, icon string, sound bool) error
	List(ctx context.Context, userID uuid.UUID, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Notify(ctx context.Context, userID uuid.UUID, kind Kind, title, icon string, sound bool) error {
	log := config.WithContext(ctx)

	n := Notification{
		ID:     uuid.New(),
		UserID: userID,
		Kind:   kind,
		Title:  title,
		Icon:   icon,
		Sound:  sound,
	}

	if err := s.repo.Create(&n); err != nil {
		log.WithError(err).Errorf("Failed to store %s notification", kind)
		return err
	}
	return nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, limit int) ([]Notification, error) {
	return s.repo.ListByUser(userID, limit)
}

func (s *service) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.MarkRead(id, userID)
}

func (s *service) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllRead(userID)
}
