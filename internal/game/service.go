package game

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Add(ctx context.Context, g *CustomGame) error
	GetByID(ctx context.Context, id uuid.UUID) (*CustomGame, error)
	List(ctx context.Context, authorID uuid.UUID) ([]CustomGame, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Add appends to the collection. Games are never updated or removed.
func (s *service) Add(ctx context.Context, g *CustomGame) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return s.repo.Create(g)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*CustomGame, error) {
	return s.repo.FindByID(id)
}

func (s *service) List(ctx context.Context, authorID uuid.UUID) ([]CustomGame, error) {
	return s.repo.FindAllByAuthor(authorID)
}
