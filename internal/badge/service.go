package badge

import "context"

type Service interface {
	List(ctx context.Context) ([]Badge, error)
	GetByID(ctx context.Context, id string) (*Badge, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Badge, error) {
	return s.repo.FindAll()
}

// GetByID returns (nil, nil) when the id is not in the catalog.
func (s *service) GetByID(ctx context.Context, id string) (*Badge, error) {
	return s.repo.FindByID(id)
}
