package prefs

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*Preferences, error)
	Put(ctx context.Context, p *Preferences) (*Preferences, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Get never misses: an absent row reads back as the defaults.
func (s *service) Get(ctx context.Context, userID uuid.UUID) (*Preferences, error) {
	p, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return defaultPreferences(userID), nil
	}
	return p, nil
}

func (s *service) Put(ctx context.Context, p *Preferences) (*Preferences, error) {
	if p.ThemeID == "" {
		p.ThemeID = "default"
	}
	if err := s.repo.Upsert(p); err != nil {
		return nil, err
	}
	return p, nil
}
