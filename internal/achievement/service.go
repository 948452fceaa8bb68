package achievement

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/studyhive/studyhive-lambda/internal/config"
	"github.com/studyhive/studyhive-lambda/internal/notification"
)

var (
	ErrNotFound     = errors.New("achievement not found")
	ErrDuplicateKey = errors.New("achievement key already exists")
)

type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]AchievementView, error)
	Unlock(ctx context.Context, userID uuid.UUID, key string) (*AchievementView, error)
	AddCustom(ctx context.Context, def *Achievement) error
}

type service struct {
	repo     Repository
	notifier notification.Service
}

func NewService(repo Repository, notifier notification.Service) Service {
	return &service{repo: repo, notifier: notifier}
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]AchievementView, error) {
	defs, err := s.repo.ListDefinitions()
	if err != nil {
		return nil, err
	}

	unlocks, err := s.repo.ListUnlocksByUser(userID)
	if err != nil {
		return nil, err
	}

	unlockedAt := make(map[string]UserAchievement, len(unlocks))
	for _, u := range unlocks {
		unlockedAt[u.AchievementKey] = u
	}

	views := make([]AchievementView, 0, len(defs))
	for _, def := range defs {
		view := AchievementView{Achievement: def}
		if u, ok := unlockedAt[def.Key]; ok {
			view.Unlocked = true
			t := u.UnlockedAt
			view.UnlockedAt = &t
		}
		views = append(views, view)
	}
	return views, nil
}

// Unlock is idempotent: the first call flips the entry and emits exactly
// one notification; repeat calls change nothing and emit nothing.
func (s *service) Unlock(ctx context.Context, userID uuid.UUID, key string) (*AchievementView, error) {
	log := config.WithContext(ctx)

	def, err := s.repo.FindDefinition(key)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, ErrNotFound
	}

	existing, err := s.repo.FindUnlock(userID, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		t := existing.UnlockedAt
		return &AchievementView{Achievement: *def, Unlocked: true, UnlockedAt: &t}, nil
	}

	unlock := UserAchievement{
		UserID:         userID,
		AchievementKey: key,
	}
	if err := s.repo.CreateUnlock(&unlock); err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Achievement unlocked: %s", def.Name)
	if err := s.notifier.Notify(ctx, userID, notification.KindAchievementUnlocked, title, def.Icon, true); err != nil {
		log.WithError(err).Warn("Achievement notification was not stored")
	}

	t := unlock.UnlockedAt
	return &AchievementView{Achievement: *def, Unlocked: true, UnlockedAt: &t}, nil
}

// AddCustom appends a user-defined achievement. Keys must be unique; the
// catalog never shrinks, so a collision is an error rather than an upsert.
func (s *service) AddCustom(ctx context.Context, def *Achievement) error {
	existing, err := s.repo.FindDefinition(def.Key)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateKey
	}

	def.Custom = true
	return s.repo.CreateDefinition(def)
}
