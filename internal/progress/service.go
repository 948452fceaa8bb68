package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/studyhive/studyhive-lambda/internal/badge"
	"github.com/studyhive/studyhive-lambda/internal/config"
	"github.com/studyhive/studyhive-lambda/internal/notification"
)

var (
	ErrNotFound       = errors.New("progress not found")
	ErrInvalidAmount  = errors.New("xp amount must be a positive integer")
	ErrInsufficientXP = errors.New("insufficient xp")
)

type Service interface {
	InitFor(ctx context.Context, userID uuid.UUID) (*Progress, error)
	Get(ctx context.Context, userID uuid.UUID) (*Progress, error)
	AddXP(ctx context.Context, userID uuid.UUID, amount int) (*Progress, error)
	SpendXP(ctx context.Context, userID uuid.UUID, amount int) (*Progress, error)
	UnlockTheme(ctx context.Context, userID uuid.UUID, themeID string) (*Progress, error)
	UnlockPuzzle(ctx context.Context, userID uuid.UUID, puzzleID string) (*Progress, error)
	EarnBadge(ctx context.Context, userID uuid.UUID, badgeID string) (*Progress, error)
	AdvanceStreak(ctx context.Context, userID uuid.UUID, now time.Time) (*Progress, error)
}

type service struct {
	repo         Repository
	badgeService badge.Service
	notifier     notification.Service
}

func NewService(repo Repository, badgeService badge.Service, notifier notification.Service) Service {
	return &service{
		repo:         repo,
		badgeService: badgeService,
		notifier:     notifier,
	}
}

// InitFor seeds the default progression row for a freshly registered user.
func (s *service) InitFor(ctx context.Context, userID uuid.UUID) (*Progress, error) {
	empty, _ := json.Marshal([]string{})
	noBadges, _ := json.Marshal(map[string]int{})

	p := Progress{
		UserID:          userID,
		XP:              0,
		Level:           1,
		StreakCurrent:   1,
		StreakBest:      1,
		LastLoginDate:   time.Now(),
		UnlockedThemes:  empty,
		UnlockedPuzzles: empty,
		Badges:          noBadges,
	}

	if err := s.repo.Create(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*Progress, error) {
	p, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *service) AddXP(ctx context.Context, userID uuid.UUID, amount int) (*Progress, error) {
	log := config.WithContext(ctx)

	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	previousLevel := p.Level
	p.XP += amount
	p.Level = LevelForXP(p.XP)

	if err := s.repo.Save(p); err != nil {
		log.WithError(err).Error("Failed to persist xp gain")
		return nil, err
	}

	if p.Level > previousLevel {
		title := fmt.Sprintf("Level up! You reached level %d", p.Level)
		if err := s.notifier.Notify(ctx, userID, notification.KindLevelUp, title, "🎉", false); err != nil {
			log.WithError(err).Warn("Level-up notification was not stored")
		}
	}

	return p, nil
}

// SpendXP is the one operation with an explicit failure mode: it returns
// ErrInsufficientXP and leaves the row untouched when the balance is low.
func (s *service) SpendXP(ctx context.Context, userID uuid.UUID, amount int) (*Progress, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if p.XP < amount {
		return nil, ErrInsufficientXP
	}

	p.XP -= amount
	p.Level = LevelForXP(p.XP)

	if err := s.repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) UnlockTheme(ctx context.Context, userID uuid.UUID, themeID string) (*Progress, error) {
	return s.unlock(ctx, userID, themeID, true)
}

func (s *service) UnlockPuzzle(ctx context.Context, userID uuid.UUID, puzzleID string) (*Progress, error) {
	return s.unlock(ctx, userID, puzzleID, false)
}

func (s *service) unlock(ctx context.Context, userID uuid.UUID, id string, theme bool) (*Progress, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if theme {
		updated, err := json.Marshal(appendUnique(p.UnlockedThemeIDs(), id))
		if err != nil {
			return nil, err
		}
		p.UnlockedThemes = updated
	} else {
		updated, err := json.Marshal(appendUnique(p.UnlockedPuzzleIDs(), id))
		if err != nil {
			return nil, err
		}
		p.UnlockedPuzzles = updated
	}

	if err := s.repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

// EarnBadge increments the per-user count for badgeID. The count grows even
// when the catalog has no such definition; the notification is only emitted
// for known badges, since it carries the definition's name and icon.
func (s *service) EarnBadge(ctx context.Context, userID uuid.UUID, badgeID string) (*Progress, error) {
	log := config.WithContext(ctx)

	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts := p.BadgeCounts()
	counts[badgeID]++

	updated, err := json.Marshal(counts)
	if err != nil {
		return nil, err
	}
	p.Badges = updated

	if err := s.repo.Save(p); err != nil {
		return nil, err
	}

	def, err := s.badgeService.GetByID(ctx, badgeID)
	if err != nil {
		log.WithError(err).Warnf("Badge lookup failed for %s", badgeID)
		return p, nil
	}
	if def == nil {
		log.Warnf("Earned badge %s has no catalog definition", badgeID)
		return p, nil
	}

	title := fmt.Sprintf("Badge earned: %s", def.Name)
	if err := s.notifier.Notify(ctx, userID, notification.KindBadgeEarned, title, def.Icon, false); err != nil {
		log.WithError(err).Warn("Badge notification was not stored")
	}

	return p, nil
}

// AdvanceStreak applies the login streak rule: a consecutive-day login
// increments the streak, a same-day login changes nothing, and a gap
// resets it to 1. Best tracks the running maximum.
func (s *service) AdvanceStreak(ctx context.Context, userID uuid.UUID, now time.Time) (*Progress, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	lastDay := p.LastLoginDate.Truncate(24 * time.Hour)
	today := now.Truncate(24 * time.Hour)

	switch days := int(today.Sub(lastDay).Hours() / 24); {
	case days == 0:
		// Same-day login, streak unchanged.
	case days == 1:
		p.StreakCurrent++
	default:
		p.StreakCurrent = 1
	}

	if p.StreakCurrent > p.StreakBest {
		p.StreakBest = p.StreakCurrent
	}
	p.LastLoginDate = now

	if err := s.repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}
