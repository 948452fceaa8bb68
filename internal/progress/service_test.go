package progress

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyhive/studyhive-lambda/internal/badge"
	"github.com/studyhive/studyhive-lambda/internal/notification"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTest(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&Progress{}, &badge.Badge{}, &notification.Notification{}))

	badgeRepo := badge.NewRepository(db)
	require.NoError(t, badge.SeedDefaults(badgeRepo))

	notifier := notification.NewService(notification.NewRepository(db))
	svc := NewService(NewRepository(db), badge.NewService(badgeRepo), notifier)
	return svc, db
}

func notificationsFor(t *testing.T, db *gorm.DB, userID uuid.UUID) []notification.Notification {
	t.Helper()
	var out []notification.Notification
	require.NoError(t, db.Where("user_id = ?", userID).Find(&out).Error)
	return out
}

func TestInitForSeedsDefaults(t *testing.T) {
	svc, _ := setupTest(t)
	userID := uuid.New()

	p, err := svc.InitFor(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 1, p.StreakCurrent)
	assert.Equal(t, 1, p.StreakBest)
	assert.Empty(t, p.UnlockedThemeIDs())
	assert.Empty(t, p.UnlockedPuzzleIDs())
	assert.Empty(t, p.BadgeCounts())
}

func TestGetUnknownUser(t *testing.T) {
	svc, _ := setupTest(t)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddXPDerivesLevel(t *testing.T) {
	svc, db := setupTest(t)
	userID := uuid.New()
	_, err := svc.InitFor(context.Background(), userID)
	require.NoError(t, err)

	p, err := svc.AddXP(context.Background(), userID, 999)
	require.NoError(t, err)
	assert.Equal(t, 999, p.XP)
	assert.Equal(t, 1, p.Level)
	assert.Empty(t, notificationsFor(t, db, userID))

	p, err = svc.AddXP(context.Background(), userID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1000, p.XP)
	assert.Equal(t, 2, p.Level)

	notifs := notificationsFor(t, db, userID)
	require.Len(t, notifs, 1)
	assert.Equal(t, notification.KindLevelUp, notifs[0].Kind)
	assert.False(t, notifs[0].Sound)
}

func TestAddXPRejectsNonPositiveAmounts(t *testing.T) {
	svc, _ := setupTest(t)
	userID := uuid.New()
	_, err := svc.InitFor(context.Background(), userID)
	require.NoError(t, err)

	_, err = svc.AddXP(context.Background(), userID, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.AddXP(context.Background(), userID, -50)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestSpendXPInsufficientBalance(t *testing.T) {
	svc, _ := setupTest(t)
	userID := uuid.New()
	_, err := svc.InitFor(context.Background(), userID)
	require.NoError(t, err)

	_, err = svc.AddXP(context.Background(), userID, 1000)
	require.NoError(t, err)

	_, err = svc.SpendXP(context.Background(), userID, 2000)
	assert.ErrorIs(t, err, ErrInsufficientXP)

	// Failed spend must not mutate the row.
	p, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 1000, p.XP)
	assert.Equal(t, 2, p.Level)
}

func TestSpendXPDeductsAndRederivesLevel(t *testing.T) {
	svc, _ := setupTest(t)
	userID := uuid.New()
	_, err := svc.InitFor(context.Background(), userID)
	require.NoError(t, err)

	_, err = svc.AddXP(context.Background(), userID, 2500)
	require.NoError(t, err)

	p, err := svc.SpendXP(context.Background(), userID, 1600)
	require.NoError(t, err)
	assert.Equal(t, 900, p.XP)
	assert.Equal(t, 1, p.Level)
}

func TestUnlockThemeDeduplicates(t *testing.T) {
	svc, _ := setupTest(t)
	userID := uuid.New()
	_, err := svc.InitFor(context.Background(), userID)
	require.NoError(t, err)

	_, err = svc.UnlockTheme(context.Background(), userID, "ocean")
	require.NoError(t, err)
	_, err = svc.UnlockTheme(context.Background(), userID, "forest")
	require.NoError(t, err)
	p, err := svc.UnlockTheme(context.Background(), userID, "ocean")
	require.NoError(t, err)

	assert.Equal(t, []string{"ocean", "forest"}, p.UnlockedThemeIDs())
}

func TestEarnBadgeCountsAndNotifies(t *testing.T) {
	svc, db := setupTest(t)
	userID := uuid.New()
	_, err := svc.InitFor(context.Background(), userID)
	require.NoError(t, err)

	_, err = svc.EarnBadge(context.Background(), userID, "quiz-rookie")
	require.NoError(t, err)
	p, err := svc.EarnBadge(context.Background(), userID, "quiz-rookie")
	require.NoError(t, err)

	assert.Equal(t, 2, p.BadgeCounts()["quiz-rookie"])

	notifs := notificationsFor(t, db, userID)
	assert.Len(t, notifs, 2)
	assert.Equal(t, notification.KindBadgeEarned, notifs[0].Kind)
}

func TestEarnBadgeWithoutDefinitionStillCounts(t *testing.T) {
	svc, db := setupTest(t)
	userID := uuid.New()
	_, err := svc.InitFor(context.Background(), userID)
	require.NoError(t, err)

	p, err := svc.EarnBadge(context.Background(), userID, "no-such-badge")
	require.NoError(t, err)

	assert.Equal(t, 1, p.BadgeCounts()["no-such-badge"])
	assert.Empty(t, notificationsFor(t, db, userID))
}

func TestEarnBadgeDoesNotGrantXP(t *testing.T) {
	svc, _ := setupTest(t)
	userID := uuid.New()
	_, err := svc.InitFor(context.Background(), userID)
	require.NoError(t, err)

	p, err := svc.EarnBadge(context.Background(), userID, "grand-scholar")
	require.NoError(t, err)

	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 1, p.Level)
}

func TestAdvanceStreak(t *testing.T) {
	svc, _ := setupTest(t)
	userID := uuid.New()
	_, err := svc.InitFor(context.Background(), userID)
	require.NoError(t, err)

	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	day1Later := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day3 := day2.AddDate(0, 0, 1)
	day10 := day1.AddDate(0, 0, 9)

	p, err := svc.AdvanceStreak(context.Background(), userID, day1)
	require.NoError(t, err)
	first := p.StreakCurrent

	// Same-day login changes nothing.
	p, err = svc.AdvanceStreak(context.Background(), userID, day1Later)
	require.NoError(t, err)
	assert.Equal(t, first, p.StreakCurrent)

	// Consecutive days increment.
	p, err = svc.AdvanceStreak(context.Background(), userID, day2)
	require.NoError(t, err)
	assert.Equal(t, first+1, p.StreakCurrent)

	p, err = svc.AdvanceStreak(context.Background(), userID, day3)
	require.NoError(t, err)
	assert.Equal(t, first+2, p.StreakCurrent)
	best := p.StreakBest
	assert.Equal(t, p.StreakCurrent, best)

	// A gap resets the current streak but best survives.
	p, err = svc.AdvanceStreak(context.Background(), userID, day10)
	require.NoError(t, err)
	assert.Equal(t, 1, p.StreakCurrent)
	assert.Equal(t, best, p.StreakBest)
}

func TestLevelForXP(t *testing.T) {
	assert.Equal(t, 1, LevelForXP(0))
	assert.Equal(t, 1, LevelForXP(999))
	assert.Equal(t, 2, LevelForXP(1000))
	assert.Equal(t, 3, LevelForXP(2500))
	assert.Equal(t, 11, LevelForXP(10000))
}
