package achievement

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

	require.NoError(t, db.AutoMigrate(&Achievement{}, &UserAchievement{}, &notification.Notification{}))

	repo := NewRepository(db)
	require.NoError(t, SeedDefaults(repo))

	notifier := notification.NewService(notification.NewRepository(db))
	return NewService(repo, notifier), db
}

func notificationsFor(t *testing.T, db *gorm.DB, userID uuid.UUID) []notification.Notification {
	t.Helper()
	var out []notification.Notification
	require.NoError(t, db.Where("user_id = ?", userID).Find(&out).Error)
	return out
}

func TestUnlockUnknownKey(t *testing.T) {
	svc, _ := setupTest(t)

	_, err := svc.Unlock(context.Background(), uuid.New(), "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnlockIsIdempotent(t *testing.T) {
	svc, db := setupTest(t)
	userID := uuid.New()

	first, err := svc.Unlock(context.Background(), userID, "first-login")
	require.NoError(t, err)
	assert.True(t, first.Unlocked)
	require.NotNil(t, first.UnlockedAt)

	second, err := svc.Unlock(context.Background(), userID, "first-login")
	require.NoError(t, err)
	assert.True(t, second.Unlocked)
	assert.Equal(t, first.UnlockedAt.Unix(), second.UnlockedAt.Unix())

	// Exactly one notification across both calls, with sound.
	notifs := notificationsFor(t, db, userID)
	require.Len(t, notifs, 1)
	assert.Equal(t, notification.KindAchievementUnlocked, notifs[0].Kind)
	assert.True(t, notifs[0].Sound)
}

func TestUnlockIsPerUser(t *testing.T) {
	svc, db := setupTest(t)
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.Unlock(context.Background(), alice, "first-login")
	require.NoError(t, err)
	_, err = svc.Unlock(context.Background(), bob, "first-login")
	require.NoError(t, err)

	assert.Len(t, notificationsFor(t, db, alice), 1)
	assert.Len(t, notificationsFor(t, db, bob), 1)
}

func TestListCarriesUnlockedFlags(t *testing.T) {
	svc, _ := setupTest(t)
	userID := uuid.New()

	_, err := svc.Unlock(context.Background(), userID, "first-login")
	require.NoError(t, err)

	views, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, views)

	unlocked := 0
	for _, v := range views {
		if v.Unlocked {
			unlocked++
			assert.Equal(t, "first-login", v.Key)
			assert.NotNil(t, v.UnlockedAt)
		} else {
			assert.Nil(t, v.UnlockedAt)
		}
	}
	assert.Equal(t, 1, unlocked)
}

func TestAddCustomRejectsDuplicateKey(t *testing.T) {
	svc, _ := setupTest(t)

	err := svc.AddCustom(context.Background(), &Achievement{
		Key:  "my-goal",
		Name: "My Goal",
		Icon: "🏁",
	})
	require.NoError(t, err)

	err = svc.AddCustom(context.Background(), &Achievement{Key: "my-goal", Name: "Again"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	err = svc.AddCustom(context.Background(), &Achievement{Key: "first-login", Name: "Clash"})
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestCustomAchievementCanBeUnlocked(t *testing.T) {
	svc, _ := setupTest(t)
	userID := uuid.New()

	require.NoError(t, svc.AddCustom(context.Background(), &Achievement{
		Key:  "read-10-books",
		Name: "Well Read",
		Icon: "📖",
	}))

	view, err := svc.Unlock(context.Background(), userID, "read-10-books")
	require.NoError(t, err)
	assert.True(t, view.Unlocked)
	assert.True(t, view.Custom)
}
