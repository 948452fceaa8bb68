package prefs

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTest(t *testing.T) Service {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&Preferences{}))
	return NewService(NewRepository(db))
}

func TestGetReturnsDefaultsWhenAbsent(t *testing.T) {
	svc := setupTest(t)
	userID := uuid.New()

	p, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, p.UserID)
	assert.Equal(t, "default", p.ThemeID)
	assert.False(t, p.ReducedMotion)
}

func TestPutThenGet(t *testing.T) {
	svc := setupTest(t)
	userID := uuid.New()

	_, err := svc.Put(context.Background(), &Preferences{
		UserID:        userID,
		ThemeID:       "ocean",
		ReducedMotion: true,
		Payload:       datatypes.JSON([]byte(`{"font_size":"large"}`)),
	})
	require.NoError(t, err)

	p, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "ocean", p.ThemeID)
	assert.True(t, p.ReducedMotion)
	assert.JSONEq(t, `{"font_size":"large"}`, string(p.Payload))
}

func TestPutOverwritesPrevious(t *testing.T) {
	svc := setupTest(t)
	userID := uuid.New()

	_, err := svc.Put(context.Background(), &Preferences{UserID: userID, ThemeID: "ocean"})
	require.NoError(t, err)
	_, err = svc.Put(context.Background(), &Preferences{UserID: userID, ThemeID: "forest"})
	require.NoError(t, err)

	p, err := svc.Get(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "forest", p.ThemeID)
}

func TestPutEmptyThemeFallsBack(t *testing.T) {
	svc := setupTest(t)
	userID := uuid.New()

	p, err := svc.Put(context.Background(), &Preferences{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, "default", p.ThemeID)
}
