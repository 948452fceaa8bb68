package game

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

	require.NoError(t, db.AutoMigrate(&CustomGame{}))
	return NewService(NewRepository(db))
}

func TestAddAssignsID(t *testing.T) {
	svc := setupTest(t)
	authorID := uuid.New()

	g := &CustomGame{
		AuthorID: authorID,
		Title:    "State capitals memory",
		Kind:     "memory",
		Config:   datatypes.JSON([]byte(`{"pairs":12}`)),
	}
	require.NoError(t, svc.Add(context.Background(), g))
	assert.NotEqual(t, uuid.Nil, g.ID)

	got, err := svc.GetByID(context.Background(), g.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "State capitals memory", got.Title)
	assert.JSONEq(t, `{"pairs":12}`, string(got.Config))
}

func TestGetMissingGame(t *testing.T) {
	svc := setupTest(t)

	got, err := svc.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListIsPerAuthor(t *testing.T) {
	svc := setupTest(t)
	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, svc.Add(context.Background(), &CustomGame{
		AuthorID: alice, Title: "A", Kind: "quizzle",
	}))
	require.NoError(t, svc.Add(context.Background(), &CustomGame{
		AuthorID: alice, Title: "B", Kind: "memory",
	}))
	require.NoError(t, svc.Add(context.Background(), &CustomGame{
		AuthorID: bob, Title: "C", Kind: "memory",
	}))

	games, err := svc.List(context.Background(), alice)
	require.NoError(t, err)
	assert.Len(t, games, 2)
}
