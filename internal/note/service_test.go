package note

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

	require.NoError(t, db.AutoMigrate(&Note{}, &SharedNote{}))
	return NewService(NewRepository(db))
}

func TestCreateDefaultsToRichText(t *testing.T) {
	svc := setupTest(t)
	authorID := uuid.New()

	n, err := svc.Create(context.Background(), authorID, CreateNoteDTO{
		Title:   "Photosynthesis",
		Content: "<p>Light reactions...</p>",
		Subject: "biology",
	})
	require.NoError(t, err)
	assert.True(t, n.SupportsRichText)
	assert.Equal(t, n.CreatedAt, n.UpdatedAt)
}

func TestCreatePlainTextNote(t *testing.T) {
	svc := setupTest(t)
	plain := false

	n, err := svc.Create(context.Background(), uuid.New(), CreateNoteDTO{
		Title:            "Shopping list",
		Content:          "eggs",
		SupportsRichText: &plain,
	})
	require.NoError(t, err)
	assert.False(t, n.SupportsRichText)
}

func TestGetByIDMissReturnsNil(t *testing.T) {
	svc := setupTest(t)

	n, err := svc.GetByID(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, n)
}

func TestGetByIDOtherAuthor(t *testing.T) {
	svc := setupTest(t)
	authorID := uuid.New()

	n, err := svc.Create(context.Background(), authorID, CreateNoteDTO{Title: "t", Content: "c"})
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), n.ID, uuid.New())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateReplacesFullNote(t *testing.T) {
	svc := setupTest(t)
	authorID := uuid.New()

	n, err := svc.Create(context.Background(), authorID, CreateNoteDTO{
		Title:   "Draft",
		Content: "v1",
		Subject: "history",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), authorID, UpdateNoteDTO{
		ID:               n.ID,
		Title:            "Final",
		Content:          "v2",
		Subject:          "history",
		SupportsRichText: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, "v2", updated.Content)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestUpdateMissingNote(t *testing.T) {
	svc := setupTest(t)

	_, err := svc.Update(context.Background(), uuid.New(), UpdateNoteDTO{
		ID:    uuid.New(),
		Title: "x",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteThenGet(t *testing.T) {
	svc := setupTest(t)
	authorID := uuid.New()

	n, err := svc.Create(context.Background(), authorID, CreateNoteDTO{Title: "t", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), n.ID, authorID))

	got, err := svc.GetByID(context.Background(), n.ID, authorID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is still a success.
	require.NoError(t, svc.Delete(context.Background(), n.ID, authorID))
}

func TestDeleteOtherAuthor(t *testing.T) {
	svc := setupTest(t)
	authorID := uuid.New()

	n, err := svc.Create(context.Background(), authorID, CreateNoteDTO{Title: "t", Content: "c"})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), n.ID, uuid.New())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestPublishAddsToCommunityPool(t *testing.T) {
	svc := setupTest(t)
	authorID := uuid.New()

	n, err := svc.Create(context.Background(), authorID, CreateNoteDTO{
		Title:   "WW2 timeline",
		Content: "<ul>...</ul>",
		Subject: "history",
	})
	require.NoError(t, err)

	shared, err := svc.Publish(context.Background(), n.ID, authorID)
	require.NoError(t, err)
	assert.Equal(t, n.ID, shared.NoteID)

	community, err := svc.ListCommunity(context.Background(), "history")
	require.NoError(t, err)
	require.Len(t, community, 1)
	assert.Equal(t, "WW2 timeline", community[0].Title)

	other, err := svc.ListCommunity(context.Background(), "math")
	require.NoError(t, err)
	assert.Empty(t, other)
}
