package planner

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	util "github.com/studyhive/studyhive-lambda/internal/utils"
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

	require.NoError(t, db.AutoMigrate(&Event{}))
	return NewService(NewRepository(db))
}

func localDate(t time.Time) *util.LocalDateTime {
	ldt := util.LocalDateTime{Time: t}
	return &ldt
}

func strPtr(s string) *string { return &s }

func statusPtr(s EventStatus) *EventStatus { return &s }

func TestCreateStartsAsTodo(t *testing.T) {
	svc := setupTest(t)

	e, err := svc.Create(context.Background(), uuid.New(), CreateEventDTO{
		Title:   "Algebra homework",
		Subject: "math",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusTodo, e.Status)
}

func TestUpdateValidatesStatus(t *testing.T) {
	svc := setupTest(t)
	userID := uuid.New()

	e, err := svc.Create(context.Background(), userID, CreateEventDTO{Title: "Essay"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), e.ID, userID, UpdateEventDTO{
		Status: statusPtr(EventStatus("SOMEDAY")),
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	updated, err := svc.Update(context.Background(), e.ID, userID, UpdateEventDTO{
		Status: statusPtr(StatusDone),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusDone, updated.Status)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	svc := setupTest(t)
	userID := uuid.New()

	e, err := svc.Create(context.Background(), userID, CreateEventDTO{
		Title:       "Read chapter 4",
		Description: "pages 80-110",
		Subject:     "literature",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), e.ID, userID, UpdateEventDTO{
		Title: strPtr("Read chapters 4-5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Read chapters 4-5", updated.Title)
	assert.Equal(t, "pages 80-110", updated.Description)
	assert.Equal(t, "literature", updated.Subject)
}

func TestUpdateOtherUser(t *testing.T) {
	svc := setupTest(t)
	userID := uuid.New()

	e, err := svc.Create(context.Background(), userID, CreateEventDTO{Title: "Lab report"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), e.ID, uuid.New(), UpdateEventDTO{
		Title: strPtr("mine now"),
	})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDeleteMissingEvent(t *testing.T) {
	svc := setupTest(t)

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestDashboardStats(t *testing.T) {
	svc := setupTest(t)
	userID := uuid.New()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	mk := func(title string, due time.Time, status EventStatus) {
		e, err := svc.Create(context.Background(), userID, CreateEventDTO{
			Title:   title,
			DueDate: localDate(due),
		})
		require.NoError(t, err)
		if status != StatusTodo {
			_, err = svc.Update(context.Background(), e.ID, userID, UpdateEventDTO{
				Status: statusPtr(status),
			})
			require.NoError(t, err)
		}
	}

	mk("overdue todo", now.AddDate(0, 0, -3), StatusTodo)
	mk("upcoming todo", now.AddDate(0, 0, 3), StatusTodo)
	mk("in progress", now.AddDate(0, 0, 1), StatusInProgress)
	mk("finished late", now.AddDate(0, 0, -10), StatusDone)

	stats, err := svc.DashboardStats(context.Background(), userID, now)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Stats.Total)
	assert.Equal(t, 2, stats.Stats.Todo)
	assert.Equal(t, 1, stats.Stats.InProgress)
	assert.Equal(t, 1, stats.Stats.Done)
	// Done events never count as overdue.
	assert.Equal(t, 1, stats.Stats.Overdue)

	assert.NotEmpty(t, stats.LastEvents)
	assert.LessOrEqual(t, len(stats.LastEvents), 5)
}

func TestDashboardStatsIsPerUser(t *testing.T) {
	svc := setupTest(t)
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.Create(context.Background(), alice, CreateEventDTO{Title: "a"})
	require.NoError(t, err)

	stats, err := svc.DashboardStats(context.Background(), bob, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Stats.Total)
}
