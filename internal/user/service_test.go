package user

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyhive/studyhive-lambda/internal/achievement"
	"github.com/studyhive/studyhive-lambda/internal/auth"
	"github.com/studyhive/studyhive-lambda/internal/badge"
	"github.com/studyhive/studyhive-lambda/internal/config"
	"github.com/studyhive/studyhive-lambda/internal/notification"
	"github.com/studyhive/studyhive-lambda/internal/progress"
	"golang.org/x/oauth2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeGoogle struct {
	profile GoogleProfile
	err     error
}

func (f *fakeGoogle) Exchange(ctx context.Context, code string) (*GoogleProfile, *oauth2.Token, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return &f.profile, &oauth2.Token{AccessToken: "ya29.test", RefreshToken: "1//refresh"}, nil
}

func setupTest(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("CRYPTO_KEY", "0123456789abcdef0123456789abcdef")
	auth.Init()
	config.InitCrypto()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&User{},
		&progress.Progress{},
		&badge.Badge{},
		&achievement.Achievement{},
		&achievement.UserAchievement{},
		&notification.Notification{},
	))

	notifier := notification.NewService(notification.NewRepository(db))
	badgeRepo := badge.NewRepository(db)
	progressSvc := progress.NewService(progress.NewRepository(db), badge.NewService(badgeRepo), notifier)

	achievementRepo := achievement.NewRepository(db)
	require.NoError(t, achievement.SeedDefaults(achievementRepo))
	achievementSvc := achievement.NewService(achievementRepo, notifier)

	svc := NewService(NewRepository(db), progressSvc, achievementSvc, &fakeGoogle{
		profile: GoogleProfile{Sub: "g-123", Email: "g@example.com", Name: "G User"},
	})
	return svc, db
}

func registerDTO() RegisterDTO {
	return RegisterDTO{
		Email:       "student@example.com",
		Password:    "hunter2hunter2",
		DisplayName: "Student",
	}
}

func TestRegisterSeedsProgressAndFirstLogin(t *testing.T) {
	svc, db := setupTest(t)

	pair, err := svc.Register(context.Background(), registerDTO())
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, RoleStudent, pair.User.Role)

	userID := uuid.MustParse(pair.User.ID)

	var p progress.Progress
	require.NoError(t, db.First(&p, "user_id = ?", userID).Error)
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 1, p.StreakCurrent)

	var unlock achievement.UserAchievement
	require.NoError(t, db.First(&unlock, "user_id = ? AND achievement_key = ?", userID, "first-login").Error)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := setupTest(t)

	_, err := svc.Register(context.Background(), registerDTO())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerDTO())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _ := setupTest(t)

	dto := registerDTO()
	dto.Role = Role("admin")
	_, err := svc.Register(context.Background(), dto)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLogin(t *testing.T) {
	svc, _ := setupTest(t)

	_, err := svc.Register(context.Background(), registerDTO())
	require.NoError(t, err)

	pair, err := svc.Login(context.Background(), LoginDTO{
		Email:    "student@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	claims, err := auth.ValidateJWT(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, pair.User.ID, claims.UserID)
	assert.Equal(t, string(RoleStudent), claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := setupTest(t)

	_, err := svc.Register(context.Background(), registerDTO())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginDTO{
		Email:    "student@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), LoginDTO{
		Email:    "nobody@example.com",
		Password: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWithGoogleCreatesAccount(t *testing.T) {
	svc, db := setupTest(t)

	pair, err := svc.LoginWithGoogle(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, "g@example.com", pair.User.Email)

	var u User
	require.NoError(t, db.First(&u, "google_id = ?", "g-123").Error)
	assert.NotEmpty(t, u.EncryptedGoogleAccessToken)
	// Tokens are never stored in the clear.
	assert.NotEqual(t, "ya29.test", u.EncryptedGoogleAccessToken)

	// Second sign-in reuses the same account.
	again, err := svc.LoginWithGoogle(context.Background(), "auth-code")
	require.NoError(t, err)
	assert.Equal(t, pair.User.ID, again.User.ID)
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, _ := setupTest(t)

	pair, err := svc.Register(context.Background(), registerDTO())
	require.NoError(t, err)

	rotated, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	_, err = svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestUpdateProfilePartialMerge(t *testing.T) {
	svc, _ := setupTest(t)

	pair, err := svc.Register(context.Background(), registerDTO())
	require.NoError(t, err)
	userID := uuid.MustParse(pair.User.ID)

	name := "Renamed"
	u, err := svc.UpdateProfile(context.Background(), userID, UpdateProfileDTO{
		DisplayName: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", u.DisplayName)
	assert.Equal(t, "student@example.com", u.Email)

	avatar := "owl"
	u, err = svc.UpdateProfile(context.Background(), userID, UpdateProfileDTO{
		AvatarID: &avatar,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", u.DisplayName)
	assert.Equal(t, "owl", u.AvatarID)
}

func TestGetMeUnknownUser(t *testing.T) {
	svc, _ := setupTest(t)

	_, err := svc.GetMe(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
