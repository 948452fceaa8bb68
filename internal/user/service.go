package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/studyhive/studyhive-lambda/internal/achievement"
	"github.com/studyhive/studyhive-lambda/internal/auth"
	"github.com/studyhive/studyhive-lambda/internal/config"
	"github.com/studyhive/studyhive-lambda/internal/progress"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound            = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// firstLoginAchievement is unlocked once, at registration time.
const firstLoginAchievement = "first-login"

type Service interface {
	Register(ctx context.Context, dto RegisterDTO) (*TokenPairResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*TokenPairResponse, error)
	LoginWithGoogle(ctx context.Context, code string) (*TokenPairResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPairResponse, error)
	GetMe(ctx context.Context, userID uuid.UUID) (*User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, dto UpdateProfileDTO) (*User, error)
}

type service struct {
	repo         Repository
	progress     progress.Service
	achievements achievement.Service
	google       GoogleVerifier
}

func NewService(repo Repository, progressSvc progress.Service, achievementSvc achievement.Service, google GoogleVerifier) Service {
	return &service{
		repo:         repo,
		progress:     progressSvc,
		achievements: achievementSvc,
		google:       google,
	}
}

func (s *service) Register(ctx context.Context, dto RegisterDTO) (*TokenPairResponse, error) {
	log := config.WithContext(ctx)

	role := dto.Role
	if role == "" {
		role = RoleStudent
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	existing, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:           uuid.New(),
		Email:        dto.Email,
		PasswordHash: string(hash),
		DisplayName:  dto.DisplayName,
		Role:         role,
		AvatarID:     dto.AvatarID,
		BirthDate:    dto.BirthDate,
	}
	if err := s.repo.Create(u); err != nil {
		return nil, err
	}

	if _, err := s.progress.InitFor(ctx, u.ID); err != nil {
		log.WithError(err).Error("Failed to seed progress for new user")
		return nil, err
	}
	if _, err := s.achievements.Unlock(ctx, u.ID, firstLoginAchievement); err != nil {
		log.WithError(err).Warn("Failed to unlock first-login achievement")
	}

	log.Infof("Registered user %s with role %s", u.ID, u.Role)
	return s.issueTokenPair(u)
}

func (s *service) Login(ctx context.Context, dto LoginDTO) (*TokenPairResponse, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.GetByEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if _, err := s.progress.AdvanceStreak(ctx, u.ID, time.Now()); err != nil {
		log.WithError(err).Warn("Failed to advance login streak")
	}

	return s.issueTokenPair(u)
}

func (s *service) LoginWithGoogle(ctx context.Context, code string) (*TokenPairResponse, error) {
	log := config.WithContext(ctx)

	profile, token, err := s.google.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Error("Google code exchange failed")
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByGoogleID(profile.Sub)
	if err != nil {
		return nil, err
	}
	if u == nil {
		u, err = s.repo.GetByEmail(profile.Email)
		if err != nil {
			return nil, err
		}
	}

	if u == nil {
		u = &User{
			ID:          uuid.New(),
			Email:       profile.Email,
			DisplayName: profile.Name,
			Role:        RoleStudent,
			GoogleID:    profile.Sub,
		}
		if err := s.repo.Create(u); err != nil {
			return nil, err
		}
		if _, err := s.progress.InitFor(ctx, u.ID); err != nil {
			return nil, err
		}
		if _, err := s.achievements.Unlock(ctx, u.ID, firstLoginAchievement); err != nil {
			log.WithError(err).Warn("Failed to unlock first-login achievement")
		}
	}

	u.GoogleID = profile.Sub
	if encrypted, err := config.Encrypt(token.AccessToken); err == nil {
		u.EncryptedGoogleAccessToken = encrypted
	}
	if token.RefreshToken != "" {
		if encrypted, err := config.Encrypt(token.RefreshToken); err == nil {
			u.EncryptedGoogleRefreshToken = encrypted
		}
	}
	if err := s.repo.Update(u); err != nil {
		return nil, err
	}

	if _, err := s.progress.AdvanceStreak(ctx, u.ID, time.Now()); err != nil {
		log.WithError(err).Warn("Failed to advance login streak")
	}

	return s.issueTokenPair(u)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (*TokenPairResponse, error) {
	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.EncryptedRefreshToken == "" {
		return nil, ErrInvalidRefreshToken
	}

	stored, err := config.Decrypt(u.EncryptedRefreshToken)
	if err != nil || stored != refreshToken {
		return nil, ErrInvalidRefreshToken
	}

	return s.issueTokenPair(u)
}

func (s *service) GetMe(ctx context.Context, userID uuid.UUID) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, dto UpdateProfileDTO) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}

	if dto.DisplayName != nil {
		u.DisplayName = *dto.DisplayName
	}
	if dto.AvatarID != nil {
		u.AvatarID = *dto.AvatarID
	}
	if dto.BirthDate != nil {
		u.BirthDate = dto.BirthDate
	}

	if err := s.repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// issueTokenPair mints a fresh access/refresh pair and persists the refresh
// token encrypted, invalidating any previously issued one.
func (s *service) issueTokenPair(u *User) (*TokenPairResponse, error) {
	access, err := auth.GenerateJWT(u.ID.String(), string(u.Role), accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.GenerateJWT(u.ID.String(), string(u.Role), refreshTokenTTL)
	if err != nil {
		return nil, err
	}

	encrypted, err := config.Encrypt(refresh)
	if err != nil {
		return nil, err
	}
	u.EncryptedRefreshToken = encrypted
	if err := s.repo.Update(u); err != nil {
		return nil, err
	}

	return &TokenPairResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         toResponse(u),
	}, nil
}
