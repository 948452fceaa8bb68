package note

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/studyhive/studyhive-lambda/internal/config"
)

var (
	ErrNotFound     = errors.New("note not found")
	ErrUnauthorized = errors.New("unauthorized")
)

type Service interface {
	Create(ctx context.Context, authorID uuid.UUID, dto CreateNoteDTO) (*NoteResponse, error)
	GetByID(ctx context.Context, id, authorID uuid.UUID) (*NoteResponse, error)
	List(ctx context.Context, authorID uuid.UUID) ([]NoteResponse, error)
	Update(ctx context.Context, authorID uuid.UUID, dto UpdateNoteDTO) (*NoteResponse, error)
	Delete(ctx context.Context, id, authorID uuid.UUID) error
	Publish(ctx context.Context, id, authorID uuid.UUID) (*SharedNote, error)
	ListCommunity(ctx context.Context, subject string) ([]SharedNote, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create stamps a fresh id and equal created/updated timestamps.
func (s *service) Create(ctx context.Context, authorID uuid.UUID, dto CreateNoteDTO) (*NoteResponse, error) {
	now := time.Now()
	richText := true
	if dto.SupportsRichText != nil {
		richText = *dto.SupportsRichText
	}

	n := Note{
		ID:               uuid.New(),
		AuthorID:         authorID,
		Title:            dto.Title,
		Content:          dto.Content,
		Subject:          dto.Subject,
		SupportsRichText: richText,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(&n); err != nil {
		return nil, err
	}
	return toResponse(&n), nil
}

// GetByID returns (nil, nil) on miss, matching the repository convention.
func (s *service) GetByID(ctx context.Context, id, authorID uuid.UUID) (*NoteResponse, error) {
	n, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	if n.AuthorID != authorID {
		return nil, ErrUnauthorized
	}
	return toResponse(n), nil
}

func (s *service) List(ctx context.Context, authorID uuid.UUID) ([]NoteResponse, error) {
	notes, err := s.repo.FindAllByAuthor(authorID)
	if err != nil {
		return nil, err
	}

	responses := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, *toResponse(&notes[i]))
	}
	return responses, nil
}

// Update takes the full note and refreshes updated_at.
func (s *service) Update(ctx context.Context, authorID uuid.UUID, dto UpdateNoteDTO) (*NoteResponse, error) {
	n, err := s.repo.FindByID(dto.ID)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrNotFound
	}
	if n.AuthorID != authorID {
		return nil, ErrUnauthorized
	}

	n.Title = dto.Title
	n.Content = dto.Content
	n.Subject = dto.Subject
	n.SupportsRichText = dto.SupportsRichText
	n.UpdatedAt = time.Now()

	if err := s.repo.Save(n); err != nil {
		return nil, err
	}
	return toResponse(n), nil
}

// Delete is idempotent: removing an absent id succeeds.
func (s *service) Delete(ctx context.Context, id, authorID uuid.UUID) error {
	n, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return nil
	}
	if n.AuthorID != authorID {
		return ErrUnauthorized
	}

	return s.repo.Delete(id)
}

func (s *service) Publish(ctx context.Context, id, authorID uuid.UUID) (*SharedNote, error) {
	log := config.WithContext(ctx)

	n, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrNotFound
	}
	if n.AuthorID != authorID {
		return nil, ErrUnauthorized
	}

	n.IsPublic = true
	n.UpdatedAt = time.Now()
	if err := s.repo.Save(n); err != nil {
		return nil, err
	}

	shared := SharedNote{
		NoteID:   n.ID,
		AuthorID: n.AuthorID,
		Title:    n.Title,
		Content:  n.Content,
		Subject:  n.Subject,
	}
	if err := s.repo.UpsertShared(&shared); err != nil {
		log.WithError(err).Error("Failed to publish note to community pool")
		return nil, err
	}

	return &shared, nil
}

func (s *service) ListCommunity(ctx context.Context, subject string) ([]SharedNote, error) {
	return s.repo.ListShared(subject)
}
