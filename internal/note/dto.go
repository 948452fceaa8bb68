package note

import (
	"time"

	"github.com/google/uuid"
)

type CreateNoteDTO struct {
	Title            string `json:"title" validate:"required"`
	Content          string `json:"content" validate:"required"`
	Subject          string `json:"subject"`
	SupportsRichText *bool  `json:"supports_rich_text"`
}

// UpdateNoteDTO carries the full note; partial edits are the client's job.
type UpdateNoteDTO struct {
	ID               uuid.UUID `json:"id" validate:"required"`
	Title            string    `json:"title" validate:"required"`
	Content          string    `json:"content" validate:"required"`
	Subject          string    `json:"subject"`
	SupportsRichText bool      `json:"supports_rich_text"`
}

type NoteResponse struct {
	ID               uuid.UUID `json:"id"`
	AuthorID         uuid.UUID `json:"author_id"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	Subject          string    `json:"subject"`
	SupportsRichText bool      `json:"supports_rich_text"`
	IsPublic         bool      `json:"is_public"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func toResponse(n *Note) *NoteResponse {
	return &NoteResponse{
		ID:               n.ID,
		AuthorID:         n.AuthorID,
		Title:            n.Title,
		Content:          n.Content,
		Subject:          n.Subject,
		SupportsRichText: n.SupportsRichText,
		IsPublic:         n.IsPublic,
		CreatedAt:        n.CreatedAt,
		UpdatedAt:        n.UpdatedAt,
	}
}
