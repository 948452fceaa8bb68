package note

import (
	"time"

	"github.com/google/uuid"
)

// Note content is an HTML payload; SupportsRichText tells the client which
// editor to open. Plain-text notes still store their content as-is.
type Note struct {
	ID               uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AuthorID         uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Title            string    `gorm:"type:text;not null" json:"title"`
	Content          string    `gorm:"type:text;not null" json:"content"`
	Subject          string    `gorm:"type:text;index" json:"subject"`
	SupportsRichText bool      `gorm:"not null;default:true" json:"supports_rich_text"`
	IsPublic         bool      `gorm:"not null;default:false" json:"is_public"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time `gorm:"not null" json:"updated_at"`
}

// SharedNote is the community-pool copy of a published note.
type SharedNote struct {
	NoteID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"note_id"`
	AuthorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Subject     string    `gorm:"type:text;index" json:"subject"`
	PublishedAt time.Time `gorm:"autoCreateTime" json:"published_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
