package game

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CustomGame is a user-authored mini-game. Config is an opaque JSON payload
// interpreted by the client's game runner; the backend only stores it.
type CustomGame struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AuthorID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	Title     string         `gorm:"type:text;not null" json:"title"`
	Kind      string         `gorm:"type:text;not null" json:"kind"`
	Config    datatypes.JSON `gorm:"type:jsonb" json:"config"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
