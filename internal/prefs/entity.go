package prefs

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Preferences holds per-user appearance settings. Payload is a free-form
// JSON blob for client-only settings the backend does not interpret.
type Preferences struct {
	UserID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	ThemeID       string         `gorm:"type:text;not null;default:'default'" json:"theme_id"`
	ReducedMotion bool           `gorm:"not null;default:false" json:"reduced_motion"`
	Payload       datatypes.JSON `gorm:"type:jsonb" json:"payload,omitempty"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func defaultPreferences(userID uuid.UUID) *Preferences {
	return &Preferences{
		UserID:  userID,
		ThemeID: "default",
	}
}
