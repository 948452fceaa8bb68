package achievement

import (
	"time"

	"github.com/google/uuid"
)

// Achievement is a catalog definition keyed by a stable string id.
// Custom, user-defined entries may be appended; none are ever removed.
type Achievement struct {
	Key         string    `gorm:"type:text;primaryKey" json:"key"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Icon        string    `gorm:"type:text" json:"icon"`
	Custom      bool      `gorm:"not null;default:false" json:"custom"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// UserAchievement records a single unlock. The row's existence is the
// unlocked flag; it is never deleted, so unlocks are monotonic.
type UserAchievement struct {
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	AchievementKey string    `gorm:"type:text;primaryKey" json:"achievement_key"`
	UnlockedAt     time.Time `gorm:"autoCreateTime" json:"unlocked_at"`
}

// AchievementView is a catalog entry joined with one user's unlock state.
type AchievementView struct {
	Achievement
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}
