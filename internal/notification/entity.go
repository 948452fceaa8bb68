package notification

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindLevelUp             Kind = "LEVEL_UP"
	KindBadgeEarned         Kind = "BADGE_EARNED"
	KindAchievementUnlocked Kind = "ACHIEVEMENT_UNLOCKED"
)

type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind      Kind       `gorm:"type:text;not null" json:"kind"`
	Title     string     `gorm:"type:text;not null" json:"title"`
	Icon      string     `gorm:"type:text" json:"icon,omitempty"`
	Sound     bool       `gorm:"not null;default:false" json:"sound"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
}
