package progress

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LevelXPQuantum is the amount of XP per level: level = xp/quantum + 1.
const LevelXPQuantum = 1000

// Progress is the per-user progression row. Unlock sets and badge counts
// are JSON columns; a malformed payload reads back as the empty default.
type Progress struct {
	UserID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	XP              int            `gorm:"not null;default:0" json:"xp"`
	Level           int            `gorm:"not null;default:1" json:"level"`
	StreakCurrent   int            `gorm:"not null;default:1" json:"streak_current"`
	StreakBest      int            `gorm:"not null;default:1" json:"streak_best"`
	LastLoginDate   time.Time      `gorm:"not null" json:"last_login_date"`
	UnlockedThemes  datatypes.JSON `gorm:"type:jsonb" json:"unlocked_themes"`
	UnlockedPuzzles datatypes.JSON `gorm:"type:jsonb" json:"unlocked_puzzles"`
	Badges          datatypes.JSON `gorm:"type:jsonb" json:"badges"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// LevelForXP derives the level from a total XP amount.
func LevelForXP(xp int) int {
	return xp/LevelXPQuantum + 1
}

func (p *Progress) unlockSet(raw datatypes.JSON) []string {
	var ids []string
	if len(raw) == 0 {
		return ids
	}
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil
	}
	return ids
}

func (p *Progress) UnlockedThemeIDs() []string {
	return p.unlockSet(p.UnlockedThemes)
}

func (p *Progress) UnlockedPuzzleIDs() []string {
	return p.unlockSet(p.UnlockedPuzzles)
}

func (p *Progress) BadgeCounts() map[string]int {
	counts := map[string]int{}
	if len(p.Badges) == 0 {
		return counts
	}
	if err := json.Unmarshal(p.Badges, &counts); err != nil {
		return map[string]int{}
	}
	return counts
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}
