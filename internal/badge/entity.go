package badge

import "time"

type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
	RarityMythic    Rarity = "Mythic"
)

var AllRarities = []Rarity{
	RarityCommon,
	RarityRare,
	RarityEpic,
	RarityLegendary,
	RarityMythic,
}

func (r Rarity) IsValid() bool {
	for _, v := range AllRarities {
		if r == v {
			return true
		}
	}
	return false
}

// Badge is an immutable catalog definition. Per-user counts live in the
// progress rows; the reward value here is informational and is not
// credited automatically when a badge is earned.
type Badge struct {
	ID          string    `gorm:"type:text;primaryKey" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Icon        string    `gorm:"type:text" json:"icon"`
	XPReward    int       `gorm:"not null;default:0" json:"xp_reward"`
	Rarity      Rarity    `gorm:"type:text;not null" json:"rarity"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}
