package progress

type XPAmountDTO struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

type UnlockDTO struct {
	ID string `json:"id" validate:"required"`
}

type EarnBadgeDTO struct {
	BadgeID string `json:"badge_id" validate:"required"`
}

type ProgressResponse struct {
	XP              int            `json:"xp"`
	Level           int            `json:"level"`
	StreakCurrent   int            `json:"streak_current"`
	StreakBest      int            `json:"streak_best"`
	UnlockedThemes  []string       `json:"unlocked_themes"`
	UnlockedPuzzles []string       `json:"unlocked_puzzles"`
	Badges          map[string]int `json:"badges"`
}

func toResponse(p *Progress) *ProgressResponse {
	return &ProgressResponse{
		XP:              p.XP,
		Level:           p.Level,
		StreakCurrent:   p.StreakCurrent,
		StreakBest:      p.StreakBest,
		UnlockedThemes:  p.UnlockedThemeIDs(),
		UnlockedPuzzles: p.UnlockedPuzzleIDs(),
		Badges:          p.BadgeCounts(),
	}
}
