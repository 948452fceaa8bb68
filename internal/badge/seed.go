package badge

var defaultBadges = []Badge{
	{ID: "quiz-rookie", Name: "Quiz Rookie", Description: "Complete your first quiz", Icon: "🎯", XPReward: 50, Rarity: RarityCommon},
	{ID: "quiz-veteran", Name: "Quiz Veteran", Description: "Complete 25 quizzes", Icon: "🏹", XPReward: 250, Rarity: RarityRare},
	{ID: "perfect-score", Name: "Perfectionist", Description: "Score 100% on a quiz", Icon: "💯", XPReward: 150, Rarity: RarityRare},
	{ID: "note-taker", Name: "Note Taker", Description: "Write your first note", Icon: "📝", XPReward: 30, Rarity: RarityCommon},
	{ID: "bookworm", Name: "Bookworm", Description: "Write 20 notes", Icon: "📚", XPReward: 200, Rarity: RarityEpic},
	{ID: "streak-week", Name: "On Fire", Description: "Reach a 7-day streak", Icon: "🔥", XPReward: 100, Rarity: RarityRare},
	{ID: "streak-month", Name: "Unstoppable", Description: "Reach a 30-day streak", Icon: "⚡", XPReward: 500, Rarity: RarityLegendary},
	{ID: "game-maker", Name: "Game Maker", Description: "Publish a custom game", Icon: "🕹️", XPReward: 120, Rarity: RarityEpic},
	{ID: "community-star", Name: "Community Star", Description: "Have a published quiz rated 5 stars", Icon: "🌟", XPReward: 300, Rarity: RarityLegendary},
	{ID: "grand-scholar", Name: "Grand Scholar", Description: "Reach level 50", Icon: "👑", XPReward: 1000, Rarity: RarityMythic},
}

// SeedDefaults inserts the built-in catalog on first boot. Existing rows
// are left untouched.
func SeedDefaults(repo Repository) error {
	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return repo.CreateAll(defaultBadges)
}
