package achievement

var defaultAchievements = []Achievement{
	{Key: "first-login", Name: "Welcome Aboard", Description: "Log in for the first time", Icon: "🚀"},
	{Key: "first-quiz", Name: "Quiz Debut", Description: "Finish your first quiz", Icon: "🎓"},
	{Key: "first-note", Name: "First Words", Description: "Save your first note", Icon: "✏️"},
	{Key: "first-game", Name: "Builder", Description: "Create your first custom game", Icon: "🧱"},
	{Key: "published-quiz", Name: "Going Public", Description: "Publish a quiz to the community", Icon: "📣"},
	{Key: "level-5", Name: "Getting Serious", Description: "Reach level 5", Icon: "⭐"},
	{Key: "level-10", Name: "Dedicated Learner", Description: "Reach level 10", Icon: "🌠"},
	{Key: "streak-7", Name: "Week Warrior", Description: "Keep a 7-day streak", Icon: "🗓️"},
	{Key: "night-owl", Name: "Night Owl", Description: "Study after midnight", Icon: "🦉"},
	{Key: "all-subjects", Name: "Renaissance Mind", Description: "Attempt quizzes in five different subjects", Icon: "🧠"},
}

// SeedDefaults inserts the built-in catalog on first boot. Existing rows,
// including custom ones, are left untouched.
func SeedDefaults(repo Repository) error {
	count, err := repo.CountDefinitions()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return repo.CreateDefinitions(defaultAchievements)
}
