package main

import "github.com/pixiplay/platform/internal/domain"

// starterGames is the catalog an empty install boots with.
func starterGames() []domain.GameInput {
	return []domain.GameInput{
		{
			Title:              "Puzzle Planet Adventure",
			Description:        "Guide a tiny explorer across planets by solving shape and color puzzles.",
			Developer:          "Sunbeam Studios",
			Publisher:          "Sunbeam Studios",
			ReleaseYear:        2022,
			PrimaryGenre:       "Puzzle",
			Genres:             []string{"Puzzle", "Adventure"},
			GameplayStyle:      "Single-player",
			AverageUserRating:  4.6,
			RatingCount:        1840,
			MetaScore:          82,
			PopularityScore:    91.5,
			ContentSuitability: "Everyone",
			TargetSkills:       []string{"Problem Solving", "Pattern Recognition"},
			DifficultyLevel:    domain.DifficultyEasy,
			PlatformType:       domain.PlatformMobile,
			Platform:           []string{"iOS", "Android"},
			ThumbnailURL:       "https://cdn.pixiplay.example/thumbs/puzzle-planet.png",
		},
		{
			Title:              "Math Blasters Galaxy",
			Description:        "Arcade arithmetic drills dressed up as a space shooter.",
			Developer:          "Orbit Learning",
			Publisher:          "Orbit Learning",
			ReleaseYear:        2021,
			PrimaryGenre:       "Educational",
			Genres:             []string{"Educational", "Arcade"},
			GameplayStyle:      "Single-player",
			AverageUserRating:  4.3,
			RatingCount:        960,
			MetaScore:          75,
			PopularityScore:    78.2,
			ContentSuitability: "Everyone",
			TargetSkills:       []string{"Arithmetic", "Reaction Time"},
			DifficultyLevel:    domain.DifficultyMedium,
			PlatformType:       domain.PlatformWeb,
			Platform:           []string{"Browser"},
			EmbedURL:           "https://games.pixiplay.example/math-blasters",
			ThumbnailURL:       "https://cdn.pixiplay.example/thumbs/math-blasters.png",
		},
		{
			Title:              "Forest Friends Farm",
			Description:        "Grow crops and care for animals with woodland companions.",
			Developer:          "Mossy Log Games",
			Publisher:          "Greenfield Interactive",
			ReleaseYear:        2023,
			PrimaryGenre:       "Simulation",
			Genres:             []string{"Simulation", "Casual"},
			GameplayStyle:      "Single-player",
			AverageUserRating:  4.8,
			RatingCount:        3120,
			MetaScore:          88,
			PopularityScore:    95.0,
			ContentSuitability: "Everyone",
			TargetSkills:       []string{"Planning", "Responsibility"},
			DifficultyLevel:    domain.DifficultyEasy,
			PlatformType:       domain.PlatformCrossPlatform,
			Platform:           []string{"iOS", "Android", "Switch"},
			ThumbnailURL:       "https://cdn.pixiplay.example/thumbs/forest-friends.png",
		},
		{
			Title:              "Word Wizards Duel",
			Description:        "Head-to-head spelling battles with collectible spell cards.",
			Developer:          "Inkwell Arcade",
			Publisher:          "Inkwell Arcade",
			ReleaseYear:        2020,
			PrimaryGenre:       "Word",
			Genres:             []string{"Word", "Strategy"},
			GameplayStyle:      "Multiplayer",
			AverageUserRating:  4.1,
			RatingCount:        540,
			MetaScore:          71,
			PopularityScore:    64.3,
			ContentSuitability: "Everyone 10+",
			TargetSkills:       []string{"Spelling", "Vocabulary"},
			DifficultyLevel:    domain.DifficultyChallenging,
			PlatformType:       domain.PlatformPC,
			Platform:           []string{"Windows", "macOS"},
			ThumbnailURL:       "https://cdn.pixiplay.example/thumbs/word-wizards.png",
		},
		{
			Title:              "Kart Critters",
			Description:        "Friendly kart racing across candy-colored tracks.",
			Developer:          "Turbo Tails",
			Publisher:          "Pixel Parade",
			ReleaseYear:        2022,
			PrimaryGenre:       "Racing",
			Genres:             []string{"Racing", "Party"},
			GameplayStyle:      "Multiplayer",
			AverageUserRating:  4.4,
			RatingCount:        2210,
			MetaScore:          79,
			PopularityScore:    87.9,
			ContentSuitability: "Everyone",
			TargetSkills:       []string{"Hand-Eye Coordination"},
			DifficultyLevel:    domain.DifficultyMedium,
			PlatformType:       domain.PlatformConsole,
			Platform:           []string{"Switch", "PS5"},
			ThumbnailURL:       "https://cdn.pixiplay.example/thumbs/kart-critters.png",
		},
		{
			Title:              "Coding Castle",
			Description:        "Drag-and-drop programming quests inside a storybook castle.",
			Developer:          "Logic Loft",
			Publisher:          "Logic Loft",
			ReleaseYear:        2023,
			PrimaryGenre:       "Educational",
			Genres:             []string{"Educational", "Puzzle"},
			GameplayStyle:      "Single-player",
			AverageUserRating:  4.7,
			RatingCount:        1475,
			MetaScore:          85,
			PopularityScore:    89.1,
			ContentSuitability: "Everyone",
			TargetSkills:       []string{"Logic", "Sequencing", "Problem Solving"},
			DifficultyLevel:    domain.DifficultyMedium,
			PlatformType:       domain.PlatformWeb,
			Platform:           []string{"Browser"},
			EmbedURL:           "https://games.pixiplay.example/coding-castle",
			ThumbnailURL:       "https://cdn.pixiplay.example/thumbs/coding-castle.png",
		},
	}
}
