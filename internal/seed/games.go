// internal/seed/games.go
package seed

import (
	"time"

	"github.com/lib/pq"

	"github.com/aigrocery/catalog-backend/internal/models"
)

// Games returns the static games catalog. Unlike tools, games ship with zero
// ratings and play counts; both starting points are valid and the overlay
// merge must respect them rather than override them.
func Games() []models.CatalogEntry {
	return []models.CatalogEntry{
		{
			ID:          "1",
			Title:       "Light Academia vs Dark Academia",
			Description: "Explore the world of academia styles, choose between the bright and elegant Light Academia and the mysterious Dark Academia.",
			Category:    "Simulation",
			Image:       "/images/games/light-academia-vs-dark-academia.png",
			ExternalURL: "https://bitent.com/html5/light_academia_vs_dark_academia/?key=y8&value=default",
			Features:    pq.StringArray{"Academic Style", "Character Customization", "Story Choices", "Aesthetic Experience"},
			PlayTime:    "5-15 minutes",
			HowToPlay:   "Click and drag to interact with the game, make your choices to explore different academic styles.",
			CreatedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Title:       "TB World",
			Description: "Explore the cute teddy bear world in this warm and fun adventure game. Help teddy bears complete various tasks.",
			Category:    "Adventure",
			Image:       "/images/games/tb-world.png",
			ExternalURL: "https://storage.y8.com/y8-studio/html5/Playgama/tb-world/?key=y8&value=default",
			Features:    pq.StringArray{"Cute Graphics", "Puzzle Elements", "Collection Tasks", "Fun Story"},
			PlayTime:    "5-15 minutes",
			HowToPlay:   "Use arrow keys to move, spacebar to interact. Collect items, solve puzzles, explore the teddy bear world.",
			CreatedAt:   time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Title:       "Decor My Cabin",
			Description: "Design and decorate your dream cabin. Pick furniture, colors and decorations to create a cozy retreat.",
			Category:    "Simulation",
			Image:       "/images/games/decor-my-cabin.png",
			ExternalURL: "https://storage.y8.com/y8-studio/html5/decor_my_cabin/?key=y8&value=default",
			Features:    pq.StringArray{"Interior Design", "Furniture Selection", "Color Matching", "Creative Freedom"},
			PlayTime:    "10-20 minutes",
			HowToPlay:   "Click items to place them, drag to reposition, and combine styles to finish each room.",
			CreatedAt:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "6",
			Title:       "Melon Maker Fruit",
			Description: "Merge matching fruits to grow bigger ones in this relaxing physics puzzle. Aim for the watermelon.",
			Category:    "Casual",
			Image:       "/images/games/melon-maker-fruit.png",
			ExternalURL: "https://storage.y8.com/y8-studio/html5/melon_maker/?key=y8&value=default",
			Features:    pq.StringArray{"Merge Puzzle", "Physics", "Relaxing Pace", "High Score Chase"},
			PlayTime:    "5-15 minutes",
			HowToPlay:   "Drop fruits into the container; two identical fruits merge into the next bigger one.",
			CreatedAt:   time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "7",
			Title:       "Luna and the Magic Maze",
			Description: "Guide Luna through enchanted mazes full of puzzles, hidden paths and magical surprises.",
			Category:    "Adventure",
			Image:       "/images/games/luna-and-the-magic-maze.png",
			ExternalURL: "https://storage.y8.com/y8-studio/html5/luna_magic_maze/?key=y8&value=default",
			Features:    pq.StringArray{"Maze Exploration", "Puzzle Solving", "Magic Theme", "Level Progression"},
			PlayTime:    "10-20 minutes",
			HowToPlay:   "Use arrow keys to navigate the maze, collect keys and avoid traps to reach the exit.",
			CreatedAt:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "9",
			Title:       "Bug Off Adventure",
			Description: "Join a tiny hero on a big journey through gardens and fields, dodging bugs and collecting treasures.",
			Category:    "Adventure",
			Image:       "/images/games/bug-off-adventure.png",
			ExternalURL: "https://storage.y8.com/y8-studio/html5/bug_off_adventure/?key=y8&value=default",
			Features:    pq.StringArray{"Platforming", "Collectibles", "Colorful Worlds", "Simple Controls"},
			PlayTime:    "5-15 minutes",
			HowToPlay:   "Use arrow keys to run and jump; collect treasures while avoiding the bugs.",
			CreatedAt:   time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "22",
			Title:       "City Driver",
			Description: "Experience realistic city driving, follow traffic rules, and complete various driving missions.",
			Category:    "Adventure",
			Image:       "/images/games/city-driver.png",
			ExternalURL: "https://cdn2.addictinggames.com/addictinggames-content/ag-assets/content-items/html5-games/real-city-driver/index.html?key=y8&value=default",
			Features:    pq.StringArray{"Realistic Driving", "Traffic Rules", "Mission System", "Vehicle Selection"},
			PlayTime:    "10-20 minutes",
			HowToPlay:   "Use arrow keys to control the vehicle, follow traffic rules, complete driving missions.",
			CreatedAt:   time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "23",
			Title:       "Ninja Hands",
			Description: "Play as a ninja, use various ninjutsu and weapons to defeat enemies and complete missions.",
			Category:    "Adventure",
			Image:       "/images/games/ninja-hands.png",
			ExternalURL: "https://html5.gamedistribution.com/c8fe12a5e8a742c7b37b67d5b47c8794/?key=y8&value=default",
			Features:    pq.StringArray{"Ninja Theme", "Action Combat", "Skill System", "Level Challenge"},
			PlayTime:    "10-20 minutes",
			HowToPlay:   "Use arrow keys to move, click the screen to use ninjutsu, defeat enemies to complete missions.",
			CreatedAt:   time.Date(2024, 1, 23, 0, 0, 0, 0, time.UTC),
		},
	}
}
