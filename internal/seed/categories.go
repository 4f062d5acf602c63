// internal/seed/categories.go
package seed

import "github.com/aigrocery/catalog-backend/internal/models"

// Fixed category sets for the two catalogs. "All" is the identity filter.
var ToolCategories = []string{
	models.CategoryAll,
	"Chatbots",
	"AI Drawing",
	"Video Generation",
	"Video Editing",
	"Audio Generation",
	"AI Programming",
	"Productivity",
	"AI Music",
	"Data Processing",
	"AI Design",
	"PPT Generation",
}

var GameCategories = []string{
	models.CategoryAll,
	"Casual",
	"Adventure",
	"Simulation",
}

// CategoryEmoji maps a category to its display emoji.
func CategoryEmoji(category string) string {
	switch category {
	case "AI Drawing":
		return "🎨"
	case "Audio Generation":
		return "🎵"
	case "Video Generation":
		return "🎬"
	case "Video Editing":
		return "✂️"
	case "AI Programming":
		return "💻"
	case "Productivity":
		return "⚡"
	case "Chatbots":
		return "🤖"
	case "AI Music":
		return "🎹"
	case "Data Processing", "PPT Generation":
		return "📊"
	case "AI Design":
		return "🎭"
	case "Casual":
		return "🎲"
	case "Adventure":
		return "🗺️"
	case "Simulation":
		return "🏠"
	default:
		return "🤖"
	}
}
