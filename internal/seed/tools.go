// internal/seed/tools.go
package seed

import (
	"time"

	"github.com/lib/pq"

	"github.com/aigrocery/catalog-backend/internal/models"
)

// Tools returns the static AI tools catalog. IDs are stable and never
// regenerated; seed ratings and visit counts are the starting point that
// overlay values layer on top of.
func Tools() []models.CatalogEntry {
	return []models.CatalogEntry{
		{
			ID:          "1",
			Title:       "ChatGPT",
			Description: "An AI-powered chatbot developed by OpenAI, known for generating human-like text responses based on the input it receives.",
			Category:    "Chatbots",
			Image:       "/images/ai-logos/chatgpt.png",
			ExternalURL: "https://chat.openai.com/",
			Rating:      4.8, TotalRatings: 15632, UsageCount: 345678,
			Features:  pq.StringArray{"Text Generation", "Answering Questions", "Creative Writing", "Code Help"},
			HowToUse:  "Go to chat.openai.com and start typing your questions or prompts in the chat box.",
			UsageTime: "5m",
			CreatedAt: time.Date(2022, 11, 30, 0, 0, 0, 0, time.UTC),
			IsFree:    true,
			Pricing:   "Free tier available, ChatGPT Plus at $20/month",
			Country:   "US",
		},
		{
			ID:          "2",
			Title:       "DALL-E 3",
			Description: "An AI system by OpenAI that creates realistic images and art from natural language descriptions.",
			Category:    "AI Drawing",
			Image:       "/images/ai-logos/dall-e-3.png",
			ExternalURL: "https://openai.com/dall-e-3",
			Rating:      4.7, TotalRatings: 12345, UsageCount: 234567,
			Features:  pq.StringArray{"Image Generation from Text", "Art Creation", "Design Concepts", "Visual Storytelling"},
			HowToUse:  "Describe the image you want in detail, including style, subjects, colors, and composition.",
			UsageTime: "8m",
			CreatedAt: time.Date(2023, 10, 10, 0, 0, 0, 0, time.UTC),
			Pricing:   "Available with ChatGPT Plus ($20/month) or API credits",
			Country:   "US",
		},
		{
			ID:          "3",
			Title:       "Claude",
			Description: "An AI assistant created by Anthropic, designed to be helpful, harmless, and honest, with a focus on safety and beneficial use.",
			Category:    "Chatbots",
			Image:       "/images/ai-logos/claude.svg",
			ExternalURL: "https://claude.ai/",
			Rating:      4.7, TotalRatings: 9876, UsageCount: 198765,
			Features:  pq.StringArray{"Conversation", "Text Analysis", "Content Creation", "Problem Solving"},
			HowToUse:  "Visit claude.ai, sign up for an account, and start chatting by typing your questions or requests.",
			UsageTime: "6m",
			CreatedAt: time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC),
			IsFree:    true,
			Pricing:   "Free tier available, Claude Pro at $20/month",
			Country:   "US",
		},
		{
			ID:          "4",
			Title:       "Midjourney",
			Description: "An independent research lab that produces an AI program that creates images from textual descriptions.",
			Category:    "AI Drawing",
			Image:       "/images/ai-logos/midjourney.png",
			ExternalURL: "https://www.midjourney.com/",
			Rating:      4.6, TotalRatings: 18765, UsageCount: 287654,
			Features:  pq.StringArray{"AI Art Generation", "Creative Imagery", "Concept Visualization", "Style Adaptation"},
			HowToUse:  "Join the Midjourney Discord server, go to a newbies channel, and use the /imagine command followed by your prompt.",
			UsageTime: "10m",
			CreatedAt: time.Date(2022, 7, 12, 0, 0, 0, 0, time.UTC),
			Pricing:   "Basic plan $10/month, Standard plan $30/month, Pro plan $60/month",
			Country:   "US",
		},
		{
			ID:          "5",
			Title:       "GitHub Copilot",
			Description: "An AI pair programmer developed by GitHub and OpenAI that suggests code completions and entire functions in real-time.",
			Category:    "AI Programming",
			Image:       "/images/ai-logos/copilot.svg",
			ExternalURL: "https://github.com/features/copilot",
			Rating:      4.5, TotalRatings: 14532, UsageCount: 176543,
			Features:  pq.StringArray{"Code Completion", "Function Suggestions", "Documentation Help", "Multiple Language Support"},
			HowToUse:  "Install the GitHub Copilot extension in your code editor, then start typing code to see suggestions.",
			UsageTime: "15m",
			CreatedAt: time.Date(2021, 6, 29, 0, 0, 0, 0, time.UTC),
			Pricing:   "$10/month for individuals, $19/user/month for businesses",
			Country:   "US",
		},
		{
			ID:          "6",
			Title:       "Notion AI",
			Description: "A writing assistant integrated into Notion that helps draft, edit, summarize and brainstorm content inside your workspace.",
			Category:    "Productivity",
			Image:       "/images/ai-logos/notion-ai.png",
			ExternalURL: "https://www.notion.so/product/ai",
			Rating:      4.5, TotalRatings: 8934, UsageCount: 145678,
			Features:  pq.StringArray{"Writing Assistance", "Summarization", "Brainstorming", "Translation"},
			HowToUse:  "Press space in any Notion page to invoke the AI assistant and pick an action.",
			UsageTime: "7m",
			CreatedAt: time.Date(2023, 2, 22, 0, 0, 0, 0, time.UTC),
			Pricing:   "$10/member/month added to any Notion plan",
			Country:   "US",
		},
		{
			ID:          "9",
			Title:       "Perplexity AI",
			Description: "An AI-powered answer engine that responds to questions with cited, up-to-date information from the web.",
			Category:    "Productivity",
			Image:       "/images/ai-logos/perplexity.png",
			ExternalURL: "https://www.perplexity.ai/",
			Rating:      4.7, TotalRatings: 7654, UsageCount: 132456,
			Features:  pq.StringArray{"Cited Answers", "Web Search", "Follow-up Questions", "File Analysis"},
			HowToUse:  "Type a question and review the sourced answer; ask follow-ups to drill deeper.",
			UsageTime: "4m",
			CreatedAt: time.Date(2022, 8, 1, 0, 0, 0, 0, time.UTC),
			IsFree:    true,
			Pricing:   "Free tier available, Pro at $20/month",
			Country:   "US",
		},
		{
			ID:          "10",
			Title:       "DeepSeek",
			Description: "An open large language model family strong at coding and reasoning tasks, with free web chat access.",
			Category:    "AI Programming",
			Image:       "/images/ai-logos/deepseek.png",
			ExternalURL: "https://www.deepseek.com/",
			Rating:      4.6, TotalRatings: 5321, UsageCount: 78000,
			Features:  pq.StringArray{"Code Generation", "Reasoning", "Open Weights", "API Access"},
			HowToUse:  "Open the web chat and ask coding or reasoning questions directly.",
			UsageTime: "6m",
			CreatedAt: time.Date(2023, 10, 5, 0, 0, 0, 0, time.UTC),
			IsFree:    true,
			Pricing:   "Free web access, pay-as-you-go API",
			Country:   "CN",
		},
		{
			ID:          "13",
			Title:       "Kimi",
			Description: "A long-context AI assistant by Moonshot AI that reads and summarizes very long documents and web pages.",
			Category:    "Chatbots",
			Image:       "/images/ai-logos/kimi.png",
			ExternalURL: "https://kimi.moonshot.cn/",
			Rating:      4.6, TotalRatings: 4210, UsageCount: 98700,
			Features:  pq.StringArray{"Long Context", "Document Reading", "Web Browsing", "Chinese and English"},
			HowToUse:  "Paste a document or link and ask questions about its content.",
			UsageTime: "5m",
			CreatedAt: time.Date(2023, 8, 28, 0, 0, 0, 0, time.UTC),
			IsFree:    true,
			Pricing:   "Free",
			Country:   "CN",
		},
		{
			ID:          "16",
			Title:       "Beautiful AI",
			Description: "A presentation tool that applies smart design rules to generate polished slide decks automatically.",
			Category:    "PPT Generation",
			Image:       "/images/ai-logos/beautiful-ai.png",
			ExternalURL: "https://www.beautiful.ai/",
			Rating:      4.7, TotalRatings: 6543, UsageCount: 121000,
			Features:  pq.StringArray{"Smart Templates", "Auto Layout", "Team Collaboration", "Brand Control"},
			HowToUse:  "Pick a smart template and add content; layouts adapt as you type.",
			UsageTime: "12m",
			CreatedAt: time.Date(2022, 5, 10, 0, 0, 0, 0, time.UTC),
			Pricing:   "Pro at $12/month, Team at $40/user/month",
			Country:   "US",
		},
		{
			ID:          "23",
			Title:       "CapCut Pro",
			Description: "A video editor with AI-assisted captioning, background removal and effects, popular for short-form content.",
			Category:    "Video Editing",
			Image:       "/images/ai-logos/capcut.png",
			ExternalURL: "https://www.capcut.com/",
			Rating:      4.7, TotalRatings: 11234, UsageCount: 286000,
			Features:  pq.StringArray{"Auto Captions", "Background Removal", "Effects Library", "Multi-platform Export"},
			HowToUse:  "Import clips, apply AI tools from the toolbar, and export in your target aspect ratio.",
			UsageTime: "20m",
			CreatedAt: time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC),
			IsFree:    true,
			Pricing:   "Free tier available, Pro subscription for advanced features",
			Country:   "CN",
		},
	}
}
