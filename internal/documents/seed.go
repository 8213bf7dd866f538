package documents

import "time"

func seedTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed returns the documents a store starts with when nothing is persisted.
func Seed() []Document {
	return []Document{
		{
			ID:          "1",
			Title:       "Marketing Strategy Q1 2025",
			Type:        TypeDocument,
			Category:    CategoryBusiness,
			Content:     "This comprehensive marketing strategy outlines our approach for Q1 2025, focusing on digital transformation and customer engagement initiatives.",
			CreatedAt:   seedTime("2025-01-15T10:30:00Z"),
			AIGenerated: true,
			Tags:        []string{"marketing", "strategy", "Q1"},
		},
		{
			ID:          "2",
			Title:       "Product Launch Presentation",
			Type:        TypeSlide,
			Category:    CategoryBusiness,
			Content:     "Slide deck for the upcoming product launch event, including market analysis, product features, and go-to-market strategy.",
			CreatedAt:   seedTime("2025-01-14T14:20:00Z"),
			AIGenerated: true,
			Tags:        []string{"product", "launch", "presentation"},
		},
		{
			ID:          "3",
			Title:       "Budget Analysis 2025",
			Type:        TypeSpreadsheet,
			Category:    CategoryBusiness,
			Content:     "Detailed financial analysis and budget projections for the fiscal year 2025, including revenue forecasts and expense breakdowns.",
			CreatedAt:   seedTime("2025-01-13T09:15:00Z"),
			AIGenerated: false,
			Tags:        []string{"budget", "finance", "2025"},
		},
		{
			ID:          "4",
			Title:       "Research Paper: AI in Education",
			Type:        TypeDocument,
			Category:    CategoryAcademic,
			Content:     "Academic research paper exploring the impact of artificial intelligence on modern education systems and learning methodologies.",
			CreatedAt:   seedTime("2025-01-12T16:45:00Z"),
			AIGenerated: true,
			Tags:        []string{"AI", "education", "research"},
		},
		{
			ID:          "5",
			Title:       "Personal Goal Tracker",
			Type:        TypeSpreadsheet,
			Category:    CategoryPersonal,
			Content:     "Personal goal tracking spreadsheet for 2025, including health, career, and personal development objectives.",
			CreatedAt:   seedTime("2025-01-11T11:30:00Z"),
			AIGenerated: false,
			Tags:        []string{"goals", "personal", "tracking"},
		},
	}
}
