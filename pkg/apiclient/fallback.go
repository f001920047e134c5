package apiclient

import (
	"time"

	"adipo-server/internal/model"
)

func strPtr(s string) *string { return &s }

// SampleDocumentaries is the hardcoded dataset shown when the real data
// source is unreachable or slow. Mirrors the seeded catalog so degraded
// and live views look alike.
func SampleDocumentaries() []model.Documentary {
	base := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	return []model.Documentary{
		{
			ID:          1,
			Title:       "Wilderness Untamed",
			Description: "Explore the last remaining wilderness areas on Earth and the challenges they face in the modern world.",
			Category:    model.CategoryNature,
			ImageURL:    "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=500&q=80",
			Rating:      4.5,
			Downloads:   1247,
			Duration:    strPtr("45 min"),
			DateAdded:   base,
		},
		{
			ID:          2,
			Title:       "Urban Echoes",
			Description: "A deep dive into the lives of city dwellers and how urbanization is reshaping human connections.",
			Category:    model.CategorySociety,
			ImageURL:    "https://images.unsplash.com/photo-1518837695005-2083093ee35b?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=500&q=80",
			Rating:      4.2,
			Downloads:   892,
			Duration:    strPtr("52 min"),
			DateAdded:   base.Add(-24 * time.Hour),
		},
		{
			ID:          3,
			Title:       "Mountain Voices",
			Description: "Follow the lives of communities living in the world's highest mountain ranges and their unique cultures.",
			Category:    model.CategoryCulture,
			ImageURL:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=500&q=80",
			Rating:      4.8,
			Downloads:   1563,
			Duration:    strPtr("38 min"),
			DateAdded:   base.Add(-48 * time.Hour),
		},
	}
}

func int64Ptr(n int64) *int64 { return &n }

// SampleComments pairs with SampleDocumentaries.
func SampleComments() []model.Comment {
	base := time.Date(2024, time.January, 16, 9, 30, 0, 0, time.UTC)
	return []model.Comment{
		{
			ID:            1,
			Author:        "Sarah Johnson",
			Email:         "sarah@example.com",
			Text:          "Wilderness Untamed completely changed my perspective on conservation. The cinematography was breathtaking!",
			Status:        model.StatusApproved,
			DocumentaryID: int64Ptr(1),
			DateAdded:     base,
		},
		{
			ID:            2,
			Author:        "Michael Torres",
			Email:         "michael@example.com",
			Text:          "As an urban planner, Urban Echoes resonated deeply with me. Beautifully captures modern city life challenges.",
			Status:        model.StatusApproved,
			DocumentaryID: int64Ptr(2),
			DateAdded:     base.Add(-3 * time.Hour),
		},
	}
}
