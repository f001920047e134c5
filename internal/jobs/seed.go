package jobs

import (
	"context"

	"github.com/rs/zerolog/log"

	"adipo-server/internal/model"
	"adipo-server/internal/repos"
	"adipo-server/pkg/auth"
)

// EnsureAdmin seeds the single operator account from config.
// An already-present row is left untouched.
func EnsureAdmin(ctx context.Context, r *repos.Repository, username, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if err := r.Users.EnsureAdmin(ctx, username, hash); err != nil {
		return err
	}
	log.Info().Str("username", username).Msg("admin account ensured")
	return nil
}

func strPtr(s string) *string { return &s }

// SeedCatalogIfEmpty loads the sample documentaries and comments when the
// respective tables are empty. Intended for testing/dev convenience.
func SeedCatalogIfEmpty(ctx context.Context, r *repos.Repository) error {
	has, err := r.Documentaries.HasAny(ctx)
	if err != nil {
		return err
	}
	if !has {
		samples := []repos.CreateDocumentaryParams{
			{
				Title:       "Wilderness Untamed",
				Description: "Explore the last remaining wilderness areas on Earth and the challenges they face in the modern world.",
				Category:    model.CategoryNature,
				ImageURL:    "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=500&q=80",
				Rating:      floatPtr(4.5),
				Duration:    strPtr("45 min"),
			},
			{
				Title:       "Urban Echoes",
				Description: "A deep dive into the lives of city dwellers and how urbanization is reshaping human connections.",
				Category:    model.CategorySociety,
				ImageURL:    "https://images.unsplash.com/photo-1518837695005-2083093ee35b?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=500&q=80",
				Rating:      floatPtr(4.2),
				Duration:    strPtr("52 min"),
			},
			{
				Title:       "Mountain Voices",
				Description: "Follow the lives of communities living in the world's highest mountain ranges and their unique cultures.",
				Category:    model.CategoryCulture,
				ImageURL:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=500&q=80",
				Rating:      floatPtr(4.8),
				Duration:    strPtr("38 min"),
			},
		}
		var ids []int64
		for _, p := range samples {
			d, err := r.Documentaries.Create(ctx, p)
			if err != nil {
				return err
			}
			ids = append(ids, d.ID)
		}
		log.Info().Int("count", len(samples)).Msg("seeded sample documentaries as table was empty")

		hasComments, err := r.Comments.HasAny(ctx)
		if err != nil {
			return err
		}
		if !hasComments {
			comments := []repos.CreateCommentParams{
				{
					Author:        "Sarah Johnson",
					Email:         "sarah@example.com",
					Text:          "Wilderness Untamed completely changed my perspective on conservation. The cinematography was breathtaking!",
					DocumentaryID: &ids[0],
				},
				{
					Author:        "Michael Torres",
					Email:         "michael@example.com",
					Text:          "As an urban planner, Urban Echoes resonated deeply with me. Beautifully captures modern city life challenges.",
					DocumentaryID: &ids[1],
				},
			}
			for _, p := range comments {
				if _, err := r.Comments.Create(ctx, p); err != nil {
					return err
				}
			}
			log.Info().Int("count", len(comments)).Msg("seeded sample comments as table was empty")
		}
	}
	return nil
}

func floatPtr(f float64) *float64 { return &f }
