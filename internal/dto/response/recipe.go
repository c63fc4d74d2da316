package response

import (
	"time"

	"recipe-sharing/internal/data/entity"
)

type RecipeResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description,omitempty"`
	Ingredients     []string  `json:"ingredients"`
	Instructions    []string  `json:"instructions"`
	CuisineType     []string  `json:"cuisine_type,omitempty"`
	DifficultyLevel *string   `json:"difficulty_level,omitempty"`
	Tags            []string  `json:"tags,omitempty"`
	FinalImg        *string   `json:"final_img,omitempty"`
	PrepTime        *int      `json:"prep_time,omitempty"`
	CookTime        *int      `json:"cook_time,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func RecipeToResponse(recipe *entity.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:              recipe.ID.String(),
		UserID:          recipe.UserID.String(),
		Title:           recipe.Title,
		Description:     recipe.Description,
		Ingredients:     recipe.Ingredients,
		Instructions:    recipe.Instructions,
		CuisineType:     recipe.CuisineType,
		DifficultyLevel: recipe.DifficultyLevel,
		Tags:            recipe.Tags,
		FinalImg:        recipe.FinalImg,
		PrepTime:        recipe.PrepTime,
		CookTime:        recipe.CookTime,
		CreatedAt:       recipe.CreatedAt,
		UpdatedAt:       recipe.UpdatedAt,
	}
}
