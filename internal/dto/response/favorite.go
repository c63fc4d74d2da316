package response

import (
	"time"

	"recipe-sharing/internal/data/entity"
)

type FavoriteResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	RecipeID  string          `json:"recipe_id"`
	Recipe    *RecipeResponse `json:"recipe,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func FavoriteToResponse(favorite *entity.Favorite, recipe *entity.Recipe) FavoriteResponse {
	resp := FavoriteResponse{
		ID:        favorite.ID.String(),
		UserID:    favorite.UserID.String(),
		RecipeID:  favorite.RecipeID.String(),
		CreatedAt: favorite.CreatedAt,
		UpdatedAt: favorite.UpdatedAt,
	}

	if recipe != nil {
		recipeResp := RecipeToResponse(recipe)
		resp.Recipe = &recipeResp
	}

	return resp
}
