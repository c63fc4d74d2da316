package wire

import (
	"recipe-sharing/internal/adaptor"
	"recipe-sharing/internal/data/repository"
	"recipe-sharing/pkg/middleware"
	"recipe-sharing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRecipe(
	r chi.Router,
	recipeHandler *adaptor.RecipeHandler,
	favoriteHandler *adaptor.FavoriteHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/recipes - Browse recipes (public)
	r.Get("/api/recipes", recipeHandler.ListRecipes)

	// GET /api/recipes/{recipeId} - View single recipe (public)
	r.Get("/api/recipes/{recipeId}", recipeHandler.GetRecipeByID)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(repo.User, config.JWT, log))

		// POST /api/recipes - Create new recipe
		r.Post("/api/recipes", recipeHandler.CreateRecipe)

		// PUT /api/recipes/{recipeId} - Update recipe (owner only)
		r.Put("/api/recipes/{recipeId}", recipeHandler.UpdateRecipe)

		// DELETE /api/recipes/{recipeId} - Delete recipe (owner only)
		r.Delete("/api/recipes/{recipeId}", recipeHandler.DeleteRecipe)

		// POST /api/recipes/{recipeId}/favorite - Favorite a recipe
		r.Post("/api/recipes/{recipeId}/favorite", favoriteHandler.AddFavorite)

		// DELETE /api/recipes/{recipeId}/favorite - Unfavorite a recipe
		r.Delete("/api/recipes/{recipeId}/favorite", favoriteHandler.RemoveFavorite)
	})
}
