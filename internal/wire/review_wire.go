package wire

import (
	"recipe-sharing/internal/adaptor"
	"recipe-sharing/internal/data/repository"
	"recipe-sharing/pkg/middleware"
	"recipe-sharing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/recipes/{recipeId}/reviews - List recipe reviews (public)
	r.Get("/api/recipes/{recipeId}/reviews", reviewHandler.GetRecipeReviews)

	// GET /api/recipes/{recipeId}/ratings - View rating statistics (public)
	r.Get("/api/recipes/{recipeId}/ratings", reviewHandler.GetRecipeRatingStats)

	// GET /api/reviews/{reviewId} - View single review (public)
	r.Get("/api/reviews/{reviewId}", reviewHandler.GetReviewByID)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(repo.User, config.JWT, log))

		// POST /api/recipes/{recipeId}/reviews - Create review (one per user per recipe)
		r.Post("/api/recipes/{recipeId}/reviews", reviewHandler.CreateReview)

		// PUT /api/reviews/{reviewId} - Update review (owner only, within edit window)
		r.Put("/api/reviews/{reviewId}", reviewHandler.UpdateReview)

		// DELETE /api/reviews/{reviewId} - Delete review (owner only)
		r.Delete("/api/reviews/{reviewId}", reviewHandler.DeleteReview)

		// POST /api/reviews/{reviewId}/flag - Flag someone else's review
		r.Post("/api/reviews/{reviewId}/flag", reviewHandler.FlagReview)
	})
}
