package wire

import (
	"recipe-sharing/internal/adaptor"
	"recipe-sharing/internal/data/repository"
	"recipe-sharing/pkg/middleware"
	"recipe-sharing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	favoriteHandler *adaptor.FavoriteHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/users/{userId} - View user profile (public)
	r.Get("/api/users/{userId}", userHandler.GetProfile)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(repo.User, config.JWT, log))

		// PUT /api/users/{userId} - Update own profile
		r.Put("/api/users/{userId}", userHandler.UpdateProfile)

		// DELETE /api/users/{userId} - Delete own account
		r.Delete("/api/users/{userId}", userHandler.DeleteAccount)

		// GET /api/users/{userId}/favorites - List user's favorites
		r.Get("/api/users/{userId}/favorites", favoriteHandler.ListFavorites)
	})
}
