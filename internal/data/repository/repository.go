package repository

import (
	"recipe-sharing/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Recipe   RecipeRepository
	Favorite FavoriteRepository
	Review   ReviewRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Recipe:   NewRecipeRepository(db, log),
		Favorite: NewFavoriteRepository(db, log),
		Review:   NewReviewRepository(db, log),
	}
}
