package usecase

import (
	"recipe-sharing/internal/data/repository"
	"recipe-sharing/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Recipe   RecipeService
	Favorite FavoriteService
	Review   ReviewService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		User:     NewUserService(repo, log),
		Recipe:   NewRecipeService(repo, log),
		Favorite: NewFavoriteService(repo, log),
		Review:   NewReviewService(repo, log),
	}
}
