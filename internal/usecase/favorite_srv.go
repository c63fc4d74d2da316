package usecase

import (
	"context"
	"fmt"
	"time"

	"recipe-sharing/internal/data/entity"
	"recipe-sharing/internal/data/repository"
	"recipe-sharing/internal/dto/request"
	"recipe-sharing/internal/dto/response"
	"recipe-sharing/pkg/apperrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FavoriteService interface {
	AddFavorite(ctx context.Context, userID, recipeID string) (*response.FavoriteResponse, error)
	RemoveFavorite(ctx context.Context, userID, recipeID string) error
	ListFavorites(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FavoriteResponse], error)
}

type favoriteService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFavoriteService(repo *repository.Repository, log *zap.Logger) FavoriteService {
	return &favoriteService{
		repo: repo,
		log:  log.With(zap.String("service", "favorite")),
	}
}

func (s *favoriteService) AddFavorite(ctx context.Context, userID, recipeID string) (*response.FavoriteResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid user ID format %s", userID))
	}

	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid recipe ID format %s", recipeID))
	}

	recipe, err := s.repo.Recipe.FindByID(ctx, recipeUUID)
	if err != nil {
		s.log.Error("Failed to check recipe", zap.Error(err), zap.String("recipe_id", recipeID))
		return nil, apperrors.Internal("Failed to check recipe", err)
	}
	if recipe == nil {
		return nil, apperrors.NotFound("Recipe not found")
	}

	existing, err := s.repo.Favorite.FindByUserAndRecipe(ctx, userUUID, recipeUUID)
	if err != nil {
		s.log.Error("Failed to check existing favorite", zap.Error(err))
		return nil, apperrors.Internal("Failed to check existing favorite", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("Recipe already favorited")
	}

	now := time.Now()
	favorite := &entity.Favorite{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:   userUUID,
		RecipeID: recipeUUID,
	}

	if err := s.repo.Favorite.Create(ctx, favorite); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.Conflict("Recipe already favorited")
		}
		s.log.Error("Failed to add favorite",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("recipe_id", recipeID),
		)
		return nil, apperrors.Internal("Failed to add favorite", err)
	}

	s.log.Info("Favorite added",
		zap.String("favorite_id", favorite.ID.String()),
		zap.String("user_id", userID),
		zap.String("recipe_id", recipeID),
	)

	resp := response.FavoriteToResponse(favorite, recipe)
	return &resp, nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return apperrors.Validation(fmt.Sprintf("invalid user ID format %s", userID))
	}

	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return apperrors.Validation(fmt.Sprintf("invalid recipe ID format %s", recipeID))
	}

	existing, err := s.repo.Favorite.FindByUserAndRecipe(ctx, userUUID, recipeUUID)
	if err != nil {
		s.log.Error("Failed to find favorite", zap.Error(err))
		return apperrors.Internal("Failed to find favorite", err)
	}
	if existing == nil {
		return apperrors.NotFound("Favorite not found")
	}

	if err := s.repo.Favorite.Delete(ctx, existing.ID); err != nil {
		s.log.Error("Failed to remove favorite",
			zap.Error(err),
			zap.String("favorite_id", existing.ID.String()),
		)
		return apperrors.Internal("Failed to remove favorite", err)
	}

	s.log.Info("Favorite removed",
		zap.String("favorite_id", existing.ID.String()),
		zap.String("user_id", userID),
		zap.String("recipe_id", recipeID),
	)

	return nil
}

func (s *favoriteService) ListFavorites(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FavoriteResponse], error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid user ID format %s", userID))
	}

	limit := req.Limit()
	offset := req.Offset()

	favorites, err := s.repo.Favorite.FindByUserID(ctx, userUUID, limit, offset)
	if err != nil {
		s.log.Error("Failed to list favorites",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, apperrors.Internal("Failed to list favorites", err)
	}

	total, err := s.repo.Favorite.CountByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to count favorites", zap.Error(err))
		return nil, apperrors.Internal("Failed to count favorites", err)
	}

	favoriteResponses := make([]response.FavoriteResponse, len(favorites))
	for i, favorite := range favorites {
		// Embedded recipe may be nil if it was deleted after favoriting
		recipe, err := s.repo.Recipe.FindByID(ctx, favorite.RecipeID)
		if err != nil {
			s.log.Warn("Failed to load favorited recipe",
				zap.Error(err),
				zap.String("recipe_id", favorite.RecipeID.String()),
			)
		}
		favoriteResponses[i] = response.FavoriteToResponse(favorite, recipe)
	}

	return response.NewPaginatedResponse(favoriteResponses, req.Page, req.PerPage, total), nil
}
