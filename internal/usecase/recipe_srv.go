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
	"recipe-sharing/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RecipeService interface {
	CreateRecipe(ctx context.Context, userID string, req *request.CreateRecipeRequest) (*response.RecipeResponse, error)
	GetRecipeByID(ctx context.Context, recipeID string) (*response.RecipeResponse, error)
	ListRecipes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RecipeResponse], error)
	UpdateRecipe(ctx context.Context, recipeID, userID string, req *request.UpdateRecipeRequest) (*response.RecipeResponse, error)
	DeleteRecipe(ctx context.Context, recipeID, userID string) error
}

type recipeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRecipeService(repo *repository.Repository, log *zap.Logger) RecipeService {
	return &recipeService{
		repo: repo,
		log:  log.With(zap.String("service", "recipe")),
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, userID string, req *request.CreateRecipeRequest) (*response.RecipeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create recipe validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation(utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid user ID format %s", userID))
	}

	now := time.Now()
	recipe := &entity.Recipe{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:          userUUID,
		Title:           req.Title,
		Description:     req.Description,
		Ingredients:     req.Ingredients,
		Instructions:    req.Instructions,
		CuisineType:     req.CuisineType,
		DifficultyLevel: req.DifficultyLevel,
		Tags:            req.Tags,
		FinalImg:        req.FinalImg,
		PrepTime:        req.PrepTime,
		CookTime:        req.CookTime,
	}

	if err := s.repo.Recipe.Create(ctx, recipe); err != nil {
		s.log.Error("Failed to create recipe", zap.Error(err), zap.String("user_id", userID))
		return nil, apperrors.Internal("Failed to create recipe", err)
	}

	s.log.Info("Recipe created",
		zap.String("recipe_id", recipe.ID.String()),
		zap.String("user_id", userID),
		zap.String("title", req.Title),
	)

	resp := response.RecipeToResponse(recipe)
	return &resp, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, recipeID string) (*response.RecipeResponse, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid recipe ID format %s", recipeID))
	}

	recipe, err := s.repo.Recipe.FindByID(ctx, recipeUUID)
	if err != nil {
		s.log.Error("Failed to get recipe", zap.Error(err), zap.String("recipe_id", recipeID))
		return nil, apperrors.Internal("Failed to get recipe", err)
	}
	if recipe == nil {
		return nil, apperrors.NotFound("Recipe not found")
	}

	resp := response.RecipeToResponse(recipe)
	return &resp, nil
}

func (s *recipeService) ListRecipes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RecipeResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	recipes, err := s.repo.Recipe.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to list recipes",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, apperrors.Internal("Failed to list recipes", err)
	}

	total, err := s.repo.Recipe.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count recipes", zap.Error(err))
		return nil, apperrors.Internal("Failed to count recipes", err)
	}

	recipeResponses := make([]response.RecipeResponse, len(recipes))
	for i, recipe := range recipes {
		recipeResponses[i] = response.RecipeToResponse(recipe)
	}

	return response.NewPaginatedResponse(recipeResponses, req.Page, req.PerPage, total), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID, userID string, req *request.UpdateRecipeRequest) (*response.RecipeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update recipe validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation(utils.FormatValidationErrors(errs))
	}

	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid recipe ID format %s", recipeID))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid user ID format %s", userID))
	}

	recipe, err := s.repo.Recipe.FindByID(ctx, recipeUUID)
	if err != nil {
		s.log.Error("Failed to get recipe", zap.Error(err), zap.String("recipe_id", recipeID))
		return nil, apperrors.Internal("Failed to get recipe", err)
	}
	if recipe == nil {
		return nil, apperrors.NotFound("Recipe not found")
	}

	if recipe.UserID != userUUID {
		return nil, apperrors.Forbidden("You are not allowed to update this recipe")
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.Description != nil {
		recipe.Description = req.Description
	}
	if req.Ingredients != nil {
		recipe.Ingredients = req.Ingredients
	}
	if req.Instructions != nil {
		recipe.Instructions = req.Instructions
	}
	if req.CuisineType != nil {
		recipe.CuisineType = req.CuisineType
	}
	if req.DifficultyLevel != nil {
		recipe.DifficultyLevel = req.DifficultyLevel
	}
	if req.Tags != nil {
		recipe.Tags = req.Tags
	}
	if req.FinalImg != nil {
		recipe.FinalImg = req.FinalImg
	}
	if req.PrepTime != nil {
		recipe.PrepTime = req.PrepTime
	}
	if req.CookTime != nil {
		recipe.CookTime = req.CookTime
	}
	recipe.UpdatedAt = time.Now()

	if err := s.repo.Recipe.Update(ctx, recipe); err != nil {
		s.log.Error("Failed to update recipe", zap.Error(err), zap.String("recipe_id", recipeID))
		return nil, apperrors.Internal("Failed to update recipe", err)
	}

	s.log.Info("Recipe updated",
		zap.String("recipe_id", recipeID),
		zap.String("user_id", userID),
	)

	resp := response.RecipeToResponse(recipe)
	return &resp, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID, userID string) error {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return apperrors.Validation(fmt.Sprintf("invalid recipe ID format %s", recipeID))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return apperrors.Validation(fmt.Sprintf("invalid user ID format %s", userID))
	}

	recipe, err := s.repo.Recipe.FindByID(ctx, recipeUUID)
	if err != nil {
		s.log.Error("Failed to get recipe", zap.Error(err), zap.String("recipe_id", recipeID))
		return apperrors.Internal("Failed to get recipe", err)
	}
	if recipe == nil {
		return apperrors.NotFound("Recipe not found")
	}

	if recipe.UserID != userUUID {
		return apperrors.Forbidden("You are not allowed to delete this recipe")
	}

	// Recipes are soft deleted so existing reviews keep a valid reference
	if err := s.repo.Recipe.SoftDelete(ctx, recipeUUID); err != nil {
		s.log.Error("Failed to delete recipe", zap.Error(err), zap.String("recipe_id", recipeID))
		return apperrors.Internal("Failed to delete recipe", err)
	}

	s.log.Info("Recipe deleted",
		zap.String("recipe_id", recipeID),
		zap.String("user_id", userID),
	)

	return nil
}
