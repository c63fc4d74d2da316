package repository

import (
	"context"
	"fmt"

	"recipe-sharing/internal/data/entity"
	"recipe-sharing/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RecipeRepository interface {
	Create(ctx context.Context, recipe *entity.Recipe) error
	// FindByID returns only non-deleted recipes; absence is (nil, nil).
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Recipe, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, recipe *entity.Recipe) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type recipeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRecipeRepository(db database.PgxIface, log *zap.Logger) RecipeRepository {
	return &recipeRepository{
		db:  db,
		log: log.With(zap.String("repository", "recipe")),
	}
}

const recipeColumns = `id, user_id, title, description, ingredients, instructions, cuisine_type, difficulty_level, tags, final_img, prep_time, cook_time, is_deleted, created_at, updated_at`

func scanRecipe(row pgx.Row) (*entity.Recipe, error) {
	var recipe entity.Recipe
	err := row.Scan(
		&recipe.ID,
		&recipe.UserID,
		&recipe.Title,
		&recipe.Description,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.CuisineType,
		&recipe.DifficultyLevel,
		&recipe.Tags,
		&recipe.FinalImg,
		&recipe.PrepTime,
		&recipe.CookTime,
		&recipe.IsDeleted,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	query := `
		INSERT INTO recipes (id, user_id, title, description, ingredients, instructions, cuisine_type, difficulty_level, tags, final_img, prep_time, cook_time, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.Exec(ctx, query,
		recipe.ID,
		recipe.UserID,
		recipe.Title,
		recipe.Description,
		recipe.Ingredients,
		recipe.Instructions,
		recipe.CuisineType,
		recipe.DifficultyLevel,
		recipe.Tags,
		recipe.FinalImg,
		recipe.PrepTime,
		recipe.CookTime,
		recipe.IsDeleted,
		recipe.CreatedAt,
		recipe.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create recipe",
			zap.Error(err),
			zap.String("user_id", recipe.UserID.String()),
			zap.String("title", recipe.Title),
		)
		return fmt.Errorf("create recipe %q by user %s: %w", recipe.Title, recipe.UserID.String(), err)
	}

	return nil
}

func (r *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	query := `
		SELECT ` + recipeColumns + `
		FROM recipes
		WHERE id = $1 AND is_deleted = false
	`

	recipe, err := scanRecipe(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find recipe by ID",
			zap.Error(err),
			zap.String("recipe_id", id.String()),
		)
		return nil, fmt.Errorf("find recipe by ID %s: %w", id.String(), err)
	}

	return recipe, nil
}

func (r *recipeRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Recipe, error) {
	query := `
		SELECT ` + recipeColumns + `
		FROM recipes
		WHERE is_deleted = false
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list recipes",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*entity.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			r.log.Error("Failed to scan recipe row", zap.Error(err))
			return nil, fmt.Errorf("scan recipe row: %w", err)
		}
		recipes = append(recipes, recipe)
	}

	return recipes, nil
}

func (r *recipeRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM recipes WHERE is_deleted = false`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count recipes", zap.Error(err))
		return 0, fmt.Errorf("count recipes: %w", err)
	}

	return count, nil
}

func (r *recipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	query := `
		UPDATE recipes
		SET title = $2, description = $3, ingredients = $4, instructions = $5, cuisine_type = $6, difficulty_level = $7, tags = $8, final_img = $9, prep_time = $10, cook_time = $11, updated_at = $12
		WHERE id = $1 AND is_deleted = false
	`

	result, err := r.db.Exec(ctx, query,
		recipe.ID,
		recipe.Title,
		recipe.Description,
		recipe.Ingredients,
		recipe.Instructions,
		recipe.CuisineType,
		recipe.DifficultyLevel,
		recipe.Tags,
		recipe.FinalImg,
		recipe.PrepTime,
		recipe.CookTime,
		recipe.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update recipe",
			zap.Error(err),
			zap.String("recipe_id", recipe.ID.String()),
		)
		return fmt.Errorf("update recipe %s: %w", recipe.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("recipe %s not found", recipe.ID.String())
	}

	return nil
}

func (r *recipeRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE recipes
		SET is_deleted = true, updated_at = NOW()
		WHERE id = $1 AND is_deleted = false
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to soft delete recipe",
			zap.Error(err),
			zap.String("recipe_id", id.String()),
		)
		return fmt.Errorf("soft delete recipe %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("recipe %s not found", id.String())
	}

	r.log.Info("Recipe soft deleted", zap.String("recipe_id", id.String()))
	return nil
}
