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

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entity.Favorite) error
	FindByUserAndRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*entity.Favorite, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Favorite, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type favoriteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFavoriteRepository(db database.PgxIface, log *zap.Logger) FavoriteRepository {
	return &favoriteRepository{
		db:  db,
		log: log.With(zap.String("repository", "favorite")),
	}
}

const favoriteColumns = `id, user_id, recipe_id, created_at, updated_at`

func scanFavorite(row pgx.Row) (*entity.Favorite, error) {
	var favorite entity.Favorite
	err := row.Scan(
		&favorite.ID,
		&favorite.UserID,
		&favorite.RecipeID,
		&favorite.CreatedAt,
		&favorite.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	query := `
		INSERT INTO favorites (id, user_id, recipe_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		favorite.ID,
		favorite.UserID,
		favorite.RecipeID,
		favorite.CreatedAt,
		favorite.UpdatedAt,
	)

	if err != nil {
		if !IsUniqueViolation(err) {
			r.log.Error("Failed to create favorite",
				zap.Error(err),
				zap.String("user_id", favorite.UserID.String()),
				zap.String("recipe_id", favorite.RecipeID.String()),
			)
		}
		return fmt.Errorf("create favorite for recipe %s by user %s: %w",
			favorite.RecipeID.String(), favorite.UserID.String(), err)
	}

	return nil
}

func (r *favoriteRepository) FindByUserAndRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*entity.Favorite, error) {
	query := `
		SELECT ` + favoriteColumns + `
		FROM favorites
		WHERE user_id = $1 AND recipe_id = $2
	`

	favorite, err := scanFavorite(r.db.QueryRow(ctx, query, userID, recipeID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find favorite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("recipe_id", recipeID.String()),
		)
		return nil, fmt.Errorf("find favorite for user %s and recipe %s: %w",
			userID.String(), recipeID.String(), err)
	}

	return favorite, nil
}

func (r *favoriteRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Favorite, error) {
	query := `
		SELECT ` + favoriteColumns + `
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find favorites by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find favorites by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var favorites []*entity.Favorite
	for rows.Next() {
		favorite, err := scanFavorite(rows)
		if err != nil {
			r.log.Error("Failed to scan favorite row", zap.Error(err))
			return nil, fmt.Errorf("scan favorite row: %w", err)
		}
		favorites = append(favorites, favorite)
	}

	return favorites, nil
}

func (r *favoriteRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM favorites WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count favorites by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count favorites by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM favorites WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete favorite",
			zap.Error(err),
			zap.String("favorite_id", id.String()),
		)
		return fmt.Errorf("delete favorite %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("favorite %s not found", id.String())
	}

	return nil
}
