package repository

import (
	"context"
	"errors"
	"fmt"

	"recipe-sharing/internal/data/entity"
	"recipe-sharing/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// Review sort orders accepted by FindByRecipeID.
const (
	ReviewSortNewest  = "newest"
	ReviewSortOldest  = "oldest"
	ReviewSortHighest = "highest"
	ReviewSortLowest  = "lowest"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByRecipeID(ctx context.Context, recipeID uuid.UUID, sort string, limit, offset int) ([]*entity.Review, error)
	CountByRecipeID(ctx context.Context, recipeID uuid.UUID) (int64, error)
	ExistsByUserAndRecipe(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
	Flag(ctx context.Context, review *entity.Review) error

	// Business queries
	GetRatingCounts(ctx context.Context, recipeID uuid.UUID) (map[int]int64, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, user_id, recipe_id, rating, comment, helpful_count, is_flagged, flag_reason, created_at, updated_at`

func scanReview(row pgx.Row) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.RecipeID,
		&review.Rating,
		&review.Comment,
		&review.HelpfulCount,
		&review.IsFlagged,
		&review.FlagReason,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// IsUniqueViolation reports whether err is a Postgres unique constraint error.
// The (user_id, recipe_id) index is the authoritative duplicate-review guard.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, recipe_id, rating, comment, helpful_count, is_flagged, flag_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.RecipeID,
		review.Rating,
		review.Comment,
		review.HelpfulCount,
		review.IsFlagged,
		review.FlagReason,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		if !IsUniqueViolation(err) {
			r.log.Error("Failed to create review",
				zap.Error(err),
				zap.String("user_id", review.UserID.String()),
				zap.String("recipe_id", review.RecipeID.String()),
			)
		}
		return fmt.Errorf("create review for recipe %s by user %s: %w",
			review.RecipeID.String(), review.UserID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE id = $1
	`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return review, nil
}

// orderClause maps a sort name to a deterministic ORDER BY. Ties always fall
// back to a stable secondary key so repeated calls return identical order.
func orderClause(sort string) string {
	switch sort {
	case ReviewSortOldest:
		return "created_at ASC, id"
	case ReviewSortHighest:
		return "rating DESC, created_at DESC, id"
	case ReviewSortLowest:
		return "rating ASC, created_at DESC, id"
	case ReviewSortNewest:
		return "created_at DESC, id"
	default:
		return "created_at DESC, id"
	}
}

func (r *reviewRepository) FindByRecipeID(ctx context.Context, recipeID uuid.UUID, sort string, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE recipe_id = $1
		ORDER BY ` + orderClause(sort) + `
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, recipeID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reviews by recipe ID",
			zap.Error(err),
			zap.String("recipe_id", recipeID.String()),
			zap.String("sort", sort),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find reviews by recipe ID %s: %w", recipeID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

func (r *reviewRepository) CountByRecipeID(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE recipe_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, recipeID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reviews by recipe ID",
			zap.Error(err),
			zap.String("recipe_id", recipeID.String()),
		)
		return 0, fmt.Errorf("count reviews by recipe ID %s: %w", recipeID.String(), err)
	}

	return count, nil
}

func (r *reviewRepository) ExistsByUserAndRecipe(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE user_id = $1 AND recipe_id = $2)`

	var exists bool
	err := r.db.QueryRow(ctx, query, userID, recipeID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check review existence",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("recipe_id", recipeID.String()),
		)
		return false, fmt.Errorf("check review exists for user %s and recipe %s: %w",
			userID.String(), recipeID.String(), err)
	}

	return exists, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, comment = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.Rating,
		review.Comment,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", review.ID.String())
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", id.String())
	}

	r.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}

func (r *reviewRepository) Flag(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET is_flagged = $2, flag_reason = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.IsFlagged,
		review.FlagReason,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to flag review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("flag review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s not found", review.ID.String())
	}

	return nil
}

func (r *reviewRepository) GetRatingCounts(ctx context.Context, recipeID uuid.UUID) (map[int]int64, error) {
	query := `
		SELECT rating, COUNT(*)
		FROM reviews
		WHERE recipe_id = $1
		GROUP BY rating
	`

	rows, err := r.db.Query(ctx, query, recipeID)
	if err != nil {
		r.log.Error("Failed to get rating counts",
			zap.Error(err),
			zap.String("recipe_id", recipeID.String()),
		)
		return nil, fmt.Errorf("get rating counts for recipe %s: %w", recipeID.String(), err)
	}
	defer rows.Close()

	counts := make(map[int]int64)
	for rows.Next() {
		var rating int
		var count int64
		if err := rows.Scan(&rating, &count); err != nil {
			r.log.Error("Failed to scan rating count row", zap.Error(err))
			return nil, fmt.Errorf("scan rating count row: %w", err)
		}
		counts[rating] = count
	}

	return counts, nil
}
