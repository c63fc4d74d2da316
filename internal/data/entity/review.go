package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is one user's rating and commentary on one recipe. A unique index on
// (user_id, recipe_id) guarantees at most one review per pair; the service
// pre-check only exists for a friendlier error message.
type Review struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	RecipeID     uuid.UUID `db:"recipe_id"`
	Rating       int       `db:"rating"` // 1-5
	Comment      *string   `db:"comment"`
	HelpfulCount int       `db:"helpful_count"` // reserved, no operation mutates it yet
	IsFlagged    bool      `db:"is_flagged"`
	FlagReason   *string   `db:"flag_reason"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
