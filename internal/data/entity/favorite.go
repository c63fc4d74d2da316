package entity

import (
	"github.com/google/uuid"
)

// Favorite links a user to a recipe they saved. One row per (user, recipe),
// enforced by a unique index.
type Favorite struct {
	Base
	UserID   uuid.UUID `db:"user_id"`
	RecipeID uuid.UUID `db:"recipe_id"`
}
