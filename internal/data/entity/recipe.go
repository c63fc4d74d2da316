package entity

import (
	"github.com/google/uuid"
)

type Recipe struct {
	Base
	UserID          uuid.UUID `db:"user_id"`
	Title           string    `db:"title"`
	Description     *string   `db:"description"`
	Ingredients     []string  `db:"ingredients"`
	Instructions    []string  `db:"instructions"`
	CuisineType     []string  `db:"cuisine_type"`
	DifficultyLevel *string   `db:"difficulty_level"`
	Tags            []string  `db:"tags"`
	FinalImg        *string   `db:"final_img"`
	PrepTime        *int      `db:"prep_time"`
	CookTime        *int      `db:"cook_time"`
	IsDeleted       bool      `db:"is_deleted"`
}
