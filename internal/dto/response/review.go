package response

import (
	"time"

	"recipe-sharing/internal/data/entity"
)

// ReviewAuthor is the public snapshot of the review's author, joined at read
// time rather than stored on the review row.
type ReviewAuthor struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	ProfilePic *string `json:"profile_pic,omitempty"`
}

type ReviewResponse struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	RecipeID     string        `json:"recipe_id"`
	Rating       int           `json:"rating"`
	Comment      *string       `json:"comment,omitempty"`
	HelpfulCount int           `json:"helpful_count"`
	IsFlagged    bool          `json:"is_flagged"`
	FlagReason   *string       `json:"flag_reason,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	User         *ReviewAuthor `json:"user,omitempty"`
}

// RatingStats aggregates all reviews of one recipe. Distribution always
// carries keys 1 through 5 and its counts sum to TotalReviews.
type RatingStats struct {
	AverageRating float64       `json:"average_rating"`
	TotalReviews  int64         `json:"total_reviews"`
	Distribution  map[int]int64 `json:"rating_distribution"`
}

func ReviewToResponse(review *entity.Review, author *entity.User) ReviewResponse {
	resp := ReviewResponse{
		ID:           review.ID.String(),
		UserID:       review.UserID.String(),
		RecipeID:     review.RecipeID.String(),
		Rating:       review.Rating,
		Comment:      review.Comment,
		HelpfulCount: review.HelpfulCount,
		IsFlagged:    review.IsFlagged,
		FlagReason:   review.FlagReason,
		CreatedAt:    review.CreatedAt,
		UpdatedAt:    review.UpdatedAt,
	}

	if author != nil {
		resp.User = &ReviewAuthor{
			ID:         author.ID.String(),
			Username:   author.Username,
			ProfilePic: author.ProfilePic,
		}
	}

	return resp
}
