package request

import "recipe-sharing/pkg/utils"

type CreateReviewRequest struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=500"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=500"`
}

// HasChanges reports whether at least one updatable field was supplied.
func (r UpdateReviewRequest) HasChanges() bool {
	return r.Rating != nil || r.Comment != nil
}

type FlagReviewRequest struct {
	FlagReason string `json:"flag_reason" validate:"required,min=10,max=200"`
}

// ListReviewsRequest carries the parsed query parameters for a review listing.
type ListReviewsRequest struct {
	Page  int    `json:"page" validate:"min=1"`
	Limit int    `json:"limit" validate:"min=1,max=100"`
	Sort  string `json:"sort" validate:"oneof=newest oldest highest lowest"`
}

// Normalize clamps out-of-range values back to their documented defaults:
// page >= 1 (default 1), limit in [1,100] (default 20), sort one of
// newest/oldest/highest/lowest (default newest).
func (r *ListReviewsRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 20
	}
	if r.Limit > 100 {
		r.Limit = 100
	}
	switch r.Sort {
	case "newest", "oldest", "highest", "lowest":
	default:
		r.Sort = "newest"
	}
}

func (r ListReviewsRequest) Offset() int {
	return utils.CalculateOffset(r.Page, r.Limit)
}
