package usecase

import (
	"context"
	"fmt"
	"math"
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

// editWindow is how long after creation the author may still modify a review.
const editWindow = 30 * 24 * time.Hour

type ReviewService interface {
	CreateReview(ctx context.Context, userID, recipeID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetReviewByID(ctx context.Context, reviewID string) (*response.ReviewResponse, error)
	GetRecipeReviews(ctx context.Context, recipeID string, req *request.ListReviewsRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	UpdateReview(ctx context.Context, reviewID, userID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID, userID string) error
	FlagReview(ctx context.Context, reviewID, userID string, req *request.FlagReviewRequest) error

	// Stats
	GetRecipeRatingStats(ctx context.Context, recipeID string) (*response.RatingStats, error)

	// CheckUserReviewExists backs createReview's duplicate fast path; exposed
	// on the interface so the rule is testable on its own.
	CheckUserReviewExists(ctx context.Context, userID, recipeID string) (bool, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID, recipeID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation(utils.FormatValidationErrors(errs))
	}

	// The boundary already validated the shape; re-check the business rule anyway
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.Validation("Rating must be between 1 and 5")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid user ID format %s", userID))
	}

	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid recipe ID format %s", recipeID))
	}

	// Recipe must exist and not be deleted
	recipe, err := s.repo.Recipe.FindByID(ctx, recipeUUID)
	if err != nil {
		s.log.Error("Failed to check recipe", zap.Error(err), zap.String("recipe_id", recipeID))
		return nil, apperrors.Internal("Failed to check recipe", err)
	}
	if recipe == nil {
		return nil, apperrors.NotFound("Recipe not found")
	}

	// Fast-path duplicate check for a friendlier message; the unique index on
	// (user_id, recipe_id) remains the authoritative guard under races.
	exists, err := s.repo.Review.ExistsByUserAndRecipe(ctx, userUUID, recipeUUID)
	if err != nil {
		s.log.Error("Failed to check existing review", zap.Error(err))
		return nil, apperrors.Internal("Failed to check existing review", err)
	}
	if exists {
		return nil, apperrors.Conflict("You have already reviewed this recipe")
	}

	now := time.Now()
	review := &entity.Review{
		ID:        uuid.New(),
		UserID:    userUUID,
		RecipeID:  recipeUUID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if repository.IsUniqueViolation(err) {
			// Lost a race against a concurrent create for the same pair
			return nil, apperrors.Conflict("You have already reviewed this recipe")
		}
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("recipe_id", recipeID),
		)
		return nil, apperrors.Internal("Failed to create review", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", userID),
		zap.String("recipe_id", recipeID),
		zap.Int("rating", req.Rating),
	)

	return s.buildReviewResponse(ctx, review), nil
}

func (s *reviewService) GetReviewByID(ctx context.Context, reviewID string) (*response.ReviewResponse, error) {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid review ID format %s", reviewID))
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		s.log.Error("Failed to get review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, apperrors.Internal("Failed to get review", err)
	}
	if review == nil {
		return nil, apperrors.NotFound("Review not found")
	}

	return s.buildReviewResponse(ctx, review), nil
}

func (s *reviewService) GetRecipeReviews(ctx context.Context, recipeID string, req *request.ListReviewsRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid recipe ID format %s", recipeID))
	}

	req.Normalize()

	// Items and count are two queries; the small staleness window between them
	// is accepted for listings.
	reviews, err := s.repo.Review.FindByRecipeID(ctx, recipeUUID, req.Sort, req.Limit, req.Offset())
	if err != nil {
		s.log.Error("Failed to get recipe reviews",
			zap.Error(err),
			zap.String("recipe_id", recipeID),
			zap.Int("page", req.Page),
			zap.Int("limit", req.Limit),
			zap.String("sort", req.Sort),
		)
		return nil, apperrors.Internal("Failed to get recipe reviews", err)
	}

	total, err := s.repo.Review.CountByRecipeID(ctx, recipeUUID)
	if err != nil {
		s.log.Error("Failed to count recipe reviews", zap.Error(err))
		return nil, apperrors.Internal("Failed to count recipe reviews", err)
	}

	reviewResponses := make([]response.ReviewResponse, len(reviews))
	for i, review := range reviews {
		reviewResponses[i] = *s.buildReviewResponse(ctx, review)
	}

	s.log.Debug("Recipe reviews retrieved",
		zap.String("recipe_id", recipeID),
		zap.Int("count", len(reviews)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
		zap.Int("limit", req.Limit),
		zap.String("sort", req.Sort),
	)

	return response.NewPaginatedResponse(reviewResponses, req.Page, req.Limit, total), nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID, userID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation(utils.FormatValidationErrors(errs))
	}

	if !req.HasChanges() {
		return nil, apperrors.Validation("At least one of rating or comment must be provided")
	}

	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid review ID format %s", reviewID))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid user ID format %s", userID))
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		s.log.Error("Failed to get review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, apperrors.Internal("Failed to get review", err)
	}
	if review == nil {
		return nil, apperrors.NotFound("Review not found")
	}

	// Ownership, then edit window, in that order
	if review.UserID != userUUID {
		return nil, apperrors.Forbidden("You can only update your own reviews")
	}

	if time.Since(review.CreatedAt) > editWindow {
		return nil, apperrors.Forbidden("Reviews can only be edited within 30 days of creation")
	}

	// Merge supplied fields over the existing values
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = req.Comment
	}
	review.UpdatedAt = time.Now()

	if err := s.repo.Review.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return nil, apperrors.Internal("Failed to update review", err)
	}

	s.log.Info("Review updated",
		zap.String("review_id", reviewID),
		zap.String("user_id", userID),
	)

	return s.buildReviewResponse(ctx, review), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID, userID string) error {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return apperrors.Validation(fmt.Sprintf("invalid review ID format %s", reviewID))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return apperrors.Validation(fmt.Sprintf("invalid user ID format %s", userID))
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		s.log.Error("Failed to get review", zap.Error(err), zap.String("review_id", reviewID))
		return apperrors.Internal("Failed to get review", err)
	}
	if review == nil {
		return apperrors.NotFound("Review not found")
	}

	if review.UserID != userUUID {
		return apperrors.Forbidden("You can only delete your own reviews")
	}

	// Deletion is physical, never a soft delete
	if err := s.repo.Review.Delete(ctx, reviewUUID); err != nil {
		s.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return apperrors.Internal("Failed to delete review", err)
	}

	s.log.Info("Review deleted",
		zap.String("review_id", reviewID),
		zap.String("user_id", userID),
		zap.String("recipe_id", review.RecipeID.String()),
	)

	return nil
}

func (s *reviewService) FlagReview(ctx context.Context, reviewID, userID string, req *request.FlagReviewRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Flag review validation failed", zap.Any("errors", errs))
		return apperrors.Validation(utils.FormatValidationErrors(errs))
	}

	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return apperrors.Validation(fmt.Sprintf("invalid review ID format %s", reviewID))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return apperrors.Validation(fmt.Sprintf("invalid user ID format %s", userID))
	}

	review, err := s.repo.Review.FindByID(ctx, reviewUUID)
	if err != nil {
		s.log.Error("Failed to get review", zap.Error(err), zap.String("review_id", reviewID))
		return apperrors.Internal("Failed to get review", err)
	}
	if review == nil {
		return apperrors.NotFound("Review not found")
	}

	if review.UserID == userUUID {
		return apperrors.Conflict("You cannot flag your own review")
	}

	// Flagging is one-way and one-time; a second flag never overwrites the reason
	if review.IsFlagged {
		return apperrors.Conflict("This review has already been flagged")
	}

	review.IsFlagged = true
	review.FlagReason = &req.FlagReason
	review.UpdatedAt = time.Now()

	if err := s.repo.Review.Flag(ctx, review); err != nil {
		s.log.Error("Failed to flag review",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return apperrors.Internal("Failed to flag review", err)
	}

	s.log.Info("Review flagged",
		zap.String("review_id", reviewID),
		zap.String("flagged_by", userID),
	)

	return nil
}

func (s *reviewService) GetRecipeRatingStats(ctx context.Context, recipeID string) (*response.RatingStats, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid recipe ID format %s", recipeID))
	}

	counts, err := s.repo.Review.GetRatingCounts(ctx, recipeUUID)
	if err != nil {
		s.log.Error("Failed to get rating counts",
			zap.Error(err),
			zap.String("recipe_id", recipeID),
		)
		return nil, apperrors.Internal("Failed to get rating stats", err)
	}

	stats := &response.RatingStats{
		Distribution: make(map[int]int64, 5),
	}

	var sum int64
	for rating := 1; rating <= 5; rating++ {
		count := counts[rating]
		stats.Distribution[rating] = count
		stats.TotalReviews += count
		sum += int64(rating) * count
	}

	// Zero reviews is a valid result, not an error
	if stats.TotalReviews == 0 {
		return stats, nil
	}

	avg := float64(sum) / float64(stats.TotalReviews)
	stats.AverageRating = math.Round(avg*10) / 10

	return stats, nil
}

func (s *reviewService) CheckUserReviewExists(ctx context.Context, userID, recipeID string) (bool, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return false, apperrors.Validation(fmt.Sprintf("invalid user ID format %s", userID))
	}

	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return false, apperrors.Validation(fmt.Sprintf("invalid recipe ID format %s", recipeID))
	}

	exists, err := s.repo.Review.ExistsByUserAndRecipe(ctx, userUUID, recipeUUID)
	if err != nil {
		return false, apperrors.Internal("Failed to check existing review", err)
	}

	return exists, nil
}

// ==================== HELPER METHODS ====================

// buildReviewResponse joins the author's public fields into the response at
// read time so client rendering never sees stale denormalized data.
func (s *reviewService) buildReviewResponse(ctx context.Context, review *entity.Review) *response.ReviewResponse {
	author, err := s.repo.User.FindByID(ctx, review.UserID)
	if err != nil {
		s.log.Warn("Failed to load review author",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
		)
		// Review data is still useful without the snapshot
	}

	resp := response.ReviewToResponse(review, author)
	return &resp
}
