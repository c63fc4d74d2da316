package usecase

import (
	"context"
	"testing"
	"time"

	"recipe-sharing/internal/data/entity"
	"recipe-sharing/internal/data/repository"
	"recipe-sharing/internal/dto/request"
	"recipe-sharing/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ==================== MOCK REPOSITORIES ====================

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByRecipeID(ctx context.Context, recipeID uuid.UUID, sort string, limit, offset int) ([]*entity.Review, error) {
	args := m.Called(ctx, recipeID, sort, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *MockReviewRepository) CountByRecipeID(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepository) ExistsByUserAndRecipe(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) Flag(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) GetRatingCounts(ctx context.Context, recipeID uuid.UUID) (map[int]int64, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]int64), args.Error(1)
}

type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Recipe, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ==================== TEST HELPERS ====================

type reviewTestMocks struct {
	review *MockReviewRepository
	recipe *MockRecipeRepository
	user   *MockUserRepository
}

func newTestReviewService() (ReviewService, *reviewTestMocks) {
	mocks := &reviewTestMocks{
		review: new(MockReviewRepository),
		recipe: new(MockRecipeRepository),
		user:   new(MockUserRepository),
	}

	repo := &repository.Repository{
		Review: mocks.review,
		Recipe: mocks.recipe,
		User:   mocks.user,
	}

	return NewReviewService(repo, zap.NewNop()), mocks
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func testRecipe(id, ownerID uuid.UUID) *entity.Recipe {
	now := time.Now()
	return &entity.Recipe{
		Base: entity.Base{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: ownerID,
		Title:  "Rendang",
	}
}

func testReview(id, userID, recipeID uuid.UUID, rating int, createdAt time.Time) *entity.Review {
	return &entity.Review{
		ID:        id,
		UserID:    userID,
		RecipeID:  recipeID,
		Rating:    rating,
		Comment:   strPtr("Very tasty"),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func testAuthor(id uuid.UUID) *entity.User {
	now := time.Now()
	return &entity.User{
		Base: entity.Base{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username: "cook123",
		Email:    "cook@example.com",
	}
}

// ==================== CREATE ====================

func TestCreateReview_Success(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	userID := uuid.New()
	recipeID := uuid.New()

	mocks.recipe.On("FindByID", ctx, recipeID).Return(testRecipe(recipeID, uuid.New()), nil)
	mocks.review.On("ExistsByUserAndRecipe", ctx, userID, recipeID).Return(false, nil)
	mocks.review.On("Create", ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	mocks.user.On("FindByID", ctx, userID).Return(testAuthor(userID), nil)

	req := &request.CreateReviewRequest{Rating: 4, Comment: strPtr("Great balance of spice")}
	resp, err := service.CreateReview(ctx, userID.String(), recipeID.String(), req)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 4, resp.Rating)
	assert.Equal(t, userID.String(), resp.UserID)
	assert.Equal(t, recipeID.String(), resp.RecipeID)
	assert.False(t, resp.IsFlagged)
	assert.Equal(t, 0, resp.HelpfulCount)
	require.NotNil(t, resp.User)
	assert.Equal(t, "cook123", resp.User.Username)
	mocks.review.AssertExpectations(t)
}

func TestCreateReview_RatingOutOfRange(t *testing.T) {
	service, _ := newTestReviewService()
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1, 100} {
		req := &request.CreateReviewRequest{Rating: rating}
		resp, err := service.CreateReview(ctx, uuid.New().String(), uuid.New().String(), req)

		require.Error(t, err, "rating %d should be rejected", rating)
		assert.Nil(t, resp)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	}
}

func TestCreateReview_RecipeNotFound(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	recipeID := uuid.New()
	mocks.recipe.On("FindByID", ctx, recipeID).Return(nil, nil)

	req := &request.CreateReviewRequest{Rating: 5}
	resp, err := service.CreateReview(ctx, uuid.New().String(), recipeID.String(), req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestCreateReview_Duplicate(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	userID := uuid.New()
	recipeID := uuid.New()

	mocks.recipe.On("FindByID", ctx, recipeID).Return(testRecipe(recipeID, uuid.New()), nil)
	mocks.review.On("ExistsByUserAndRecipe", ctx, userID, recipeID).Return(true, nil)

	req := &request.CreateReviewRequest{Rating: 3}
	resp, err := service.CreateReview(ctx, userID.String(), recipeID.String(), req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	mocks.review.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateReview_DuplicateRace(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	userID := uuid.New()
	recipeID := uuid.New()

	// Existence check passes but the insert loses the race against a
	// concurrent create, surfacing the unique index violation.
	mocks.recipe.On("FindByID", ctx, recipeID).Return(testRecipe(recipeID, uuid.New()), nil)
	mocks.review.On("ExistsByUserAndRecipe", ctx, userID, recipeID).Return(false, nil)
	mocks.review.On("Create", ctx, mock.AnythingOfType("*entity.Review")).
		Return(&pgconn.PgError{Code: "23505"})

	req := &request.CreateReviewRequest{Rating: 3}
	resp, err := service.CreateReview(ctx, userID.String(), recipeID.String(), req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestCreateReview_InvalidUserID(t *testing.T) {
	service, _ := newTestReviewService()

	req := &request.CreateReviewRequest{Rating: 4}
	resp, err := service.CreateReview(context.Background(), "not-a-uuid", uuid.New().String(), req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

// ==================== UPDATE ====================

func TestUpdateReview_Success(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	userID := uuid.New()
	reviewID := uuid.New()
	review := testReview(reviewID, userID, uuid.New(), 3, time.Now().Add(-24*time.Hour))

	mocks.review.On("FindByID", ctx, reviewID).Return(review, nil)
	mocks.review.On("Update", ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	mocks.user.On("FindByID", ctx, userID).Return(testAuthor(userID), nil)

	req := &request.UpdateReviewRequest{Rating: intPtr(5)}
	resp, err := service.UpdateReview(ctx, reviewID.String(), userID.String(), req)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 5, resp.Rating)
	assert.Equal(t, "Very tasty", *resp.Comment)
	mocks.review.AssertExpectations(t)
}

func TestUpdateReview_NotOwner(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	reviewID := uuid.New()
	review := testReview(reviewID, uuid.New(), uuid.New(), 3, time.Now())

	mocks.review.On("FindByID", ctx, reviewID).Return(review, nil)

	req := &request.UpdateReviewRequest{Rating: intPtr(1)}
	resp, err := service.UpdateReview(ctx, reviewID.String(), uuid.New().String(), req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
	mocks.review.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateReview_EditWindowExpired(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	userID := uuid.New()
	reviewID := uuid.New()
	review := testReview(reviewID, userID, uuid.New(), 3, time.Now().Add(-31*24*time.Hour))

	mocks.review.On("FindByID", ctx, reviewID).Return(review, nil)

	req := &request.UpdateReviewRequest{Rating: intPtr(5)}
	resp, err := service.UpdateReview(ctx, reviewID.String(), userID.String(), req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
	mocks.review.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateReview_InsideEditWindow(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	userID := uuid.New()
	reviewID := uuid.New()
	// 29 days old, still editable
	review := testReview(reviewID, userID, uuid.New(), 2, time.Now().Add(-29*24*time.Hour))

	mocks.review.On("FindByID", ctx, reviewID).Return(review, nil)
	mocks.review.On("Update", ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	mocks.user.On("FindByID", ctx, userID).Return(testAuthor(userID), nil)

	req := &request.UpdateReviewRequest{Comment: strPtr("Revised after a second attempt")}
	resp, err := service.UpdateReview(ctx, reviewID.String(), userID.String(), req)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Revised after a second attempt", *resp.Comment)
	assert.Equal(t, 2, resp.Rating)
}

func TestUpdateReview_NotFound(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	reviewID := uuid.New()
	mocks.review.On("FindByID", ctx, reviewID).Return(nil, nil)

	req := &request.UpdateReviewRequest{Rating: intPtr(4)}
	resp, err := service.UpdateReview(ctx, reviewID.String(), uuid.New().String(), req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestUpdateReview_NoChanges(t *testing.T) {
	service, _ := newTestReviewService()

	req := &request.UpdateReviewRequest{}
	resp, err := service.UpdateReview(context.Background(), uuid.New().String(), uuid.New().String(), req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

// ==================== DELETE ====================

func TestDeleteReview_Success(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	userID := uuid.New()
	reviewID := uuid.New()
	// Deletion has no time limit, a 2 year old review is still deletable
	review := testReview(reviewID, userID, uuid.New(), 3, time.Now().Add(-2*365*24*time.Hour))

	mocks.review.On("FindByID", ctx, reviewID).Return(review, nil)
	mocks.review.On("Delete", ctx, reviewID).Return(nil)

	err := service.DeleteReview(ctx, reviewID.String(), userID.String())

	require.NoError(t, err)
	mocks.review.AssertExpectations(t)
}

func TestDeleteReview_NotOwner(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	reviewID := uuid.New()
	review := testReview(reviewID, uuid.New(), uuid.New(), 3, time.Now())

	mocks.review.On("FindByID", ctx, reviewID).Return(review, nil)

	err := service.DeleteReview(ctx, reviewID.String(), uuid.New().String())

	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
	mocks.review.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteReview_NotFound(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	reviewID := uuid.New()
	mocks.review.On("FindByID", ctx, reviewID).Return(nil, nil)

	err := service.DeleteReview(ctx, reviewID.String(), uuid.New().String())

	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

// ==================== FLAG ====================

func TestFlagReview_Success(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	authorID := uuid.New()
	flaggerID := uuid.New()
	reviewID := uuid.New()
	review := testReview(reviewID, authorID, uuid.New(), 1, time.Now())

	mocks.review.On("FindByID", ctx, reviewID).Return(review, nil)
	mocks.review.On("Flag", ctx, mock.MatchedBy(func(r *entity.Review) bool {
		return r.IsFlagged && r.FlagReason != nil && *r.FlagReason == "Contains offensive language"
	})).Return(nil)

	req := &request.FlagReviewRequest{FlagReason: "Contains offensive language"}
	err := service.FlagReview(ctx, reviewID.String(), flaggerID.String(), req)

	require.NoError(t, err)
	mocks.review.AssertExpectations(t)
}

func TestFlagReview_OwnReview(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	authorID := uuid.New()
	reviewID := uuid.New()
	review := testReview(reviewID, authorID, uuid.New(), 1, time.Now())

	mocks.review.On("FindByID", ctx, reviewID).Return(review, nil)

	req := &request.FlagReviewRequest{FlagReason: "Trying to remove my own review"}
	err := service.FlagReview(ctx, reviewID.String(), authorID.String(), req)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	mocks.review.AssertNotCalled(t, "Flag", mock.Anything, mock.Anything)
}

func TestFlagReview_AlreadyFlagged(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	reviewID := uuid.New()
	review := testReview(reviewID, uuid.New(), uuid.New(), 1, time.Now())
	review.IsFlagged = true
	review.FlagReason = strPtr("Spam advertising a restaurant")

	mocks.review.On("FindByID", ctx, reviewID).Return(review, nil)

	req := &request.FlagReviewRequest{FlagReason: "Second flag with a new reason"}
	err := service.FlagReview(ctx, reviewID.String(), uuid.New().String(), req)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	// The original reason is never overwritten
	assert.Equal(t, "Spam advertising a restaurant", *review.FlagReason)
	mocks.review.AssertNotCalled(t, "Flag", mock.Anything, mock.Anything)
}

func TestFlagReview_ReasonTooShort(t *testing.T) {
	service, _ := newTestReviewService()

	req := &request.FlagReviewRequest{FlagReason: "spam"}
	err := service.FlagReview(context.Background(), uuid.New().String(), uuid.New().String(), req)

	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

// ==================== RATING STATS ====================

func TestGetRecipeRatingStats_NoReviews(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	recipeID := uuid.New()
	mocks.review.On("GetRatingCounts", ctx, recipeID).Return(map[int]int64{}, nil)

	stats, err := service.GetRecipeRatingStats(ctx, recipeID.String())

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, float64(0), stats.AverageRating)
	assert.Equal(t, int64(0), stats.TotalReviews)
	// Distribution always carries all five buckets
	for rating := 1; rating <= 5; rating++ {
		count, ok := stats.Distribution[rating]
		assert.True(t, ok, "bucket %d missing", rating)
		assert.Equal(t, int64(0), count)
	}
}

func TestGetRecipeRatingStats_Average(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	recipeID := uuid.New()
	// Ratings 5, 5, 4, 3 -> mean 4.25 -> rounded to 4.3
	mocks.review.On("GetRatingCounts", ctx, recipeID).Return(map[int]int64{
		3: 1,
		4: 1,
		5: 2,
	}, nil)

	stats, err := service.GetRecipeRatingStats(ctx, recipeID.String())

	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 4.3, stats.AverageRating)
	assert.Equal(t, int64(4), stats.TotalReviews)
	assert.Equal(t, int64(0), stats.Distribution[1])
	assert.Equal(t, int64(0), stats.Distribution[2])
	assert.Equal(t, int64(1), stats.Distribution[3])
	assert.Equal(t, int64(1), stats.Distribution[4])
	assert.Equal(t, int64(2), stats.Distribution[5])
}

func TestGetRecipeRatingStats_SingleBucket(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	recipeID := uuid.New()
	mocks.review.On("GetRatingCounts", ctx, recipeID).Return(map[int]int64{2: 3}, nil)

	stats, err := service.GetRecipeRatingStats(ctx, recipeID.String())

	require.NoError(t, err)
	assert.Equal(t, 2.0, stats.AverageRating)
	assert.Equal(t, int64(3), stats.TotalReviews)
}

// ==================== LISTING ====================

func TestGetRecipeReviews_Pagination(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	recipeID := uuid.New()
	userID := uuid.New()
	reviews := []*entity.Review{
		testReview(uuid.New(), userID, recipeID, 5, time.Now()),
		testReview(uuid.New(), userID, recipeID, 4, time.Now().Add(-time.Hour)),
	}

	mocks.review.On("FindByRecipeID", ctx, recipeID, "newest", 2, 2).Return(reviews, nil)
	mocks.review.On("CountByRecipeID", ctx, recipeID).Return(int64(7), nil)
	mocks.user.On("FindByID", ctx, userID).Return(testAuthor(userID), nil)

	req := &request.ListReviewsRequest{Page: 2, Limit: 2, Sort: "newest"}
	resp, err := service.GetRecipeReviews(ctx, recipeID.String(), req)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(7), resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 2, resp.Pagination.PerPage)
	assert.Equal(t, 4, resp.Pagination.TotalPages)
}

func TestGetRecipeReviews_DefaultsApplied(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	recipeID := uuid.New()

	// Out-of-range values fall back to page 1, limit 20, sort newest
	mocks.review.On("FindByRecipeID", ctx, recipeID, "newest", 20, 0).
		Return([]*entity.Review{}, nil)
	mocks.review.On("CountByRecipeID", ctx, recipeID).Return(int64(0), nil)

	req := &request.ListReviewsRequest{Page: -3, Limit: 0, Sort: "banana"}
	resp, err := service.GetRecipeReviews(ctx, recipeID.String(), req)

	require.NoError(t, err)
	assert.Empty(t, resp.Data)
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, 20, resp.Pagination.PerPage)
	mocks.review.AssertExpectations(t)
}

// ==================== EXISTENCE CHECK ====================

func TestCheckUserReviewExists(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	userID := uuid.New()
	recipeID := uuid.New()

	mocks.review.On("ExistsByUserAndRecipe", ctx, userID, recipeID).Return(true, nil)

	exists, err := service.CheckUserReviewExists(ctx, userID.String(), recipeID.String())

	require.NoError(t, err)
	assert.True(t, exists)
}

// ==================== GET BY ID ====================

func TestGetReviewByID_AuthorJoined(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	userID := uuid.New()
	reviewID := uuid.New()
	review := testReview(reviewID, userID, uuid.New(), 4, time.Now())

	mocks.review.On("FindByID", ctx, reviewID).Return(review, nil)
	mocks.user.On("FindByID", ctx, userID).Return(testAuthor(userID), nil)

	resp, err := service.GetReviewByID(ctx, reviewID.String())

	require.NoError(t, err)
	require.NotNil(t, resp.User)
	assert.Equal(t, "cook123", resp.User.Username)
	assert.Equal(t, userID.String(), resp.User.ID)
}

func TestGetReviewByID_AuthorLoadFailureTolerated(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	userID := uuid.New()
	reviewID := uuid.New()
	review := testReview(reviewID, userID, uuid.New(), 4, time.Now())

	mocks.review.On("FindByID", ctx, reviewID).Return(review, nil)
	mocks.user.On("FindByID", ctx, userID).Return(nil, assert.AnError)

	resp, err := service.GetReviewByID(ctx, reviewID.String())

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Nil(t, resp.User)
	assert.Equal(t, 4, resp.Rating)
}

func TestGetReviewByID_NotFound(t *testing.T) {
	service, mocks := newTestReviewService()
	ctx := context.Background()

	reviewID := uuid.New()
	mocks.review.On("FindByID", ctx, reviewID).Return(nil, nil)

	resp, err := service.GetReviewByID(ctx, reviewID.String())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
