package usecase

import (
	"context"
	"fmt"
	"time"

	"recipe-sharing/internal/data/repository"
	"recipe-sharing/internal/dto/request"
	"recipe-sharing/internal/dto/response"
	"recipe-sharing/pkg/apperrors"
	"recipe-sharing/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID, requesterID string, req *request.UpdateProfileRequest) (*response.UserResponse, error)
	DeleteAccount(ctx context.Context, userID, requesterID string) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid user ID format %s", userID))
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get user profile", zap.Error(err), zap.String("user_id", userID))
		return nil, apperrors.Internal("Failed to get user profile", err)
	}
	if user == nil || user.IsDeleted {
		return nil, apperrors.NotFound("User not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID, requesterID string, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation(utils.FormatValidationErrors(errs))
	}

	if userID != requesterID {
		return nil, apperrors.Forbidden("You can only update your own profile")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.Validation(fmt.Sprintf("invalid user ID format %s", userID))
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get user", zap.Error(err), zap.String("user_id", userID))
		return nil, apperrors.Internal("Failed to get user", err)
	}
	if user == nil || user.IsDeleted {
		return nil, apperrors.NotFound("User not found")
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.ProfilePic != nil {
		user.ProfilePic = req.ProfilePic
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.CookingSkillLevel != nil {
		user.CookingSkillLevel = req.CookingSkillLevel
	}
	user.UpdatedAt = time.Now()

	if err := s.repo.User.UpdateProfile(ctx, user); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID))
		return nil, apperrors.Internal("Failed to update profile", err)
	}

	s.log.Info("User profile updated", zap.String("user_id", userID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) DeleteAccount(ctx context.Context, userID, requesterID string) error {
	if userID != requesterID {
		return apperrors.Forbidden("You can only delete your own account")
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return apperrors.Validation(fmt.Sprintf("invalid user ID format %s", userID))
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get user", zap.Error(err), zap.String("user_id", userID))
		return apperrors.Internal("Failed to get user", err)
	}
	if user == nil || user.IsDeleted {
		return apperrors.NotFound("User not found")
	}

	if err := s.repo.User.SoftDelete(ctx, userUUID); err != nil {
		s.log.Error("Failed to delete account", zap.Error(err), zap.String("user_id", userID))
		return apperrors.Internal("Failed to delete account", err)
	}

	s.log.Info("User account deleted", zap.String("user_id", userID))
	return nil
}
