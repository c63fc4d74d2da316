package response

import (
	"time"

	"recipe-sharing/internal/data/entity"
)

type UserResponse struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	ProfilePic        *string   `json:"profile_pic,omitempty"`
	Bio               *string   `json:"bio,omitempty"`
	CookingSkillLevel *string   `json:"cooking_skill_level,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:                user.ID.String(),
		Username:          user.Username,
		Email:             user.Email,
		ProfilePic:        user.ProfilePic,
		Bio:               user.Bio,
		CookingSkillLevel: user.CookingSkillLevel,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}
