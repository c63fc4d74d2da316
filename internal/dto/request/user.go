package request

type UpdateProfileRequest struct {
	Username          *string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email             *string `json:"email,omitempty" validate:"omitempty,email"`
	ProfilePic        *string `json:"profile_pic,omitempty" validate:"omitempty,max=500"`
	Bio               *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
	CookingSkillLevel *string `json:"cooking_skill_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced expert"`
}
