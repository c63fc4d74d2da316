package request

type CreateRecipeRequest struct {
	Title           string   `json:"title" validate:"required,min=1,max=200"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Ingredients     []string `json:"ingredients" validate:"required,min=1,dive,required"`
	Instructions    []string `json:"instructions" validate:"required,min=1,dive,required"`
	CuisineType     []string `json:"cuisine_type,omitempty"`
	DifficultyLevel *string  `json:"difficulty_level,omitempty" validate:"omitempty,oneof=easy medium hard"`
	Tags            []string `json:"tags,omitempty"`
	FinalImg        *string  `json:"final_img,omitempty" validate:"omitempty,max=500"`
	PrepTime        *int     `json:"prep_time,omitempty" validate:"omitempty,gte=0"`
	CookTime        *int     `json:"cook_time,omitempty" validate:"omitempty,gte=0"`
}

type UpdateRecipeRequest struct {
	Title           *string  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description     *string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	Ingredients     []string `json:"ingredients,omitempty" validate:"omitempty,min=1,dive,required"`
	Instructions    []string `json:"instructions,omitempty" validate:"omitempty,min=1,dive,required"`
	CuisineType     []string `json:"cuisine_type,omitempty"`
	DifficultyLevel *string  `json:"difficulty_level,omitempty" validate:"omitempty,oneof=easy medium hard"`
	Tags            []string `json:"tags,omitempty"`
	FinalImg        *string  `json:"final_img,omitempty" validate:"omitempty,max=500"`
	PrepTime        *int     `json:"prep_time,omitempty" validate:"omitempty,gte=0"`
	CookTime        *int     `json:"cook_time,omitempty" validate:"omitempty,gte=0"`
}
