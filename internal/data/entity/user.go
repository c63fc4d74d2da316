package entity

type User struct {
	Base
	Username          string  `db:"username"`
	Email             string  `db:"email"`
	PasswordHash      string  `db:"password"`
	ProfilePic        *string `db:"profile_pic"`
	Bio               *string `db:"bio"`
	CookingSkillLevel *string `db:"cooking_skill_level"`
	IsDeleted         bool    `db:"is_deleted"`
}
