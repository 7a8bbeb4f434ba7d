package user

type CreateUserInput struct {
	Username string  `form:"username" json:"username" binding:"required,min=3,max=50"`
	Password string  `form:"password" json:"password" binding:"required,min=6"`
	Email    *string `form:"email" json:"email" binding:"omitempty,email"`
	FullName *string `form:"full_name" json:"full_name"`
}

type UpdateUserInput struct {
	OldPassword *string `form:"old_password" json:"old_password"`
	Password    *string `form:"password" json:"password" binding:"omitempty,min=6"`
	Email       *string `form:"email" json:"email" binding:"omitempty,email"`
	FullName    *string `form:"full_name" json:"full_name"`
	Role        *string `form:"role" json:"role" binding:"omitempty,oneof=client admin"`
	Status      *string `form:"status" json:"status" binding:"omitempty,oneof=active disabled"`
}

type ForgotPasswordInput struct {
	Username    string `form:"username" json:"username" binding:"required"`
	NewPassword string `form:"new_password" json:"new_password" binding:"required,min=6"`
}
