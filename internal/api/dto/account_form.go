package dto

// SignupForm 注册表单，字段与页面一一对应
type SignupForm struct {
	Username  string `form:"username" validate:"required,max=150"`
	Email     string `form:"email" validate:"required,email"`
	Password1 string `form:"password1" validate:"required,min=6"`
	Password2 string `form:"password2" validate:"required,eqfield=Password1"`
}

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

// PasswordResetForm 发起重置流程的邮箱表单
type PasswordResetForm struct {
	Email string `form:"email" validate:"required,email"`
}

// SetPasswordForm 重置确认页的新密码表单
type SetPasswordForm struct {
	Password1 string `form:"password1" validate:"required,min=6"`
	Password2 string `form:"password2" validate:"required,eqfield=Password1"`
}

// PasswordChangeForm 登录状态下修改密码
type PasswordChangeForm struct {
	OldPassword string `form:"old_password" validate:"required"`
	Password1   string `form:"password1" validate:"required,min=6"`
	Password2   string `form:"password2" validate:"required,eqfield=Password1"`
}
