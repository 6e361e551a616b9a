package auth

import (
	"github.com/go-playground/validator/v10"
)

// LoginForm is the login page form.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// RegisterForm is the registration page form.
type RegisterForm struct {
	Name            string `form:"name" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=8"`
	PasswordConfirm string `form:"password_confirm" validate:"eqfield=Password"`
}

// ForgotPasswordForm requests a reset link.
type ForgotPasswordForm struct {
	Email string `form:"email" validate:"required,email"`
}

// ResetPasswordForm sets a new password with a reset token.
type ResetPasswordForm struct {
	Token           string `form:"token" validate:"required"`
	Password        string `form:"password" validate:"required,min=8"`
	PasswordConfirm string `form:"password_confirm" validate:"eqfield=Password"`
}

var validate = validator.New()

// Validate checks any of the auth forms.
func Validate(form any) error {
	return validate.Struct(form)
}

// Problem turns a validation error into a message for the user.
func Problem(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "Please check the form and try again."
	}
	fe := verrs[0]
	switch {
	case fe.Tag() == "eqfield":
		return "Passwords do not match."
	case fe.Tag() == "min" && fe.Field() == "Password":
		return "Password must be at least 8 characters long."
	case fe.Tag() == "email":
		return "Please enter a valid email address."
	case fe.Field() == "Name":
		return "Please enter your name."
	case fe.Field() == "Email":
		return "Please enter your email address."
	case fe.Field() == "Password":
		return "Please enter your password."
	case fe.Field() == "Token":
		return "This reset link is invalid or has expired."
	default:
		return "Please check the form and try again."
	}
}
