// file: internals/features/users/auth/dto/auth_dto.go
package dto

import model "bootcampku_backend/internals/features/users/auth/model"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginUser struct {
	UserID       string `json:"user_id"`
	UserEmail    string `json:"user_email"`
	UserFullName string `json:"user_full_name"`
	UserRole     string `json:"user_role"`
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

func FromModelUser(m *model.UserModel, token string) *LoginResponse {
	return &LoginResponse{
		Token: token,
		User: LoginUser{
			UserID:       m.UserID,
			UserEmail:    m.UserEmail,
			UserFullName: m.UserFullName,
			UserRole:     m.UserRole,
		},
	}
}
