// file: internals/features/users/auth/model/user_model.go
package model

import "time"

/* ================================
   MODEL: users (akun staff console)
================================ */

type UserModel struct {
	UserID string `json:"user_id" gorm:"column:user_id;primaryKey"`

	UserEmail    string `json:"user_email" gorm:"column:user_email;not null;uniqueIndex"`
	UserPassword string `json:"-"          gorm:"column:user_password;not null"` // bcrypt hash
	UserFullName string `json:"user_full_name" gorm:"column:user_full_name;not null"`
	UserRole     string `json:"user_role"  gorm:"column:user_role;not null;default:'staff'"`

	UserIsActive bool `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`

	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;not null"`
	UserUpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;not null"`
}

func (UserModel) TableName() string { return "users" }
