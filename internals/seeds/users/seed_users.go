// file: internals/seeds/users/seed_users.go
package users

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	model "bootcampku_backend/internals/features/users/auth/model"
)

type StaffSeed struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// SeedStaffFromJSON membuat akun staff awal dari file JSON.
// Email yang sudah ada di-skip, password selalu di-hash bcrypt.
func SeedStaffFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var seeds []StaffSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	now := time.Now().UTC()
	inserted := 0
	for _, s := range seeds {
		var count int64
		db.Model(&model.UserModel{}).
			Where("LOWER(user_email) = LOWER(?)", s.Email).
			Count(&count)
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk %s: %v", s.Email, err)
			continue
		}

		role := s.Role
		if role == "" {
			role = "staff"
		}
		u := model.UserModel{
			UserID:        uuid.NewString(),
			UserEmail:     s.Email,
			UserPassword:  string(hash),
			UserFullName:  s.FullName,
			UserRole:      role,
			UserIsActive:  true,
			UserCreatedAt: now,
			UserUpdatedAt: now,
		}
		if err := db.Create(&u).Error; err != nil {
			log.Printf("❌ Gagal insert user %s: %v", s.Email, err)
			continue
		}
		inserted++
	}

	log.Printf("✅ Seed staff selesai: %d user baru", inserted)
}
