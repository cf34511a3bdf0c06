// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bootcampku_backend/internals/configs"
	dto "bootcampku_backend/internals/features/users/auth/dto"
	model "bootcampku_backend/internals/features/users/auth/model"
	helper "bootcampku_backend/internals/helpers"
	authmw "bootcampku_backend/internals/middlewares/auth"
)

var validate = validator.New()

const tokenTTL = 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (h *AuthController) RegisterRoutes(r fiber.Router) {
	r.Post("/login", h.Login)
}

// POST /auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	err := h.DB.
		Where("LOWER(user_email) = LOWER(?) AND user_is_active = ?", strings.TrimSpace(req.Email), true).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := signStaffToken(&user, configs.JWTSecret)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(tokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.Success(c, "Login berhasil", dto.FromModelUser(&user, token))
}

func signStaffToken(u *model.UserModel, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("missing JWT secret")
	}
	now := time.Now()
	claims := authmw.StaffClaims{
		UserID: u.UserID,
		Email:  u.UserEmail,
		Role:   u.UserRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
