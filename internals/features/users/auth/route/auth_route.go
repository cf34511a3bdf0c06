// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authcontroller "bootcampku_backend/internals/features/users/auth/controller"
	"bootcampku_backend/internals/middlewares"
)

// AuthRoutes: login staff, dibatasi rate limiter khusus login.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	gr := r.Group("/auth", middlewares.LoginRateLimiter())
	authcontroller.NewAuthController(db).RegisterRoutes(gr)
}
