// file: internals/features/enrollments/enrollments/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollcontroller "bootcampku_backend/internals/features/enrollments/enrollments/controller"
	checkout "bootcampku_backend/internals/features/finance/checkout/service"
)

// EnrollmentPublicRoutes: status reader untuk halaman sukses (tanpa auth).
func EnrollmentPublicRoutes(r fiber.Router, db *gorm.DB, gw checkout.Gateway) {
	enrollcontroller.NewEnrollmentStatusController(db, gw).RegisterRoutes(r)
}
