// file: internals/features/enrollments/enrollments/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollcontroller "bootcampku_backend/internals/features/enrollments/enrollments/controller"
)

// EnrollmentAdminRoutes: console staff (list hasil reconciliation).
func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	enrollcontroller.NewEnrollmentAdminController(db).RegisterRoutes(r)
}
