package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bootcampku_backend/internals/features/courses/courses/controller"
)

// CourseAdminRoutes: CRUD course untuk console staff
func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCourseAdminController(db)
	ctrl.RegisterRoutes(r)
}
