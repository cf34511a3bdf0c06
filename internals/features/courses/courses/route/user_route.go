package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bootcampku_backend/internals/features/courses/courses/controller"
)

// CoursePublicRoutes: katalog publik (tanpa auth)
func CoursePublicRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCourseUserController(db)
	ctrl.RegisterRoutes(r)
}
