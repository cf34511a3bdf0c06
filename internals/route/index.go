// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bootcampku_backend/internals/configs"
	courseroute "bootcampku_backend/internals/features/courses/courses/route"
	enrollroute "bootcampku_backend/internals/features/enrollments/enrollments/route"
	checkoutroute "bootcampku_backend/internals/features/finance/checkout/route"
	checkoutservice "bootcampku_backend/internals/features/finance/checkout/service"
	authroute "bootcampku_backend/internals/features/users/auth/route"
	"bootcampku_backend/internals/helpers/mailer"
	"bootcampku_backend/internals/middlewares/auth"
)

/* =======================================================================
   SETUP SEMUA ROUTE
   /api/public : katalog course (tanpa auth)
   /api        : checkout, webhook provider, status reader, login
   /api/a      : console staff (JWT + role staff/admin)
======================================================================= */

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	gw := checkoutservice.NewStripeGateway(configs.BaseURL)
	sender := mailer.NewSender(configs.SMTPHost, configs.SMTPPort, configs.EmailUser, configs.EmailPassword)

	api := app.Group("/api")

	// ===== PUBLIC =====
	public := api.Group("/public")
	courseroute.CoursePublicRoutes(public, db)

	checkoutroute.CheckoutPublicRoutes(api, db, gw, sender)
	enrollroute.EnrollmentPublicRoutes(api, db, gw)
	authroute.AuthRoutes(api, db)

	// ===== STAFF CONSOLE =====
	admin := api.Group("/a", auth.AuthMiddleware(), auth.RequireStaff())
	courseroute.CourseAdminRoutes(admin, db)
	enrollroute.EnrollmentAdminRoutes(admin, db)
	checkoutroute.CheckoutAdminRoutes(admin, db)
}
