// file: internals/features/finance/checkout/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"bootcampku_backend/internals/configs"
	checkoutcontroller "bootcampku_backend/internals/features/finance/checkout/controller"
	"bootcampku_backend/internals/features/finance/checkout/service"
)

// CheckoutPublicRoutes: inisiasi checkout + endpoint webhook provider.
// Keduanya tanpa auth; webhook diverifikasi lewat signature, bukan JWT.
func CheckoutPublicRoutes(r fiber.Router, db *gorm.DB, gw service.Gateway, m service.Mailer) {
	checkoutcontroller.NewCheckoutController(db, gw).RegisterRoutes(r)

	rec := service.NewReconciler(db, m)
	checkoutcontroller.NewWebhookController(rec, configs.StripeWebhookSecret).RegisterRoutes(r)
}
