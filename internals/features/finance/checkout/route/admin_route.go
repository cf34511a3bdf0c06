// file: internals/features/finance/checkout/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	checkoutcontroller "bootcampku_backend/internals/features/finance/checkout/controller"
)

// CheckoutAdminRoutes: audit log event webhook untuk console staff.
func CheckoutAdminRoutes(r fiber.Router, db *gorm.DB) {
	checkoutcontroller.NewCheckoutEventController(db).RegisterRoutes(r)
}
