// file: internals/features/finance/checkout/controller/checkout_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseModel "bootcampku_backend/internals/features/courses/courses/model"
	dto "bootcampku_backend/internals/features/finance/checkout/dto"
	service "bootcampku_backend/internals/features/finance/checkout/service"
)

var validate = validator.New()

/* =======================================================================
   Checkout Session Initiator
   Validasi course + kapasitas, lalu buka session di provider.
   TIDAK ada write lokal di sini — semua state nunggu webhook.
======================================================================= */

type CheckoutController struct {
	DB      *gorm.DB
	Gateway service.Gateway
}

func NewCheckoutController(db *gorm.DB, gw service.Gateway) *CheckoutController {
	return &CheckoutController{DB: db, Gateway: gw}
}

func (h *CheckoutController) RegisterRoutes(r fiber.Router) {
	r.Post("/checkout-sessions", h.CreateCheckoutSession)
}

func (h *CheckoutController) CreateCheckoutSession(c *fiber.Ctx) error {
	var req dto.CreateCheckoutSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required course information")
	}

	unitAmount, err := req.UnitAmount()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Course harus ada & masih ada slot
	var course courseModel.CourseModel
	if err := h.DB.First(
		&course,
		"course_id = ? AND course_deleted_at IS NULL",
		req.CourseID,
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Course not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if course.SpotsRemaining() <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Course is full")
	}

	sess, err := h.Gateway.CreateSession(c.UserContext(), service.CreateSessionInput{
		CourseID:      req.CourseID,
		CourseTitle:   req.CourseTitle,
		UnitAmount:    unitAmount,
		CustomerEmail: req.CustomerInfo.Email,
		StudentName:   req.StudentName(),
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Error creating checkout session")
	}

	return c.JSON(dto.CreateCheckoutSessionResponse{SessionID: sess.ID})
}
