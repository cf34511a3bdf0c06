// file: internals/features/enrollments/enrollments/controller/enrollment_status_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	stripe "github.com/stripe/stripe-go/v81"
	"gorm.io/gorm"

	coursemodel "bootcampku_backend/internals/features/courses/courses/model"
	dto "bootcampku_backend/internals/features/enrollments/enrollments/dto"
	model "bootcampku_backend/internals/features/enrollments/enrollments/model"
	checkout "bootcampku_backend/internals/features/finance/checkout/service"
)

/* =======================================================================
   Status reader untuk halaman sukses frontend.
   Sumber utama: tabel enrollments (ditulis reconciler). Kalau webhook
   belum sampai, fallback baca session langsung dari provider dan jawab
   status "processing" supaya UX tidak stuck.
======================================================================= */

type EnrollmentStatusController struct {
	DB      *gorm.DB
	Gateway checkout.Gateway
}

func NewEnrollmentStatusController(db *gorm.DB, gw checkout.Gateway) *EnrollmentStatusController {
	return &EnrollmentStatusController{DB: db, Gateway: gw}
}

func (h *EnrollmentStatusController) RegisterRoutes(r fiber.Router) {
	r.Get("/enrollment-details", h.GetEnrollmentDetails)
}

// GET /enrollment-details?session_id=cs_xxx
func (h *EnrollmentStatusController) GetEnrollmentDetails(c *fiber.Ctx) error {
	sessionID := strings.TrimSpace(c.Query("session_id"))
	if sessionID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Session ID is required")
	}

	var enr model.EnrollmentModel
	err := h.DB.First(&enr, "enrollment_id = ?", sessionID).Error
	switch {
	case err == nil:
		var course coursemodel.CourseModel
		if e := h.DB.First(&course, "course_id = ?", enr.EnrollmentCourseID).Error; e != nil {
			if errors.Is(e, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Course not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Error fetching enrollment details")
		}
		return c.JSON(dto.FromModelEnrollment(&enr, course.CourseStartDate))

	case errors.Is(err, gorm.ErrRecordNotFound):
		return h.detailsFromProvider(c, sessionID)

	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Error fetching enrollment details")
	}
}

// detailsFromProvider: webhook mungkin belum diproses; session masih bisa
// dibaca dari provider via metadata yang kita echo waktu create.
func (h *EnrollmentStatusController) detailsFromProvider(c *fiber.Ctx, sessionID string) error {
	sess, err := h.Gateway.GetSession(c.UserContext(), sessionID)
	if err != nil {
		// provider tidak kenal session id ≠ provider lagi down
		var sErr *stripe.Error
		if errors.As(err, &sErr) && sErr.Code == stripe.ErrorCodeResourceMissing {
			return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Error fetching enrollment details")
	}

	courseID := sess.Metadata["courseId"]
	if courseID == "" {
		return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
	}

	var course coursemodel.CourseModel
	if err := h.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Enrollment not found")
	}

	return c.JSON(&dto.EnrollmentDetailsResponse{
		CourseName: course.CourseTitle,
		StartDate:  course.CourseStartDate,
		Amount:     float64(sess.AmountTotal) / 100,
		Status:     "processing",
	})
}
