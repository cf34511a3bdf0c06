// file: internals/features/enrollments/enrollments/controller/enrollment_admin_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	model "bootcampku_backend/internals/features/enrollments/enrollments/model"
)

type EnrollmentAdminController struct {
	DB *gorm.DB
}

func NewEnrollmentAdminController(db *gorm.DB) *EnrollmentAdminController {
	return &EnrollmentAdminController{DB: db}
}

func (h *EnrollmentAdminController) RegisterRoutes(r fiber.Router) {
	gr := r.Group("/enrollments")
	gr.Get("/", h.ListEnrollments) // GET /enrollments?course_id=&email=&page=&limit=
}

func (h *EnrollmentAdminController) ListEnrollments(c *fiber.Ctx) error {
	db := h.DB.Model(&model.EnrollmentModel{})

	if cid := strings.TrimSpace(c.Query("course_id")); cid != "" {
		db = db.Where("enrollment_course_id = ?", cid)
	}
	if email := strings.TrimSpace(c.Query("email")); email != "" {
		db = db.Where("LOWER(enrollment_student_email) = LOWER(?)", email)
	}

	page := clampEnrInt(queryEnrInt(c, "page", 1), 1, 1_000_000)
	limit := clampEnrInt(queryEnrInt(c, "limit", 20), 1, 200)
	offset := (page - 1) * limit

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.EnrollmentModel
	if err := db.Order("enrollment_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"page":  page,
		"limit": limit,
		"total": total,
		"data":  rows,
	})
}

func queryEnrInt(c *fiber.Ctx, key string, def int) int {
	if v := c.Query(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func clampEnrInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
