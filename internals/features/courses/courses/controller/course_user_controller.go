// file: internals/features/courses/courses/controller/course_user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bootcampku_backend/internals/features/courses/courses/dto"
	model "bootcampku_backend/internals/features/courses/courses/model"
)

/* =======================================================================
   Controller (katalog publik) — hanya course active
======================================================================= */

type CourseUserController struct {
	DB *gorm.DB
}

func NewCourseUserController(db *gorm.DB) *CourseUserController {
	return &CourseUserController{DB: db}
}

func (h *CourseUserController) RegisterRoutes(r fiber.Router) {
	gr := r.Group("/courses")
	gr.Get("/", h.ListCourses) // GET /courses?level=&category=&q=&page=&limit=
	gr.Get("/:id", h.GetByID)
}

func (h *CourseUserController) ListCourses(c *fiber.Ctx) error {
	db := h.DB.Model(&model.CourseModel{}).
		Where("course_deleted_at IS NULL AND course_status = ?", model.CourseStatusActive)

	if lv := strings.TrimSpace(c.Query("level")); lv != "" {
		db = db.Where("course_level = ?", strings.ToLower(lv))
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		db = db.Where("course_category = ?", cat)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		db = db.Where("course_title ILIKE ? OR course_description ILIKE ?", like, like)
	}

	page := clampInt(queryInt(c, "page", 1), 1, 1_000_000)
	limit := clampInt(queryInt(c, "limit", 20), 1, 100)
	offset := (page - 1) * limit

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.CourseModel
	if err := db.Order("course_start_date ASC, course_created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]*dto.CourseResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromModelCourse(&rows[i]))
	}

	return c.JSON(fiber.Map{
		"page":  page,
		"limit": limit,
		"total": total,
		"data":  out,
	})
}

func (h *CourseUserController) GetByID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m model.CourseModel
	if err := h.DB.First(
		&m,
		"course_id = ? AND course_deleted_at IS NULL AND course_status = ?",
		id, model.CourseStatusActive,
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "course not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(dto.FromModelCourse(&m))
}
