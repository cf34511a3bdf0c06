// file: internals/features/courses/courses/controller/course_admin_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bootcampku_backend/internals/features/courses/courses/dto"
	model "bootcampku_backend/internals/features/courses/courses/model"
	helper "bootcampku_backend/internals/helpers"
)

var validate = validator.New()

/* =======================================================================
   Controller (staff console)
======================================================================= */

type CourseAdminController struct {
	DB *gorm.DB
}

func NewCourseAdminController(db *gorm.DB) *CourseAdminController {
	return &CourseAdminController{DB: db}
}

func (h *CourseAdminController) RegisterRoutes(r fiber.Router) {
	gr := r.Group("/courses")
	gr.Get("/", h.ListCourses)      // GET /courses?level=&category=&status=&q=&page=&limit=
	gr.Get("/:id", h.GetByID)       // GET /courses/:id
	gr.Post("/", h.CreateCourse)    // POST /courses
	gr.Put("/:id", h.UpdateCourse)  // PUT /courses/:id (partial)
	gr.Delete("/:id", h.DeleteCourse)
}

/* =======================================================================
   List (filter + pagination) — termasuk course inactive
======================================================================= */

func (h *CourseAdminController) ListCourses(c *fiber.Ctx) error {
	db := h.DB.Model(&model.CourseModel{}).
		Where("course_deleted_at IS NULL")

	if lv := strings.TrimSpace(c.Query("level")); lv != "" {
		db = db.Where("course_level = ?", strings.ToLower(lv))
	}
	if cat := strings.TrimSpace(c.Query("category")); cat != "" {
		db = db.Where("course_category = ?", cat)
	}
	if st := strings.TrimSpace(c.Query("status")); st != "" {
		db = db.Where("course_status = ?", strings.ToLower(st))
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + q + "%"
		db = db.Where("course_title ILIKE ? OR course_description ILIKE ?", like, like)
	}

	page := clampInt(queryInt(c, "page", 1), 1, 1_000_000)
	limit := clampInt(queryInt(c, "limit", 20), 1, 200)
	offset := (page - 1) * limit

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.CourseModel
	if err := db.Order("course_created_at DESC").
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

/* =======================================================================
   Detail
======================================================================= */

func (h *CourseAdminController) GetByID(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m model.CourseModel
	if err := h.DB.First(
		&m,
		"course_id = ? AND course_deleted_at IS NULL",
		id,
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "course not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(dto.FromModelCourse(&m))
}

/* =======================================================================
   Create
======================================================================= */

func (h *CourseAdminController) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var createdBy *string
	if uid, ok := c.Locals("user_id").(string); ok && uid != "" {
		createdBy = &uid
	}

	m := req.ToModel(createdBy)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(dto.FromModelCourse(m))
}

/* =======================================================================
   Update (partial)
======================================================================= */

func (h *CourseAdminController) UpdateCourse(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var m model.CourseModel
	if err := h.DB.First(
		&m,
		"course_id = ? AND course_deleted_at IS NULL",
		id,
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "course not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var patch dto.UpdateCourseRequest
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := patch.Apply(&m); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// Select eksplisit supaya course_enrollments tidak pernah ikut tertulis
	if err := h.DB.Model(&m).
		Select("course_title", "course_description", "course_price",
			"course_max_students", "course_duration", "course_level",
			"course_category", "course_start_date", "course_image_url",
			"course_status", "course_updated_at").
		Updates(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(dto.FromModelCourse(&m))
}

/* =======================================================================
   Delete (soft)
======================================================================= */

func (h *CourseAdminController) DeleteCourse(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	now := time.Now().UTC()
	res := h.DB.Model(&model.CourseModel{}).
		Where("course_id = ? AND course_deleted_at IS NULL", id).
		Updates(map[string]interface{}{
			"course_deleted_at": &now,
			"course_updated_at": now,
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "course not found")
	}

	return helper.Success(c, "Course deleted", fiber.Map{"course_id": id})
}

/* =======================================================================
   Helpers
======================================================================= */

func queryInt(c *fiber.Ctx, key string, def int) int {
	if v := c.Query(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
