// file: internals/features/courses/courses/controller/course_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "bootcampku_backend/internals/features/courses/courses/model"
)

func setupCourseDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.CourseModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCourseRow(t *testing.T, db *gorm.DB, id string, status model.CourseStatus, enrollments int) {
	t.Helper()
	now := time.Now().UTC()
	c := model.CourseModel{
		CourseID:          id,
		CourseTitle:       "Course " + id,
		CoursePrice:       "99.00",
		CourseMaxStudents: "25",
		CourseLevel:       model.CourseLevelBeginner,
		CourseStartDate:   "2026-09-15",
		CourseEnrollments: enrollments,
		CourseStatus:      status,
		CourseCreatedAt:   now,
		CourseUpdatedAt:   now,
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
}

func doReq(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out
}

/* =======================================================================
   Public catalog
======================================================================= */

func TestPublicListOnlyActiveCourses(t *testing.T) {
	db := setupCourseDB(t)
	seedCourseRow(t, db, "c-active", model.CourseStatusActive, 0)
	seedCourseRow(t, db, "c-inactive", model.CourseStatusInactive, 0)

	app := fiber.New()
	NewCourseUserController(db).RegisterRoutes(app)

	status, raw := doReq(t, app, "GET", "/courses/", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d (%s)", status, raw)
	}

	var body struct {
		Total int64                    `json:"total"`
		Data  []map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Total != 1 || len(body.Data) != 1 {
		t.Fatalf("total = %d, rows = %d, want 1 active only", body.Total, len(body.Data))
	}
	if body.Data[0]["course_id"] != "c-active" {
		t.Errorf("row = %v", body.Data[0])
	}
	if body.Data[0]["spots_remaining"] != float64(25) {
		t.Errorf("spots_remaining = %v, want 25", body.Data[0]["spots_remaining"])
	}
}

func TestPublicGetHidesInactiveAndDeleted(t *testing.T) {
	db := setupCourseDB(t)
	seedCourseRow(t, db, "c-inactive", model.CourseStatusInactive, 0)
	seedCourseRow(t, db, "c-deleted", model.CourseStatusActive, 0)
	now := time.Now().UTC()
	db.Model(&model.CourseModel{}).Where("course_id = ?", "c-deleted").
		Update("course_deleted_at", &now)

	app := fiber.New()
	NewCourseUserController(db).RegisterRoutes(app)

	if status, _ := doReq(t, app, "GET", "/courses/c-inactive", nil); status != fiber.StatusNotFound {
		t.Errorf("inactive course status = %d, want 404", status)
	}
	if status, _ := doReq(t, app, "GET", "/courses/c-deleted", nil); status != fiber.StatusNotFound {
		t.Errorf("deleted course status = %d, want 404", status)
	}
}

/* =======================================================================
   Staff console
======================================================================= */

func newAdminApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	NewCourseAdminController(db).RegisterRoutes(app)
	return app
}

func TestAdminCreateCourse(t *testing.T) {
	db := setupCourseDB(t)
	app := newAdminApp(db)

	status, raw := doReq(t, app, "POST", "/courses/", map[string]interface{}{
		"course_title":        "Digital Skills for Beginners",
		"course_description":  "Intro course",
		"course_price":        "45.50",
		"course_max_students": "16",
		"course_level":        "beginner",
		"course_start_date":   "2026-11-02",
	})
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d (%s)", status, raw)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["course_id"] == "" || body["course_id"] == nil {
		t.Errorf("missing course_id in %v", body)
	}
	if body["course_enrollments"] != float64(0) {
		t.Errorf("new course enrollments = %v, want 0", body["course_enrollments"])
	}

	var count int64
	db.Model(&model.CourseModel{}).Count(&count)
	if count != 1 {
		t.Fatalf("courses = %d, want 1", count)
	}
}

func TestAdminCreateCourseRejectsBadInput(t *testing.T) {
	db := setupCourseDB(t)
	app := newAdminApp(db)

	cases := []map[string]interface{}{
		{ // tanpa title
			"course_price": "10", "course_max_students": "5",
		},
		{ // harga bukan angka
			"course_title": "X Course", "course_price": "free", "course_max_students": "5",
		},
		{ // kapasitas negatif
			"course_title": "X Course", "course_price": "10", "course_max_students": "-1",
		},
		{ // level tidak dikenal
			"course_title": "X Course", "course_price": "10", "course_max_students": "5",
			"course_level": "expert",
		},
		{ // tanggal bukan YYYY-MM-DD
			"course_title": "X Course", "course_price": "10", "course_max_students": "5",
			"course_start_date": "02/11/2026",
		},
	}
	for i, payload := range cases {
		if status, _ := doReq(t, app, "POST", "/courses/", payload); status != fiber.StatusBadRequest {
			t.Errorf("case %d: status = %d, want 400", i, status)
		}
	}

	var count int64
	db.Model(&model.CourseModel{}).Count(&count)
	if count != 0 {
		t.Fatalf("courses = %d, want 0", count)
	}
}

func TestAdminUpdateCoursePartial(t *testing.T) {
	db := setupCourseDB(t)
	seedCourseRow(t, db, "c-1", model.CourseStatusActive, 7)
	app := newAdminApp(db)

	status, raw := doReq(t, app, "PUT", "/courses/c-1", map[string]interface{}{
		"course_price":  "120.00",
		"course_status": "inactive",
	})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d (%s)", status, raw)
	}

	var m model.CourseModel
	if err := db.First(&m, "course_id = ?", "c-1").Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if m.CoursePrice != "120.00" {
		t.Errorf("price = %s", m.CoursePrice)
	}
	if m.CourseStatus != model.CourseStatusInactive {
		t.Errorf("status = %s", m.CourseStatus)
	}
	if m.CourseTitle != "Course c-1" {
		t.Errorf("title changed unexpectedly: %s", m.CourseTitle)
	}
	// counter milik reconciler, tidak boleh tersentuh update
	if m.CourseEnrollments != 7 {
		t.Errorf("enrollments = %d, want 7", m.CourseEnrollments)
	}
}

func TestAdminDeleteCourseIsSoft(t *testing.T) {
	db := setupCourseDB(t)
	seedCourseRow(t, db, "c-del", model.CourseStatusActive, 0)
	app := newAdminApp(db)

	if status, _ := doReq(t, app, "DELETE", "/courses/c-del", nil); status != fiber.StatusOK {
		t.Fatalf("delete status = %d", status)
	}

	// hilang dari console
	if status, _ := doReq(t, app, "GET", "/courses/c-del", nil); status != fiber.StatusNotFound {
		t.Errorf("get after delete = %d, want 404", status)
	}

	// tapi row masih ada (soft delete)
	var m model.CourseModel
	if err := db.First(&m, "course_id = ?", "c-del").Error; err != nil {
		t.Fatalf("row physically gone: %v", err)
	}
	if m.CourseDeletedAt == nil {
		t.Errorf("course_deleted_at not set")
	}

	// delete kedua → 404
	if status, _ := doReq(t, app, "DELETE", "/courses/c-del", nil); status != fiber.StatusNotFound {
		t.Errorf("second delete = %d, want 404", status)
	}
}

func TestAdminListIncludesInactive(t *testing.T) {
	db := setupCourseDB(t)
	seedCourseRow(t, db, "c-active", model.CourseStatusActive, 0)
	seedCourseRow(t, db, "c-inactive", model.CourseStatusInactive, 0)
	app := newAdminApp(db)

	status, raw := doReq(t, app, "GET", "/courses/", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	var body struct {
		Total int64 `json:"total"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Total != 2 {
		t.Fatalf("total = %d, want 2 (console melihat semua status)", body.Total)
	}
}
