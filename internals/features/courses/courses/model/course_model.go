// file: internals/features/courses/courses/model/course_model.go
package model

import (
	"strconv"
	"time"
)

/* ================================
   ENUM mirror (harus cocok dgn DB)
================================ */

type CourseLevel string
type CourseStatus string

const (
	CourseLevelBeginner     CourseLevel = "beginner"
	CourseLevelIntermediate CourseLevel = "intermediate"
	CourseLevelAdvanced     CourseLevel = "advanced"
)

const (
	CourseStatusActive   CourseStatus = "active"
	CourseStatusInactive CourseStatus = "inactive"
)

/* ================================
   MODEL: courses
================================ */

// CourseModel: satu course bootcamp dengan kapasitas & harga.
// course_enrollments HANYA dimutasi oleh webhook reconciler
// (atomic increment); CRUD staff tidak pernah menulis kolom ini.
type CourseModel struct {
	CourseID string `json:"course_id" gorm:"column:course_id;primaryKey"`

	CourseTitle       string `json:"course_title"       gorm:"column:course_title;not null"`
	CourseDescription string `json:"course_description" gorm:"column:course_description;type:text"`

	// Harga & kapasitas disimpan sebagai string mengikuti layout dokumen
	// lama; divalidasi numerik di boundary DTO (parse-don't-trust).
	CoursePrice       string `json:"course_price"        gorm:"column:course_price;not null"`
	CourseMaxStudents string `json:"course_max_students" gorm:"column:course_max_students;not null"`

	CourseDuration  string      `json:"course_duration"   gorm:"column:course_duration"`
	CourseLevel     CourseLevel `json:"course_level"      gorm:"column:course_level;not null;default:'beginner'"`
	CourseCategory  string      `json:"course_category"   gorm:"column:course_category"`
	CourseStartDate string      `json:"course_start_date" gorm:"column:course_start_date"` // YYYY-MM-DD

	CourseEnrollments int          `json:"course_enrollments" gorm:"column:course_enrollments;not null;default:0;check:course_enrollments>=0"`
	CourseStatus      CourseStatus `json:"course_status"      gorm:"column:course_status;not null;default:'active'"`

	CourseImageURL  *string `json:"course_image_url"  gorm:"column:course_image_url"`
	CourseCreatedBy *string `json:"course_created_by" gorm:"column:course_created_by"`

	CourseCreatedAt time.Time  `json:"course_created_at" gorm:"column:course_created_at;not null"`
	CourseUpdatedAt time.Time  `json:"course_updated_at" gorm:"column:course_updated_at;not null"`
	CourseDeletedAt *time.Time `json:"course_deleted_at" gorm:"column:course_deleted_at"`
}

func (CourseModel) TableName() string { return "courses" }

// SpotsRemaining = max_students - enrollments.
// max_students non-numerik dianggap 0 (fail closed, tidak oversell).
func (m *CourseModel) SpotsRemaining() int {
	max, err := strconv.Atoi(m.CourseMaxStudents)
	if err != nil {
		return 0
	}
	return max - m.CourseEnrollments
}
