// file: internals/features/enrollments/enrollments/model/enrollment_model.go
package model

import "time"

type EnrollmentStatus string

const (
	// satu-satunya status yang bisa dicapai flow sekarang
	EnrollmentStatusActive EnrollmentStatus = "active"
)

/* ================================
   MODEL: enrollments
================================ */

// EnrollmentModel: bukti durable bahwa student sudah bayar course.
// enrollment_id = checkout session id dari payment provider (1:1),
// ditulis HANYA oleh webhook reconciler dengan semantik upsert.
type EnrollmentModel struct {
	EnrollmentID string `json:"enrollment_id" gorm:"column:enrollment_id;primaryKey"`

	EnrollmentCourseID   string `json:"enrollment_course_id"   gorm:"column:enrollment_course_id;not null;index"`
	EnrollmentCourseName string `json:"enrollment_course_name" gorm:"column:enrollment_course_name;not null"`

	EnrollmentStudentEmail string `json:"enrollment_student_email" gorm:"column:enrollment_student_email;not null;index"`
	EnrollmentStudentName  string `json:"enrollment_student_name"  gorm:"column:enrollment_student_name"`

	EnrollmentPaymentID     *string `json:"enrollment_payment_id"     gorm:"column:enrollment_payment_id"`
	EnrollmentPaymentAmount float64 `json:"enrollment_payment_amount" gorm:"column:enrollment_payment_amount;not null;default:0"`

	EnrollmentStatus EnrollmentStatus `json:"enrollment_status" gorm:"column:enrollment_status;not null;default:'active'"`

	EnrollmentCreatedAt time.Time `json:"enrollment_created_at" gorm:"column:enrollment_created_at;not null"`
	EnrollmentUpdatedAt time.Time `json:"enrollment_updated_at" gorm:"column:enrollment_updated_at;not null"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }
