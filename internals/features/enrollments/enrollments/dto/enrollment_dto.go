// file: internals/features/enrollments/enrollments/dto/enrollment_dto.go
package dto

import (
	model "bootcampku_backend/internals/features/enrollments/enrollments/model"
)

/* =========================================================
   ENROLLMENT DETAILS (status reader)
   Wire format ngikutin frontend lama (camelCase).
========================================================= */

type EnrollmentDetailsResponse struct {
	CourseName string  `json:"courseName"`
	StartDate  string  `json:"startDate"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

func FromModelEnrollment(m *model.EnrollmentModel, startDate string) *EnrollmentDetailsResponse {
	return &EnrollmentDetailsResponse{
		CourseName: m.EnrollmentCourseName,
		StartDate:  startDate,
		Amount:     m.EnrollmentPaymentAmount,
		Status:     string(m.EnrollmentStatus),
	}
}
