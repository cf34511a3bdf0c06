package dto

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	model "bootcampku_backend/internals/features/courses/courses/model"
)

/* =========================================================
   CREATE
========================================================= */

type CreateCourseRequest struct {
	CourseTitle       string `json:"course_title" validate:"required,min=3"`
	CourseDescription string `json:"course_description"`

	CoursePrice       string `json:"course_price" validate:"required"`
	CourseMaxStudents string `json:"course_max_students" validate:"required"`

	CourseDuration  string  `json:"course_duration"`
	CourseLevel     string  `json:"course_level"`
	CourseCategory  string  `json:"course_category"`
	CourseStartDate string  `json:"course_start_date"`
	CourseImageURL  *string `json:"course_image_url"`
	CourseStatus    *string `json:"course_status"`
}

func (r *CreateCourseRequest) Validate() error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(r.CoursePrice), 64); err != nil {
		return errors.New("course_price must be a decimal string")
	}
	if n, err := strconv.Atoi(strings.TrimSpace(r.CourseMaxStudents)); err != nil || n < 0 {
		return errors.New("course_max_students must be a non-negative integer string")
	}
	if r.CourseLevel != "" && !inStr(r.CourseLevel,
		string(model.CourseLevelBeginner),
		string(model.CourseLevelIntermediate),
		string(model.CourseLevelAdvanced),
	) {
		return errors.New("invalid course_level")
	}
	if r.CourseStatus != nil && !inStr(*r.CourseStatus,
		string(model.CourseStatusActive),
		string(model.CourseStatusInactive),
	) {
		return errors.New("invalid course_status")
	}
	if r.CourseStartDate != "" {
		if _, err := time.Parse("2006-01-02", r.CourseStartDate); err != nil {
			return errors.New("course_start_date must be YYYY-MM-DD")
		}
	}
	return nil
}

func (r *CreateCourseRequest) ToModel(createdBy *string) *model.CourseModel {
	now := time.Now().UTC()

	level := model.CourseLevelBeginner
	if r.CourseLevel != "" {
		level = model.CourseLevel(strings.ToLower(r.CourseLevel))
	}
	status := model.CourseStatusActive
	if r.CourseStatus != nil {
		status = model.CourseStatus(strings.ToLower(*r.CourseStatus))
	}

	return &model.CourseModel{
		CourseID:          uuid.NewString(),
		CourseTitle:       strings.TrimSpace(r.CourseTitle),
		CourseDescription: r.CourseDescription,
		CoursePrice:       strings.TrimSpace(r.CoursePrice),
		CourseMaxStudents: strings.TrimSpace(r.CourseMaxStudents),
		CourseDuration:    r.CourseDuration,
		CourseLevel:       level,
		CourseCategory:    r.CourseCategory,
		CourseStartDate:   r.CourseStartDate,
		CourseEnrollments: 0,
		CourseStatus:      status,
		CourseImageURL:    r.CourseImageURL,
		CourseCreatedBy:   createdBy,
		CourseCreatedAt:   now,
		CourseUpdatedAt:   now,
	}
}

/* =========================================================
   UPDATE (partial, pointer fields)
   course_enrollments sengaja tidak ada di sini.
========================================================= */

type UpdateCourseRequest struct {
	CourseTitle       *string `json:"course_title"`
	CourseDescription *string `json:"course_description"`
	CoursePrice       *string `json:"course_price"`
	CourseMaxStudents *string `json:"course_max_students"`
	CourseDuration    *string `json:"course_duration"`
	CourseLevel       *string `json:"course_level"`
	CourseCategory    *string `json:"course_category"`
	CourseStartDate   *string `json:"course_start_date"`
	CourseImageURL    *string `json:"course_image_url"`
	CourseStatus      *string `json:"course_status"`
}

func (r *UpdateCourseRequest) Apply(m *model.CourseModel) error {
	if r.CourseTitle != nil {
		if strings.TrimSpace(*r.CourseTitle) == "" {
			return errors.New("course_title cannot be empty")
		}
		m.CourseTitle = strings.TrimSpace(*r.CourseTitle)
	}
	if r.CourseDescription != nil {
		m.CourseDescription = *r.CourseDescription
	}
	if r.CoursePrice != nil {
		if _, err := strconv.ParseFloat(strings.TrimSpace(*r.CoursePrice), 64); err != nil {
			return errors.New("course_price must be a decimal string")
		}
		m.CoursePrice = strings.TrimSpace(*r.CoursePrice)
	}
	if r.CourseMaxStudents != nil {
		if n, err := strconv.Atoi(strings.TrimSpace(*r.CourseMaxStudents)); err != nil || n < 0 {
			return errors.New("course_max_students must be a non-negative integer string")
		}
		m.CourseMaxStudents = strings.TrimSpace(*r.CourseMaxStudents)
	}
	if r.CourseDuration != nil {
		m.CourseDuration = *r.CourseDuration
	}
	if r.CourseLevel != nil {
		lv := strings.ToLower(*r.CourseLevel)
		if !inStr(lv,
			string(model.CourseLevelBeginner),
			string(model.CourseLevelIntermediate),
			string(model.CourseLevelAdvanced),
		) {
			return errors.New("invalid course_level")
		}
		m.CourseLevel = model.CourseLevel(lv)
	}
	if r.CourseCategory != nil {
		m.CourseCategory = *r.CourseCategory
	}
	if r.CourseStartDate != nil {
		if *r.CourseStartDate != "" {
			if _, err := time.Parse("2006-01-02", *r.CourseStartDate); err != nil {
				return errors.New("course_start_date must be YYYY-MM-DD")
			}
		}
		m.CourseStartDate = *r.CourseStartDate
	}
	if r.CourseImageURL != nil {
		m.CourseImageURL = r.CourseImageURL
	}
	if r.CourseStatus != nil {
		st := strings.ToLower(*r.CourseStatus)
		if !inStr(st,
			string(model.CourseStatusActive),
			string(model.CourseStatusInactive),
		) {
			return errors.New("invalid course_status")
		}
		m.CourseStatus = model.CourseStatus(st)
	}

	m.CourseUpdatedAt = time.Now().UTC()
	return nil
}

/* =========================================================
   RESPONSE
========================================================= */

type CourseResponse struct {
	CourseID          string  `json:"course_id"`
	CourseTitle       string  `json:"course_title"`
	CourseDescription string  `json:"course_description"`
	CoursePrice       string  `json:"course_price"`
	CourseMaxStudents string  `json:"course_max_students"`
	CourseDuration    string  `json:"course_duration"`
	CourseLevel       string  `json:"course_level"`
	CourseCategory    string  `json:"course_category"`
	CourseStartDate   string  `json:"course_start_date"`
	CourseEnrollments int     `json:"course_enrollments"`
	SpotsRemaining    int     `json:"spots_remaining"`
	CourseStatus      string  `json:"course_status"`
	CourseImageURL    *string `json:"course_image_url,omitempty"`
	CourseCreatedAt   string  `json:"course_created_at"`
}

func FromModelCourse(m *model.CourseModel) *CourseResponse {
	if m == nil {
		return nil
	}
	return &CourseResponse{
		CourseID:          m.CourseID,
		CourseTitle:       m.CourseTitle,
		CourseDescription: m.CourseDescription,
		CoursePrice:       m.CoursePrice,
		CourseMaxStudents: m.CourseMaxStudents,
		CourseDuration:    m.CourseDuration,
		CourseLevel:       string(m.CourseLevel),
		CourseCategory:    m.CourseCategory,
		CourseStartDate:   m.CourseStartDate,
		CourseEnrollments: m.CourseEnrollments,
		SpotsRemaining:    m.SpotsRemaining(),
		CourseStatus:      string(m.CourseStatus),
		CourseImageURL:    m.CourseImageURL,
		CourseCreatedAt:   m.CourseCreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

/* =========================================================
   Utils
========================================================= */

func inStr(x string, set ...string) bool {
	x = strings.ToLower(strings.TrimSpace(x))
	for _, s := range set {
		if x == strings.ToLower(s) {
			return true
		}
	}
	return false
}
