// file: internals/seeds/courses/seed_courses.go
package courses

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "bootcampku_backend/internals/features/courses/courses/model"
)

type CourseSeed struct {
	CourseTitle       string `json:"course_title"`
	CourseDescription string `json:"course_description"`
	CoursePrice       string `json:"course_price"`
	CourseMaxStudents string `json:"course_max_students"`
	CourseDuration    string `json:"course_duration"`
	CourseLevel       string `json:"course_level"`
	CourseCategory    string `json:"course_category"`
	CourseStartDate   string `json:"course_start_date"`
}

// SeedCoursesFromJSON mengisi katalog awal; title yang sudah ada di-skip.
func SeedCoursesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ Gagal membaca file JSON: %v", err)
		return
	}

	var seeds []CourseSeed
	if err := json.Unmarshal(file, &seeds); err != nil {
		log.Printf("❌ Gagal decode JSON: %v", err)
		return
	}

	now := time.Now().UTC()
	inserted := 0
	for _, s := range seeds {
		var count int64
		db.Model(&model.CourseModel{}).
			Where("course_title = ? AND course_deleted_at IS NULL", s.CourseTitle).
			Count(&count)
		if count > 0 {
			continue
		}

		level := model.CourseLevelBeginner
		if s.CourseLevel != "" {
			level = model.CourseLevel(s.CourseLevel)
		}
		c := model.CourseModel{
			CourseID:          uuid.NewString(),
			CourseTitle:       s.CourseTitle,
			CourseDescription: s.CourseDescription,
			CoursePrice:       s.CoursePrice,
			CourseMaxStudents: s.CourseMaxStudents,
			CourseDuration:    s.CourseDuration,
			CourseLevel:       level,
			CourseCategory:    s.CourseCategory,
			CourseStartDate:   s.CourseStartDate,
			CourseEnrollments: 0,
			CourseStatus:      model.CourseStatusActive,
			CourseCreatedAt:   now,
			CourseUpdatedAt:   now,
		}
		if err := db.Create(&c).Error; err != nil {
			log.Printf("❌ Gagal insert course %s: %v", s.CourseTitle, err)
			continue
		}
		inserted++
	}

	log.Printf("✅ Seed courses selesai: %d course baru", inserted)
}
