// file: internals/seeds/runner.go
package seeds

import (
	"gorm.io/gorm"

	courses "bootcampku_backend/internals/seeds/courses"
	users "bootcampku_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	//* User staff awal
	users.SeedStaffFromJSON(db, "internals/seeds/users/data_users.json")

	//* Katalog course awal
	courses.SeedCoursesFromJSON(db, "internals/seeds/courses/data_courses.json")
}
