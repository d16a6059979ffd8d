package repositories

import (
	"github.com/yigit/uniregistry/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	UniversityRepository *UniversityRepository
	// CourseStudents maintains courses.students
	CourseStudents *ReferenceRepository
	// UniversityCourses maintains universities.courses
	UniversityCourses *ReferenceRepository
}

// NewRepositories initializes all repositories over one shared gateway
func NewRepositories(gateway *db.Gateway) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(gateway.Students()),
		CourseRepository:     NewCourseRepository(gateway.Courses()),
		UniversityRepository: NewUniversityRepository(gateway.Universities()),
		CourseStudents:       NewReferenceRepository(gateway.Courses(), CourseStudents),
		UniversityCourses:    NewReferenceRepository(gateway.Universities(), UniversityCourses),
	}
}
