package services

import (
	"github.com/yigit/uniregistry/internal/app/repositories"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
	"github.com/yigit/uniregistry/internal/pkg/validation"
)

// Services defined in this package:
// - StudentService: students collection
// - CourseService: courses collection and the students referenced by each course
// - UniversityService: universities collection and the courses referenced by each university

// Services holds all the service instances
type Services struct {
	StudentService    StudentService
	CourseService     CourseService
	UniversityService UniversityService
}

// NewServices wires every service to its repositories
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		StudentService:    NewStudentService(repos.StudentRepository),
		CourseService:     NewCourseService(repos.CourseRepository, repos.CourseStudents),
		UniversityService: NewUniversityService(repos.UniversityRepository, repos.UniversityCourses),
	}
}

// canonicalReferences checks every id of a reference array and rewrites it in the
// lowercase form the reference operations write and match. Order and duplicates are kept.
func canonicalReferences(field string, ids []string) ([]string, error) {
	if invalid := validation.InvalidObjectIDs(ids); len(invalid) > 0 {
		return nil, apperrors.NewInvalidIdentifierError(field, invalid[0])
	}

	canonical := make([]string, 0, len(ids))
	for _, id := range ids {
		oid, err := repositories.ParseID(field, id)
		if err != nil {
			return nil, err
		}
		canonical = append(canonical, oid.Hex())
	}
	return canonical, nil
}
