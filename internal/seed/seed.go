package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/uniregistry/internal/app/models"
	appServices "github.com/yigit/uniregistry/internal/app/services"
)

// CreateDemoData creates a student, a course holding that student and a university
// holding that course. Nothing is written unless all three collections are empty.
func CreateDemoData(ctx context.Context, svcs *appServices.Services, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating demo data (Students/Courses/Universities)...")

	empty, err := collectionsEmpty(ctx, svcs)
	if err != nil {
		return err
	}
	if !empty {
		lgr.Info().Msg("Collections already hold documents, skipping demo data")
		return nil
	}

	var finalErr error // collect errors without stopping the process

	studentID, err := svcs.StudentService.CreateStudent(ctx, &appModels.Student{Name: "Ana", Age: 21})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating demo student")
		return err
	}

	courseID, err := svcs.CourseService.CreateCourse(ctx, &appModels.Course{
		Name:     "CS101",
		Faculty:  "Engineering",
		Students: []string{studentID},
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating demo course")
		return err
	}

	universityID, err := svcs.UniversityService.CreateUniversity(ctx, &appModels.University{
		Name:    "Universidad de Chile",
		City:    "Santiago",
		Country: "Chile",
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating demo university")
		return err
	}

	if err := svcs.UniversityService.AddCourse(ctx, universityID, courseID); err != nil {
		lgr.Error().Err(err).Msg("Error adding demo course to university")
		finalErr = errors.Join(finalErr, err)
	}

	if finalErr == nil {
		lgr.Info().
			Str("studentID", studentID).
			Str("courseID", courseID).
			Str("universityID", universityID).
			Msg("Demo data created")
	}
	return finalErr
}

func collectionsEmpty(ctx context.Context, svcs *appServices.Services) (bool, error) {
	students, err := svcs.StudentService.GetAllStudents(ctx)
	if err != nil {
		return false, err
	}
	courses, err := svcs.CourseService.GetAllCourses(ctx)
	if err != nil {
		return false, err
	}
	universities, err := svcs.UniversityService.GetAllUniversities(ctx)
	if err != nil {
		return false, err
	}
	return len(students) == 0 && len(courses) == 0 && len(universities) == 0, nil
}
