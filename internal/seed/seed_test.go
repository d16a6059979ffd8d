package seed

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"

	appRepos "github.com/yigit/uniregistry/internal/app/repositories"
	appServices "github.com/yigit/uniregistry/internal/app/services"
	"github.com/yigit/uniregistry/internal/db"
)

func TestCreateDemoData(t *testing.T) {
	ctx := context.Background()
	gateway := db.NewGateway(db.NewMemoryStore(), db.DriverMemory)
	svcs := appServices.NewServices(appRepos.NewRepositories(gateway))
	lgr := zerolog.New(io.Discard)

	if err := CreateDemoData(ctx, svcs, lgr); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	students, _ := svcs.StudentService.GetAllStudents(ctx)
	courses, _ := svcs.CourseService.GetAllCourses(ctx)
	universities, _ := svcs.UniversityService.GetAllUniversities(ctx)
	if len(students) != 1 || len(courses) != 1 || len(universities) != 1 {
		t.Fatalf("expected one document per collection, got %d/%d/%d", len(students), len(courses), len(universities))
	}
	if len(courses[0].Students) != 1 || courses[0].Students[0] != students[0].ID.Hex() {
		t.Errorf("expected course to reference the student, got %v", courses[0].Students)
	}
	if len(universities[0].Courses) != 1 || universities[0].Courses[0] != courses[0].ID.Hex() {
		t.Errorf("expected university to reference the course, got %v", universities[0].Courses)
	}

	t.Run("second run is a no-op", func(t *testing.T) {
		if err := CreateDemoData(ctx, svcs, lgr); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		students, _ := svcs.StudentService.GetAllStudents(ctx)
		if len(students) != 1 {
			t.Errorf("expected 1 student, got %d", len(students))
		}
	})
}
