package repositories

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
)

func count(refs []string, id string) int {
	n := 0
	for _, r := range refs {
		if r == id {
			n++
		}
	}
	return n
}

func TestReferenceDuplicatePolicy(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newGateway())

	courseID, err := repos.CourseRepository.Create(ctx, &models.Course{Name: "CS101", Faculty: "Eng"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	universityID, err := repos.UniversityRepository.Create(ctx, &models.University{Name: "U", City: "C", Country: "X"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	child := primitive.NewObjectID().Hex()

	t.Run("course students allow duplicates", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if err := repos.CourseStudents.AddReference(ctx, courseID.Hex(), child); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		}
		course, _ := repos.CourseRepository.GetByID(ctx, courseID.Hex())
		if n := count(course.Students, child); n != 2 {
			t.Errorf("expected 2 occurrences, got %d", n)
		}
	})

	t.Run("university courses are unique", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			if err := repos.UniversityCourses.AddReference(ctx, universityID.Hex(), child); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		}
		university, _ := repos.UniversityRepository.GetByID(ctx, universityID.Hex())
		if n := count(university.Courses, child); n != 1 {
			t.Errorf("expected 1 occurrence, got %d", n)
		}
	})
}

func TestRemoveReferenceIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newGateway())
	child := primitive.NewObjectID().Hex()
	other := primitive.NewObjectID().Hex()

	courseID, _ := repos.CourseRepository.Create(ctx, &models.Course{
		Name:     "CS101",
		Faculty:  "Eng",
		Students: []string{child, other, child},
	})

	for i := 0; i < 2; i++ {
		if err := repos.CourseStudents.RemoveReference(ctx, courseID.Hex(), child); err != nil {
			t.Fatalf("call %d: expected no error, got %v", i+1, err)
		}
		refs, err := repos.CourseStudents.ListReferences(ctx, courseID.Hex())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if count(refs, child) != 0 {
			t.Errorf("call %d: expected child removed, got %v", i+1, refs)
		}
		if len(refs) != 1 || refs[0] != other {
			t.Errorf("call %d: expected other reference kept, got %v", i+1, refs)
		}
	}
}

func TestReferenceErrors(t *testing.T) {
	ctx := context.Background()
	coll := &countingCollection{Collection: newGateway().Courses()}
	refs := NewReferenceRepository(coll, CourseStudents)
	valid := primitive.NewObjectID().Hex()

	t.Run("malformed parent", func(t *testing.T) {
		if err := refs.AddReference(ctx, "bad", valid); !errors.Is(err, apperrors.ErrInvalidIdentifier) {
			t.Errorf("expected invalid identifier, got %v", err)
		}
	})

	t.Run("malformed child", func(t *testing.T) {
		if err := refs.RemoveReference(ctx, valid, "bad"); !errors.Is(err, apperrors.ErrInvalidIdentifier) {
			t.Errorf("expected invalid identifier, got %v", err)
		}
	})

	if coll.calls != 0 {
		t.Errorf("expected no store calls for malformed ids, got %d", coll.calls)
	}

	t.Run("missing parent", func(t *testing.T) {
		if err := refs.AddReference(ctx, valid, valid); !errors.Is(err, apperrors.ErrCourseNotFound) {
			t.Errorf("expected course not found, got %v", err)
		}
		if err := refs.RemoveReference(ctx, valid, valid); !errors.Is(err, apperrors.ErrCourseNotFound) {
			t.Errorf("expected course not found, got %v", err)
		}
		if _, err := refs.ListReferences(ctx, valid); !errors.Is(err, apperrors.ErrResourceNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
	})
}

func TestStudentCourseScenario(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(newGateway())

	studentID, err := repos.StudentRepository.Create(ctx, &models.Student{Name: "Ana", Age: 21})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	courseID, err := repos.CourseRepository.Create(ctx, &models.Course{Name: "CS101", Faculty: "Eng", Students: []string{}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := repos.CourseStudents.AddReference(ctx, courseID.Hex(), studentID.Hex()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	course, err := repos.CourseRepository.GetByID(ctx, courseID.Hex())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(course.Students) != 1 || course.Students[0] != studentID.Hex() {
		t.Errorf("expected [%s], got %v", studentID.Hex(), course.Students)
	}

	if err := repos.CourseStudents.RemoveReference(ctx, courseID.Hex(), studentID.Hex()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	course, err = repos.CourseRepository.GetByID(ctx, courseID.Hex())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(course.Students) != 0 {
		t.Errorf("expected no students, got %v", course.Students)
	}
}
