package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/app/repositories"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
	"github.com/yigit/uniregistry/internal/pkg/logger"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) (string, error)
	GetAllCourses(ctx context.Context) ([]models.Course, error)
	GetCourseByName(ctx context.Context, name string) (*models.Course, error)
	GetCoursesByName(ctx context.Context, name string) ([]models.Course, error)
	GetCourseByID(ctx context.Context, id string) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, course *models.Course) error
	DeleteCourse(ctx context.Context, id string) error
	AddStudent(ctx context.Context, courseID, studentID string) error
	RemoveStudent(ctx context.Context, courseID, studentID string) error
	GetCourseStudents(ctx context.Context, courseID string) ([]string, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo     *repositories.CourseRepository
	courseStudents *repositories.ReferenceRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository, courseStudents *repositories.ReferenceRepository) CourseService {
	return &courseServiceImpl{
		courseRepo:     courseRepo,
		courseStudents: courseStudents,
	}
}

// validateCourse checks the student references carried by a create or replace body
// and stores them in canonical form
func (s *courseServiceImpl) validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	students, err := canonicalReferences("student ID", course.Students)
	if err != nil {
		return err
	}
	course.Students = students

	return nil
}

// CreateCourse creates a new course. The students array keeps its order and duplicates.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (string, error) {
	if err := s.validateCourse(course); err != nil {
		return "", err
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return "", fmt.Errorf("error creating course: %w", err)
	}

	logger.Ctx(ctx).Info().Str("courseID", id.Hex()).Msg("Course created")
	return id.Hex(), nil
}

// GetAllCourses retrieves all courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courseRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetCourseByName retrieves the first course with the given name
func (s *courseServiceImpl) GetCourseByName(ctx context.Context, name string) (*models.Course, error) {
	course, err := s.courseRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Ctx(ctx).Warn().Str("name", name).Msg("Course not found by name")
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// GetCoursesByName retrieves every course with the given name
func (s *courseServiceImpl) GetCoursesByName(ctx context.Context, name string) ([]models.Course, error) {
	courses, err := s.courseRepo.ListByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Ctx(ctx).Warn().Str("name", name).Msg("No courses found by name")
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Ctx(ctx).Warn().Str("courseID", id).Msg("Course not found")
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// UpdateCourse overwrites name, faculty and the whole students array
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id string, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}

	if err := s.courseRepo.ReplaceByID(ctx, id, course); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Ctx(ctx).Warn().Str("courseID", id).Msg("Course not found for update")
			return err
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	return nil
}

// DeleteCourse deletes a course. Universities still referencing it keep the id.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id string) error {
	if err := s.courseRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Ctx(ctx).Warn().Str("courseID", id).Msg("Course not found for delete")
			return err
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	logger.Ctx(ctx).Info().Str("courseID", id).Msg("Course deleted")
	return nil
}

// AddStudent appends studentID to the course, duplicates allowed
func (s *courseServiceImpl) AddStudent(ctx context.Context, courseID, studentID string) error {
	if err := s.courseStudents.AddReference(ctx, courseID, studentID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Ctx(ctx).Warn().Str("courseID", courseID).Str("studentID", studentID).Msg("Course not found for add student")
			return err
		}
		return fmt.Errorf("error adding student to course: %w", err)
	}
	return nil
}

// RemoveStudent removes every occurrence of studentID from the course
func (s *courseServiceImpl) RemoveStudent(ctx context.Context, courseID, studentID string) error {
	if err := s.courseStudents.RemoveReference(ctx, courseID, studentID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Ctx(ctx).Warn().Str("courseID", courseID).Str("studentID", studentID).Msg("Course not found for remove student")
			return err
		}
		return fmt.Errorf("error removing student from course: %w", err)
	}
	return nil
}

// GetCourseStudents returns the student ids referenced by the course
func (s *courseServiceImpl) GetCourseStudents(ctx context.Context, courseID string) ([]string, error) {
	students, err := s.courseStudents.ListReferences(ctx, courseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving course students: %w", err)
	}
	return students, nil
}
