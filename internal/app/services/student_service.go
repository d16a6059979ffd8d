package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/app/repositories"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
	"github.com/yigit/uniregistry/internal/pkg/logger"
	"github.com/yigit/uniregistry/internal/pkg/validation"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, student *models.Student) (string, error)
	GetAllStudents(ctx context.Context) ([]models.Student, error)
	GetStudentByName(ctx context.Context, name string) (*models.Student, error)
	GetStudentsByName(ctx context.Context, name string) ([]models.Student, error)
	GetStudentByID(ctx context.Context, id string) (*models.Student, error)
	UpdateStudent(ctx context.Context, id string, student *models.Student) error
	DeleteStudent(ctx context.Context, id string) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// validateStudent validates student data before database operations
func (s *studentServiceImpl) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}

	name := validation.NewStringValidation(strings.TrimSpace(student.Name)).
		WithMinLength(validation.NameMinLength)
	if !name.Validate() {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	if !validation.NewNumericValidation(student.Age).WithMin(0).Validate() {
		return fmt.Errorf("%w: age must be at least 0", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateStudent creates a new student and returns its identifier
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (string, error) {
	if err := s.validateStudent(student); err != nil {
		return "", err
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		return "", fmt.Errorf("error creating student: %w", err)
	}

	logger.Ctx(ctx).Info().Str("studentID", id.Hex()).Msg("Student created")
	return id.Hex(), nil
}

// GetAllStudents retrieves all students
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]models.Student, error) {
	students, err := s.studentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetStudentByName retrieves the first student with the given name
func (s *studentServiceImpl) GetStudentByName(ctx context.Context, name string) (*models.Student, error) {
	student, err := s.studentRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Ctx(ctx).Warn().Str("name", name).Msg("Student not found by name")
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// GetStudentsByName retrieves every student with the given name
func (s *studentServiceImpl) GetStudentsByName(ctx context.Context, name string) ([]models.Student, error) {
	students, err := s.studentRepo.ListByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Ctx(ctx).Warn().Str("name", name).Msg("No students found by name")
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id string) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Ctx(ctx).Warn().Str("studentID", id).Msg("Student not found")
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// UpdateStudent replaces the name and age of an existing student
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id string, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}

	if err := s.studentRepo.ReplaceByID(ctx, id, student); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Ctx(ctx).Warn().Str("studentID", id).Msg("Student not found for update")
			return err
		}
		return fmt.Errorf("error updating student: %w", err)
	}
	return nil
}

// DeleteStudent deletes a student. Courses still referencing it keep the id.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id string) error {
	if err := s.studentRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Ctx(ctx).Warn().Str("studentID", id).Msg("Student not found for delete")
			return err
		}
		return fmt.Errorf("error deleting student: %w", err)
	}

	logger.Ctx(ctx).Info().Str("studentID", id).Msg("Student deleted")
	return nil
}
