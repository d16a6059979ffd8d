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

// UniversityService defines the interface for university-related operations
type UniversityService interface {
	CreateUniversity(ctx context.Context, university *models.University) (string, error)
	GetAllUniversities(ctx context.Context) ([]models.University, error)
	GetUniversityByName(ctx context.Context, name string) (*models.University, error)
	GetUniversitiesByName(ctx context.Context, name string) ([]models.University, error)
	GetUniversityByID(ctx context.Context, id string) (*models.University, error)
	UpdateUniversity(ctx context.Context, id string, university *models.University) error
	DeleteUniversity(ctx context.Context, id string) error
	AddCourse(ctx context.Context, universityID, courseID string) error
	GetUniversityCourses(ctx context.Context, universityID string) ([]string, error)
}

type universityServiceImpl struct {
	universityRepo    *repositories.UniversityRepository
	universityCourses *repositories.ReferenceRepository
}

// NewUniversityService creates a new university service instance
func NewUniversityService(universityRepo *repositories.UniversityRepository, universityCourses *repositories.ReferenceRepository) UniversityService {
	return &universityServiceImpl{
		universityRepo:    universityRepo,
		universityCourses: universityCourses,
	}
}

func (s *universityServiceImpl) validateUniversity(university *models.University) error {
	if university == nil {
		return fmt.Errorf("%w: university is nil", apperrors.ErrValidationFailed)
	}

	courses, err := canonicalReferences("course ID", university.Courses)
	if err != nil {
		return err
	}
	university.Courses = courses

	return nil
}

// CreateUniversity creates a new university. The courses array keeps its order and duplicates.
func (s *universityServiceImpl) CreateUniversity(ctx context.Context, university *models.University) (string, error) {
	if err := s.validateUniversity(university); err != nil {
		return "", err
	}

	id, err := s.universityRepo.Create(ctx, university)
	if err != nil {
		return "", fmt.Errorf("error creating university: %w", err)
	}

	logger.Ctx(ctx).Info().Str("universityID", id.Hex()).Msg("University created")
	return id.Hex(), nil
}

// GetAllUniversities retrieves all universities
func (s *universityServiceImpl) GetAllUniversities(ctx context.Context) ([]models.University, error) {
	universities, err := s.universityRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving universities: %w", err)
	}
	return universities, nil
}

// GetUniversityByName retrieves the first university with the given name
func (s *universityServiceImpl) GetUniversityByName(ctx context.Context, name string) (*models.University, error) {
	university, err := s.universityRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Ctx(ctx).Warn().Str("name", name).Msg("University not found by name")
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving university: %w", err)
	}
	return university, nil
}

// GetUniversitiesByName retrieves every university with the given name
func (s *universityServiceImpl) GetUniversitiesByName(ctx context.Context, name string) ([]models.University, error) {
	universities, err := s.universityRepo.ListByName(ctx, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Ctx(ctx).Warn().Str("name", name).Msg("No universities found by name")
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving universities: %w", err)
	}
	return universities, nil
}

// GetUniversityByID retrieves a university by ID
func (s *universityServiceImpl) GetUniversityByID(ctx context.Context, id string) (*models.University, error) {
	university, err := s.universityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Ctx(ctx).Warn().Str("universityID", id).Msg("University not found")
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving university: %w", err)
	}
	return university, nil
}

// UpdateUniversity overwrites name, city, country and the whole courses array
func (s *universityServiceImpl) UpdateUniversity(ctx context.Context, id string, university *models.University) error {
	if err := s.validateUniversity(university); err != nil {
		return err
	}

	if err := s.universityRepo.ReplaceByID(ctx, id, university); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Ctx(ctx).Warn().Str("universityID", id).Msg("University not found for update")
			return err
		}
		return fmt.Errorf("error updating university: %w", err)
	}
	return nil
}

// DeleteUniversity deletes a university
func (s *universityServiceImpl) DeleteUniversity(ctx context.Context, id string) error {
	if err := s.universityRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Ctx(ctx).Warn().Str("universityID", id).Msg("University not found for delete")
			return err
		}
		return fmt.Errorf("error deleting university: %w", err)
	}

	logger.Ctx(ctx).Info().Str("universityID", id).Msg("University deleted")
	return nil
}

// AddCourse adds courseID to the university unless it is already referenced
func (s *universityServiceImpl) AddCourse(ctx context.Context, universityID, courseID string) error {
	if err := s.universityCourses.AddReference(ctx, universityID, courseID); err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Ctx(ctx).Warn().Str("universityID", universityID).Str("courseID", courseID).Msg("University not found for add course")
			return err
		}
		return fmt.Errorf("error adding course to university: %w", err)
	}
	return nil
}

// GetUniversityCourses returns the course ids referenced by the university
func (s *universityServiceImpl) GetUniversityCourses(ctx context.Context, universityID string) ([]string, error) {
	courses, err := s.universityCourses.ListReferences(ctx, universityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving university courses: %w", err)
	}
	return courses, nil
}
