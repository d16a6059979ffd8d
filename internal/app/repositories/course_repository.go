package repositories

import (
	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/db"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
)

// CourseRepository handles course document operations
type CourseRepository struct {
	*DocumentRepository[models.Course]
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(coll db.Collection) *CourseRepository {
	return &CourseRepository{
		DocumentRepository: newDocumentRepository(coll, "course", apperrors.ErrCourseNotFound, normalizeCourse),
	}
}

// normalizeCourse stores and renders a missing student list as an empty array so
// later array updates always find an array.
func normalizeCourse(c *models.Course) {
	if c.Students == nil {
		c.Students = []string{}
	}
}
