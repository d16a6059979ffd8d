package repositories

import (
	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/db"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
)

// UniversityRepository handles university document operations
type UniversityRepository struct {
	*DocumentRepository[models.University]
}

// NewUniversityRepository creates a new UniversityRepository
func NewUniversityRepository(coll db.Collection) *UniversityRepository {
	return &UniversityRepository{
		DocumentRepository: newDocumentRepository(coll, "university", apperrors.ErrUniversityNotFound, normalizeUniversity),
	}
}

func normalizeUniversity(u *models.University) {
	if u.Courses == nil {
		u.Courses = []string{}
	}
}
