package repositories

import (
	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/db"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
)

// StudentRepository handles student document operations
type StudentRepository struct {
	*DocumentRepository[models.Student]
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(coll db.Collection) *StudentRepository {
	return &StudentRepository{
		DocumentRepository: newDocumentRepository[models.Student](coll, "student", apperrors.ErrStudentNotFound, nil),
	}
}
