package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/db"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
	"github.com/yigit/uniregistry/internal/pkg/logger"
)

// DuplicatePolicy decides what AddReference does with an id already in the array
type DuplicatePolicy int

const (
	// AllowDuplicates appends unconditionally ($push)
	AllowDuplicates DuplicatePolicy = iota
	// UniqueReferences appends only when absent ($addToSet)
	UniqueReferences
)

// Relation describes one parent -> child reference array
type Relation struct {
	Parent   string
	Child    string
	Field    string
	Policy   DuplicatePolicy
	NotFound error
}

// Relations kept by the registry
var (
	CourseStudents = Relation{
		Parent:   "course",
		Child:    "student",
		Field:    models.CourseStudentsField,
		Policy:   AllowDuplicates,
		NotFound: apperrors.ErrCourseNotFound,
	}
	UniversityCourses = Relation{
		Parent:   "university",
		Child:    "course",
		Field:    models.UniversityCoursesField,
		Policy:   UniqueReferences,
		NotFound: apperrors.ErrUniversityNotFound,
	}
)

// ReferenceRepository maintains the reference array of one relation. Child ids are
// only checked for format; the child document is never looked up.
type ReferenceRepository struct {
	coll     db.Collection
	relation Relation
}

// NewReferenceRepository creates a ReferenceRepository over the parent collection
func NewReferenceRepository(parents db.Collection, relation Relation) *ReferenceRepository {
	return &ReferenceRepository{
		coll:     parents,
		relation: relation,
	}
}

// AddReference stores childID in the parent's array according to the relation's policy
func (r *ReferenceRepository) AddReference(ctx context.Context, parentID, childID string) error {
	parent, err := ParseID(r.relation.Parent+" ID", parentID)
	if err != nil {
		return err
	}
	child, err := ParseID(r.relation.Child+" ID", childID)
	if err != nil {
		return err
	}

	var matched int64
	if r.relation.Policy == UniqueReferences {
		matched, err = r.coll.AddToSet(ctx, parent, r.relation.Field, child.Hex())
	} else {
		matched, err = r.coll.Push(ctx, parent, r.relation.Field, child.Hex())
	}
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).
			Str(r.relation.Parent+"ID", parentID).
			Str(r.relation.Child+"ID", childID).
			Msg("Error adding reference")
		return storeError("add "+r.relation.Child+" to "+r.relation.Parent, err)
	}
	if matched == 0 {
		return r.relation.NotFound
	}
	return nil
}

// RemoveReference drops every occurrence of childID. Removing an absent id succeeds.
func (r *ReferenceRepository) RemoveReference(ctx context.Context, parentID, childID string) error {
	parent, err := ParseID(r.relation.Parent+" ID", parentID)
	if err != nil {
		return err
	}
	child, err := ParseID(r.relation.Child+" ID", childID)
	if err != nil {
		return err
	}

	matched, err := r.coll.Pull(ctx, parent, r.relation.Field, child.Hex())
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).
			Str(r.relation.Parent+"ID", parentID).
			Str(r.relation.Child+"ID", childID).
			Msg("Error removing reference")
		return storeError("remove "+r.relation.Child+" from "+r.relation.Parent, err)
	}
	if matched == 0 {
		return r.relation.NotFound
	}
	return nil
}

// ListReferences returns the parent's reference array in stored order
func (r *ReferenceRepository) ListReferences(ctx context.Context, parentID string) ([]string, error) {
	parent, err := ParseID(r.relation.Parent+" ID", parentID)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	if err := r.coll.FindOne(ctx, bson.M{"_id": parent}, &doc); err != nil {
		if errors.Is(err, db.ErrNoDocuments) {
			return nil, r.relation.NotFound
		}
		logger.Ctx(ctx).Error().Err(err).Str(r.relation.Parent+"ID", parentID).Msg("Error listing references")
		return nil, storeError("list "+r.relation.Field+" of "+r.relation.Parent, err)
	}

	refs := []string{}
	arr, _ := doc[r.relation.Field].(bson.A)
	for _, v := range arr {
		switch ref := v.(type) {
		case string:
			refs = append(refs, ref)
		case interface{ Hex() string }:
			refs = append(refs, ref.Hex())
		}
	}
	return refs, nil
}
