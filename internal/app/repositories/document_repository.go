package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/uniregistry/internal/db"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
	"github.com/yigit/uniregistry/internal/pkg/dberrors"
	"github.com/yigit/uniregistry/internal/pkg/logger"
)

// DocumentRepository implements the CRUD operations shared by every entity
// collection. T is the document model; entity names it in logs and errors.
type DocumentRepository[T any] struct {
	coll     db.Collection
	entity   string
	notFound error
	// normalize runs on every document read from or written to the store
	normalize func(*T)
}

func newDocumentRepository[T any](coll db.Collection, entity string, notFound error, normalize func(*T)) *DocumentRepository[T] {
	if normalize == nil {
		normalize = func(*T) {}
	}
	return &DocumentRepository[T]{
		coll:      coll,
		entity:    entity,
		notFound:  notFound,
		normalize: normalize,
	}
}

// ParseID converts a hex identifier into an ObjectID. Malformed input never
// reaches the store.
func ParseID(field, id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NewInvalidIdentifierError(field, id)
	}
	return oid, nil
}

// storeError hides a driver error behind the store error kinds
func storeError(op string, err error) error {
	if dberrors.IsConnectionFailure(err) {
		return apperrors.NewConnectionError(op, err)
	}
	return apperrors.NewStoreError(op, err)
}

// Create inserts the document verbatim and returns its new identifier
func (r *DocumentRepository[T]) Create(ctx context.Context, doc *T) (primitive.ObjectID, error) {
	r.normalize(doc)

	id, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("entity", r.entity).Msg("Error inserting document")
		return primitive.NilObjectID, storeError("create "+r.entity, err)
	}
	return id, nil
}

// ListAll returns every document; an empty collection yields an empty slice
func (r *DocumentRepository[T]) ListAll(ctx context.Context) ([]T, error) {
	return r.find(ctx, bson.M{}, "list "+r.entity)
}

// GetByName returns the first document whose name matches
func (r *DocumentRepository[T]) GetByName(ctx context.Context, name string) (*T, error) {
	var doc T
	if err := r.coll.FindOne(ctx, bson.M{"name": name}, &doc); err != nil {
		if errors.Is(err, db.ErrNoDocuments) {
			return nil, r.notFound
		}
		logger.Ctx(ctx).Error().Err(err).Str("entity", r.entity).Str("name", name).Msg("Error finding document by name")
		return nil, storeError("get "+r.entity+" by name", err)
	}
	r.normalize(&doc)
	return &doc, nil
}

// ListByName returns every document whose name matches. Unlike ListAll an empty
// result is reported as not found.
func (r *DocumentRepository[T]) ListByName(ctx context.Context, name string) ([]T, error) {
	docs, err := r.find(ctx, bson.M{"name": name}, "list "+r.entity+" by name")
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, r.notFound
	}
	return docs, nil
}

// GetByID returns the document with the given identifier
func (r *DocumentRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	oid, err := ParseID(r.entity+" ID", id)
	if err != nil {
		return nil, err
	}

	var doc T
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}, &doc); err != nil {
		if errors.Is(err, db.ErrNoDocuments) {
			return nil, r.notFound
		}
		logger.Ctx(ctx).Error().Err(err).Str("entity", r.entity).Str("id", id).Msg("Error finding document by ID")
		return nil, storeError("get "+r.entity+" by ID", err)
	}
	r.normalize(&doc)
	return &doc, nil
}

// ReplaceByID overwrites every field of the document, reference arrays included
func (r *DocumentRepository[T]) ReplaceByID(ctx context.Context, id string, doc *T) error {
	oid, err := ParseID(r.entity+" ID", id)
	if err != nil {
		return err
	}
	r.normalize(doc)

	matched, err := r.coll.SetFields(ctx, oid, doc)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("entity", r.entity).Str("id", id).Msg("Error replacing document")
		return storeError("update "+r.entity, err)
	}
	if matched == 0 {
		return r.notFound
	}
	return nil
}

// DeleteByID removes the document
func (r *DocumentRepository[T]) DeleteByID(ctx context.Context, id string) error {
	oid, err := ParseID(r.entity+" ID", id)
	if err != nil {
		return err
	}

	deleted, err := r.coll.DeleteOne(ctx, oid)
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("entity", r.entity).Str("id", id).Msg("Error deleting document")
		return storeError("delete "+r.entity, err)
	}
	if deleted == 0 {
		return r.notFound
	}
	return nil
}

func (r *DocumentRepository[T]) find(ctx context.Context, filter bson.M, op string) ([]T, error) {
	docs := []T{}
	if err := r.coll.Find(ctx, filter, &docs); err != nil {
		logger.Ctx(ctx).Error().Err(err).Str("entity", r.entity).Msg("Error querying documents")
		return nil, storeError(op, err)
	}
	if docs == nil {
		docs = []T{}
	}
	for i := range docs {
		r.normalize(&docs[i])
	}
	return docs, nil
}
