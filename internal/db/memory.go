package db

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps documents in process. Documents are returned in insertion order.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]*MemoryCollection
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*MemoryCollection)}
}

// Collection returns the named collection, creating it on first use
func (s *MemoryStore) Collection(name string) Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[name]
	if !ok {
		coll = &MemoryCollection{}
		s.collections[name] = coll
	}
	return coll
}

// Ping always succeeds
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op
func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}

// MemoryCollection is a single collection of a MemoryStore
type MemoryCollection struct {
	mu   sync.RWMutex
	docs []bson.M
}

// InsertOne stores the document under a fresh ObjectID
func (c *MemoryCollection) InsertOne(ctx context.Context, document interface{}) (primitive.ObjectID, error) {
	doc, err := toDocument(document)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := primitive.NewObjectID()
	doc["_id"] = id

	c.mu.Lock()
	c.docs = append(c.docs, doc)
	c.mu.Unlock()
	return id, nil
}

// Find decodes every matching document into results
func (c *MemoryCollection) Find(ctx context.Context, filter bson.M, results interface{}) error {
	match, err := toDocument(filter)
	if err != nil {
		return err
	}

	c.mu.RLock()
	var found []bson.M
	for _, doc := range c.docs {
		if matches(doc, match) {
			found = append(found, doc)
		}
	}
	err = decodeDocuments(found, results)
	c.mu.RUnlock()
	return err
}

// FindOne decodes the first matching document into result
func (c *MemoryCollection) FindOne(ctx context.Context, filter bson.M, result interface{}) error {
	match, err := toDocument(filter)
	if err != nil {
		return err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, doc := range c.docs {
		if matches(doc, match) {
			return decodeDocument(doc, result)
		}
	}
	return ErrNoDocuments
}

// SetFields overwrites the given fields of the document
func (c *MemoryCollection) SetFields(ctx context.Context, id primitive.ObjectID, fields interface{}) (int64, error) {
	set, err := toDocument(fields)
	if err != nil {
		return 0, err
	}
	delete(set, "_id")

	return c.update(id, func(doc bson.M) {
		for k, v := range set {
			doc[k] = v
		}
	}), nil
}

// DeleteOne removes the document
func (c *MemoryCollection) DeleteOne(ctx context.Context, id primitive.ObjectID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, doc := range c.docs {
		if doc["_id"] == id {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// Push appends value to field
func (c *MemoryCollection) Push(ctx context.Context, id primitive.ObjectID, field, value string) (int64, error) {
	return c.update(id, func(doc bson.M) {
		doc[field] = append(stringArray(doc, field), value)
	}), nil
}

// AddToSet appends value to field unless it is already there
func (c *MemoryCollection) AddToSet(ctx context.Context, id primitive.ObjectID, field, value string) (int64, error) {
	return c.update(id, func(doc bson.M) {
		arr := stringArray(doc, field)
		for _, v := range arr {
			if v == value {
				doc[field] = arr
				return
			}
		}
		doc[field] = append(arr, value)
	}), nil
}

// Pull removes every occurrence of value from field
func (c *MemoryCollection) Pull(ctx context.Context, id primitive.ObjectID, field, value string) (int64, error) {
	return c.update(id, func(doc bson.M) {
		kept := primitive.A{}
		for _, v := range stringArray(doc, field) {
			if v != value {
				kept = append(kept, v)
			}
		}
		doc[field] = kept
	}), nil
}

// update applies fn to the document with the given id under the write lock and
// returns the matched count.
func (c *MemoryCollection) update(id primitive.ObjectID, fn func(doc bson.M)) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, doc := range c.docs {
		if doc["_id"] == id {
			fn(doc)
			return 1
		}
	}
	return 0
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(doc[k], want) {
			return false
		}
	}
	return true
}
