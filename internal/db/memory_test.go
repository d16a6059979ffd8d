package db

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
	Refs []string           `bson:"refs"`
}

func insert(t *testing.T, coll Collection, doc testDoc) primitive.ObjectID {
	t.Helper()
	id, err := coll.InsertOne(context.Background(), &doc)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return id
}

func refsOf(t *testing.T, coll Collection, id primitive.ObjectID) []string {
	t.Helper()
	var doc testDoc
	if err := coll.FindOne(context.Background(), bson.M{"_id": id}, &doc); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return doc.Refs
}

func TestMemoryCollectionArrayOperators(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Collection("things")
	id := insert(t, coll, testDoc{Name: "a", Refs: []string{}})

	tests := []struct {
		name string
		op   func() (int64, error)
		want []string
	}{
		{"push appends", func() (int64, error) { return coll.Push(ctx, id, "refs", "x") }, []string{"x"}},
		{"push keeps duplicates", func() (int64, error) { return coll.Push(ctx, id, "refs", "x") }, []string{"x", "x"}},
		{"add to set skips present value", func() (int64, error) { return coll.AddToSet(ctx, id, "refs", "x") }, []string{"x", "x"}},
		{"add to set appends absent value", func() (int64, error) { return coll.AddToSet(ctx, id, "refs", "y") }, []string{"x", "x", "y"}},
		{"pull removes every occurrence", func() (int64, error) { return coll.Pull(ctx, id, "refs", "x") }, []string{"y"}},
		{"pull of absent value is a no-op", func() (int64, error) { return coll.Pull(ctx, id, "refs", "x") }, []string{"y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, err := tt.op()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if matched != 1 {
				t.Errorf("expected 1 matched, got %d", matched)
			}
			if got := refsOf(t, coll, id); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMemoryCollectionMissingDocument(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Collection("things")
	missing := primitive.NewObjectID()

	for name, op := range map[string]func() (int64, error){
		"push":       func() (int64, error) { return coll.Push(ctx, missing, "refs", "x") },
		"add to set": func() (int64, error) { return coll.AddToSet(ctx, missing, "refs", "x") },
		"pull":       func() (int64, error) { return coll.Pull(ctx, missing, "refs", "x") },
		"set fields": func() (int64, error) { return coll.SetFields(ctx, missing, bson.M{"name": "b"}) },
		"delete":     func() (int64, error) { return coll.DeleteOne(ctx, missing) },
	} {
		t.Run(name, func(t *testing.T) {
			matched, err := op()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if matched != 0 {
				t.Errorf("expected 0 matched, got %d", matched)
			}
		})
	}

	var doc testDoc
	if err := coll.FindOne(ctx, bson.M{"_id": missing}, &doc); !errors.Is(err, ErrNoDocuments) {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestMemoryCollectionFind(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().Collection("things")
	first := insert(t, coll, testDoc{Name: "a"})
	insert(t, coll, testDoc{Name: "b"})
	third := insert(t, coll, testDoc{Name: "a"})

	t.Run("insertion order", func(t *testing.T) {
		var docs []testDoc
		if err := coll.Find(ctx, bson.M{"name": "a"}, &docs); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(docs) != 2 || docs[0].ID != first || docs[1].ID != third {
			t.Errorf("unexpected documents %+v", docs)
		}
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		var docs []testDoc
		if err := coll.Find(ctx, bson.M{"name": "zzz"}, &docs); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if docs == nil || len(docs) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", docs)
		}
	})

	t.Run("set fields keeps identifier", func(t *testing.T) {
		matched, err := coll.SetFields(ctx, first, &testDoc{Name: "c", Refs: []string{"r"}})
		if err != nil || matched != 1 {
			t.Fatalf("expected 1 matched, got %d (%v)", matched, err)
		}
		var doc testDoc
		if err := coll.FindOne(ctx, bson.M{"_id": first}, &doc); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if doc.Name != "c" || len(doc.Refs) != 1 {
			t.Errorf("unexpected document %+v", doc)
		}
	})

	t.Run("delete removes only the target", func(t *testing.T) {
		if deleted, _ := coll.DeleteOne(ctx, first); deleted != 1 {
			t.Errorf("expected 1 deleted, got %d", deleted)
		}
		var docs []testDoc
		_ = coll.Find(ctx, bson.M{}, &docs)
		if len(docs) != 2 {
			t.Errorf("expected 2 remaining, got %d", len(docs))
		}
	})
}

func TestMemoryStoreCollectionsAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	insert(t, store.Collection(StudentsCollection), testDoc{Name: "a"})

	var docs []testDoc
	if err := store.Collection(CoursesCollection).Find(context.Background(), bson.M{}, &docs); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected courses to be empty, got %d", len(docs))
	}
	if store.Collection(StudentsCollection) != store.Collection(StudentsCollection) {
		t.Error("expected the same collection on repeated lookups")
	}
}
