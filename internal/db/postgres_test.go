package db

import (
	"encoding/json"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDocumentFilter(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("identifier matches key column", func(t *testing.T) {
		conds, err := documentFilter(bson.M{"_id": id})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(conds) != 1 {
			t.Fatalf("expected 1 condition, got %d", len(conds))
		}
		sql, args, err := conds[0].ToSql()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if sql != "id = ?" || len(args) != 1 || args[0] != id.Hex() {
			t.Errorf("unexpected condition %q %v", sql, args)
		}
	})

	t.Run("fields use containment", func(t *testing.T) {
		conds, err := documentFilter(bson.M{"name": "Ana"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		sql, args, err := conds[0].ToSql()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if sql != "doc @> ?::jsonb" {
			t.Errorf("unexpected condition %q", sql)
		}
		var got map[string]string
		if err := json.Unmarshal([]byte(args[0].(string)), &got); err != nil {
			t.Fatalf("expected JSON argument, got %v", args[0])
		}
		if got["name"] != "Ana" {
			t.Errorf("expected name Ana, got %v", got)
		}
	})

	t.Run("empty filter has no conditions", func(t *testing.T) {
		conds, err := documentFilter(bson.M{})
		if err != nil || len(conds) != 0 {
			t.Errorf("expected no conditions, got %v (%v)", conds, err)
		}
	})

	t.Run("string identifier is rejected", func(t *testing.T) {
		if _, err := documentFilter(bson.M{"_id": id.Hex()}); err == nil {
			t.Error("expected error for non ObjectID _id")
		}
	})
}

func TestEncodeJSONDocument(t *testing.T) {
	payload, err := encodeJSONDocument(&testDoc{ID: primitive.NewObjectID(), Name: "CS101", Refs: []string{"a", "a"}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strings.Contains(payload, "_id") {
		t.Errorf("expected _id stripped, got %s", payload)
	}

	var got struct {
		Name string   `json:"name"`
		Refs []string `json:"refs"`
	}
	if err := json.Unmarshal([]byte(payload), &got); err != nil {
		t.Fatalf("expected valid JSON, got %v", err)
	}
	if got.Name != "CS101" || len(got.Refs) != 2 {
		t.Errorf("unexpected document %+v", got)
	}
}
