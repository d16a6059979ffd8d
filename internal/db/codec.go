package db

import (
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// toDocument runs v through the bson codec so struct tags apply the same way they
// do when the mongo driver encodes a document.
func toDocument(v interface{}) (bson.M, error) {
	if m, ok := v.(bson.M); ok && len(m) == 0 {
		return bson.M{}, nil
	}
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return doc, nil
}

// decodeDocument fills result from doc
func decodeDocument(doc bson.M, result interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := bson.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

// decodeDocuments fills results, which must be a pointer to a slice, the way
// mongo.Cursor.All does.
func decodeDocuments(docs []bson.M, results interface{}) error {
	rv := reflect.ValueOf(results)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("results argument must be a pointer to a slice, got %T", results)
	}

	slice := rv.Elem()
	elemType := slice.Type().Elem()
	out := reflect.MakeSlice(slice.Type(), 0, len(docs))
	for _, doc := range docs {
		elem := reflect.New(elemType)
		if err := decodeDocument(doc, elem.Interface()); err != nil {
			return err
		}
		out = reflect.Append(out, elem.Elem())
	}
	slice.Set(out)
	return nil
}

// stringArray reads an array field holding strings; a missing or null field is empty
func stringArray(doc bson.M, field string) primitive.A {
	arr, ok := doc[field].(primitive.A)
	if !ok {
		return primitive.A{}
	}
	return arr
}
