package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Student is one document of the students collection
type Student struct {
	ID   primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"66f1c2a4e13b5a2f9c0d1e2f"`
	Name string             `json:"name" bson:"name" example:"Ana"`
	Age  int                `json:"age" bson:"age" example:"21"`
}
