package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Course is one document of the courses collection. Students holds student ids as
// hex strings; they are weak references and may point at deleted students.
type Course struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"66f1c2a4e13b5a2f9c0d1e30"`
	Name     string             `json:"name" bson:"name" example:"CS101"`
	Faculty  string             `json:"faculty" bson:"faculty" example:"Engineering"`
	Students []string           `json:"students" bson:"students"`
}
