package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// University is one document of the universities collection. Courses holds course
// ids as hex strings. Entries written as ObjectIDs by older clients decode to their
// hex form through the driver's string codec.
type University struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"66f1c2a4e13b5a2f9c0d1e31"`
	Name    string             `json:"name" bson:"name" example:"Universidad de Chile"`
	City    string             `json:"city" bson:"city" example:"Santiago"`
	Country string             `json:"country" bson:"country" example:"Chile"`
	Courses []string           `json:"courses" bson:"courses"`
}
