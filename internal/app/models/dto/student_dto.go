package dto

import "github.com/yigit/uniregistry/internal/app/models"

// StudentRequest is the body of create and replace student calls
type StudentRequest struct {
	Name string `json:"name" binding:"required" example:"Ana"`
	Age  *int   `json:"age" binding:"required,min=0" example:"21"`
}

// ToModel converts the request into a student document
func (r *StudentRequest) ToModel() *models.Student {
	student := &models.Student{Name: r.Name}
	if r.Age != nil {
		student.Age = *r.Age
	}
	return student
}

// StudentListResponse is returned by GET /students
type StudentListResponse struct {
	Students []models.Student `json:"students"`
	Message  string           `json:"message" example:"Students fetched successfully"`
}
