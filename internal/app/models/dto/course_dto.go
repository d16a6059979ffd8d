package dto

import "github.com/yigit/uniregistry/internal/app/models"

// CourseRequest is the body of create and replace course calls. Students is stored
// verbatim, duplicates included.
type CourseRequest struct {
	Name     string   `json:"name" example:"CS101"`
	Faculty  string   `json:"faculty" example:"Engineering"`
	Students []string `json:"students" binding:"omitempty,dive,objectid"`
}

// ToModel converts the request into a course document
func (r *CourseRequest) ToModel() *models.Course {
	return &models.Course{
		Name:     r.Name,
		Faculty:  r.Faculty,
		Students: r.Students,
	}
}

// CourseListResponse is returned by GET /courses
type CourseListResponse struct {
	Courses []models.Course `json:"courses"`
	Message string          `json:"message" example:"Courses fetched successfully"`
}

// CourseStudentsResponse lists the student references of one course
type CourseStudentsResponse struct {
	CourseID string   `json:"courseId"`
	Students []string `json:"students"`
}
