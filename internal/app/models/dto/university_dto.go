package dto

import "github.com/yigit/uniregistry/internal/app/models"

// UniversityRequest is the body of create and replace university calls
type UniversityRequest struct {
	Name    string   `json:"name" example:"Universidad de Chile"`
	City    string   `json:"city" example:"Santiago"`
	Country string   `json:"country" example:"Chile"`
	Courses []string `json:"courses" binding:"omitempty,dive,objectid"`
}

// ToModel converts the request into a university document
func (r *UniversityRequest) ToModel() *models.University {
	return &models.University{
		Name:    r.Name,
		City:    r.City,
		Country: r.Country,
		Courses: r.Courses,
	}
}

// UniversityListResponse is returned by GET /universities
type UniversityListResponse struct {
	Universities []models.University `json:"universities"`
	Message      string              `json:"message" example:"Universities fetched successfully"`
}

// UniversityCoursesResponse lists the course references of one university
type UniversityCoursesResponse struct {
	UniversityID string   `json:"universityId"`
	Courses      []string `json:"courses"`
}
