package models

// Reference array field names, as stored in the parent documents
const (
	CourseStudentsField    = "students"
	UniversityCoursesField = "courses"
)
