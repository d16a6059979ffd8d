package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/uniregistry/internal/app/models/dto"
	"github.com/yigit/uniregistry/internal/app/services"
	"github.com/yigit/uniregistry/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a course; the students array is stored as given
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CourseRequest true "Course information"
// @Success 200 {object} dto.CreatedResponse "Course added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	id, err := c.courseService.CreateCourse(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreatedResponse{
		ID:      id,
		Message: "Course added successfully",
	})
}

// GetAllCourses retrieves all courses
// @Summary Get all courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.CourseListResponse "Courses fetched successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseListResponse{
		Courses: courses,
		Message: "Courses fetched successfully",
	})
}

// GetCourseByName retrieves the first course with the given name
// @Summary Get a course by name
// @Tags courses
// @Produce json
// @Param name path string true "Course name"
// @Success 200 {object} models.Course
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/{name} [get]
func (c *CourseController) GetCourseByName(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByName(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// GetCoursesByName retrieves every course with the given name
// @Summary List courses by name
// @Tags courses
// @Produce json
// @Param name path string true "Course name"
// @Success 200 {array} models.Course
// @Failure 404 {object} dto.ErrorResponse "No course with this name"
// @Router /courses/name/{name} [get]
func (c *CourseController) GetCoursesByName(ctx *gin.Context) {
	courses, err := c.courseService.GetCoursesByName(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// GetCourseByID retrieves a course by ID
// @Summary Get a course by ID
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} models.Course
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/id/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// GetCourseStudents lists the student ids referenced by a course
// @Summary List the students of a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.CourseStudentsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/id/{id}/students [get]
func (c *CourseController) GetCourseStudents(ctx *gin.Context) {
	courseID := ctx.Param("id")
	students, err := c.courseService.GetCourseStudents(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CourseStudentsResponse{
		CourseID: courseID,
		Students: students,
	})
}

// UpdateCourse replaces a course, including its students array
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param request body dto.CourseRequest true "Course information"
// @Success 200 {object} dto.SuccessResponse "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/updateCourse/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.CourseRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.courseService.UpdateCourse(ctx.Request.Context(), ctx.Param("id"), req.ToModel()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Course updated successfully"})
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} dto.SuccessResponse "Course deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/deleteById/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.DeleteCourse(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Course deleted successfully"})
}

// AddStudent appends a student reference to a course
// @Summary Add a student to a course
// @Description Appends the student id even when it is already present
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.SuccessResponse "Student added to course successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course or student ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/addstudent/{courseId}/{studentId} [post]
func (c *CourseController) AddStudent(ctx *gin.Context) {
	if err := c.courseService.AddStudent(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("studentId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student added to course successfully"})
}

// RemoveStudent removes a student reference from a course
// @Summary Remove a student from a course
// @Description Removes every occurrence of the student id; removing an absent id succeeds
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.SuccessResponse "Student removed from course successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course or student ID format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /courses/removestudent/{courseId}/{studentId} [delete]
func (c *CourseController) RemoveStudent(ctx *gin.Context) {
	if err := c.courseService.RemoveStudent(ctx.Request.Context(), ctx.Param("courseId"), ctx.Param("studentId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student removed from course successfully"})
}
