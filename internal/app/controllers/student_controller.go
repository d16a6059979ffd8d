package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/uniregistry/internal/app/models/dto"
	"github.com/yigit/uniregistry/internal/app/services"
	"github.com/yigit/uniregistry/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Description Creates a new student and returns its identifier
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.StudentRequest true "Student information"
// @Success 200 {object} dto.CreatedResponse "Student added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	id, err := c.studentService.CreateStudent(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreatedResponse{
		ID:      id,
		Message: "Student added successfully",
	})
}

// GetAllStudents retrieves all students
// @Summary Get all students
// @Tags students
// @Produce json
// @Success 200 {object} dto.StudentListResponse "Students fetched successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{
		Students: students,
		Message:  "Students fetched successfully",
	})
}

// GetStudentByName retrieves the first student with the given name
// @Summary Get a student by name
// @Tags students
// @Produce json
// @Param name path string true "Student name"
// @Success 200 {object} models.Student
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{name} [get]
func (c *StudentController) GetStudentByName(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByName(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// GetStudentsByName retrieves every student with the given name
// @Summary List students by name
// @Tags students
// @Produce json
// @Param name path string true "Student name"
// @Success 200 {array} models.Student
// @Failure 404 {object} dto.ErrorResponse "No student with this name"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/name/{name} [get]
func (c *StudentController) GetStudentsByName(ctx *gin.Context) {
	students, err := c.studentService.GetStudentsByName(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudentByID retrieves a student by ID
// @Summary Get a student by ID
// @Tags students
// @Produce json
// @Param id path string true "Student ID" minLength(24) maxLength(24)
// @Success 200 {object} models.Student
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/id/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// UpdateStudent replaces a student's name and age
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body dto.StudentRequest true "Student information"
// @Success 200 {object} dto.SuccessResponse "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/updateStudent/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.studentService.UpdateStudent(ctx.Request.Context(), ctx.Param("id"), req.ToModel()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student updated successfully"})
}

// DeleteStudent deletes a student
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.SuccessResponse "Student deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/deleteById/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student deleted successfully"})
}
