package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/uniregistry/internal/app/models/dto"
	"github.com/yigit/uniregistry/internal/app/services"
	"github.com/yigit/uniregistry/internal/middleware"
)

// UniversityController handles university-related operations
type UniversityController struct {
	universityService services.UniversityService
}

// NewUniversityController creates a new UniversityController
func NewUniversityController(universityService services.UniversityService) *UniversityController {
	return &UniversityController{
		universityService: universityService,
	}
}

// CreateUniversity handles university creation
// @Summary Create a new university
// @Tags universities
// @Accept json
// @Produce json
// @Param request body dto.UniversityRequest true "University information"
// @Success 200 {object} dto.CreatedResponse "University added successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities [post]
func (c *UniversityController) CreateUniversity(ctx *gin.Context) {
	var req dto.UniversityRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	id, err := c.universityService.CreateUniversity(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreatedResponse{
		ID:      id,
		Message: "University added successfully",
	})
}

// GetAllUniversities retrieves all universities
// @Summary Get all universities
// @Tags universities
// @Produce json
// @Success 200 {object} dto.UniversityListResponse "Universities fetched successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities [get]
func (c *UniversityController) GetAllUniversities(ctx *gin.Context) {
	universities, err := c.universityService.GetAllUniversities(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UniversityListResponse{
		Universities: universities,
		Message:      "Universities fetched successfully",
	})
}

// GetUniversityByName retrieves the first university with the given name
// @Summary Get a university by name
// @Tags universities
// @Produce json
// @Param name path string true "University name"
// @Success 200 {object} models.University
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /universities/{name} [get]
func (c *UniversityController) GetUniversityByName(ctx *gin.Context) {
	university, err := c.universityService.GetUniversityByName(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, university)
}

// GetUniversitiesByName retrieves every university with the given name
// @Summary List universities by name
// @Tags universities
// @Produce json
// @Param name path string true "University name"
// @Success 200 {array} models.University
// @Failure 404 {object} dto.ErrorResponse "No university with this name"
// @Router /universities/name/{name} [get]
func (c *UniversityController) GetUniversitiesByName(ctx *gin.Context) {
	universities, err := c.universityService.GetUniversitiesByName(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, universities)
}

// GetUniversityByID retrieves a university by ID
// @Summary Get a university by ID
// @Tags universities
// @Produce json
// @Param id path string true "University ID"
// @Success 200 {object} models.University
// @Failure 400 {object} dto.ErrorResponse "Invalid university ID format"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /universities/id/{id} [get]
func (c *UniversityController) GetUniversityByID(ctx *gin.Context) {
	university, err := c.universityService.GetUniversityByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, university)
}

// GetUniversityCourses lists the course ids referenced by a university
// @Summary List the courses of a university
// @Tags universities
// @Produce json
// @Param id path string true "University ID"
// @Success 200 {object} dto.UniversityCoursesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid university ID format"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /universities/id/{id}/courses [get]
func (c *UniversityController) GetUniversityCourses(ctx *gin.Context) {
	universityID := ctx.Param("id")
	courses, err := c.universityService.GetUniversityCourses(ctx.Request.Context(), universityID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UniversityCoursesResponse{
		UniversityID: universityID,
		Courses:      courses,
	})
}

// UpdateUniversity replaces a university, including its courses array
// @Summary Update a university
// @Tags universities
// @Accept json
// @Produce json
// @Param id path string true "University ID"
// @Param request body dto.UniversityRequest true "University information"
// @Success 200 {object} dto.SuccessResponse "University updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or university ID"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /universities/updateUniversity/{id} [put]
func (c *UniversityController) UpdateUniversity(ctx *gin.Context) {
	var req dto.UniversityRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	if err := c.universityService.UpdateUniversity(ctx.Request.Context(), ctx.Param("id"), req.ToModel()); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "University updated successfully"})
}

// DeleteUniversity deletes a university. Served on both /universities/deleteById/{id}
// and the older /universities/{id}.
// @Summary Delete a university
// @Tags universities
// @Produce json
// @Param id path string true "University ID"
// @Success 200 {object} dto.SuccessResponse "University deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid university ID format"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /universities/deleteById/{id} [delete]
// @Router /universities/{id} [delete]
func (c *UniversityController) DeleteUniversity(ctx *gin.Context) {
	if err := c.universityService.DeleteUniversity(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "University deleted successfully"})
}

// AddCourse adds a course reference to a university
// @Summary Add a course to a university
// @Description Adds the course id only when it is not already present
// @Tags universities
// @Produce json
// @Param universityId path string true "University ID"
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.SuccessResponse "Course added to university successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid university or course ID format"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{universityId}/courses/{courseId} [post]
func (c *UniversityController) AddCourse(ctx *gin.Context) {
	if err := c.universityService.AddCourse(ctx.Request.Context(), ctx.Param("universityId"), ctx.Param("courseId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Course added to university successfully"})
}
