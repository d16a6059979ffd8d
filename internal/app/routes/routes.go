package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/uniregistry/internal/app/controllers"
	"github.com/yigit/uniregistry/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	universityController *controllers.UniversityController,
	healthController *controllers.HealthController,
) {
	// Student routes
	students := router.Group("/students")
	{
		students.POST("", studentController.CreateStudent)
		students.GET("", studentController.GetAllStudents)
		students.GET("/:name", studentController.GetStudentByName)
		students.GET("/name/:name", studentController.GetStudentsByName)
		students.GET("/id/:id", studentController.GetStudentByID)
		students.PUT("/updateStudent/:id", studentController.UpdateStudent)
		students.DELETE("/deleteById/:id", studentController.DeleteStudent)
	}

	// Course routes, including the course -> student references
	courses := router.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:name", courseController.GetCourseByName)
		courses.GET("/name/:name", courseController.GetCoursesByName)
		courses.GET("/id/:id", courseController.GetCourseByID)
		courses.GET("/id/:id/students", courseController.GetCourseStudents)
		courses.PUT("/updateCourse/:id", courseController.UpdateCourse)
		courses.DELETE("/deleteById/:id", courseController.DeleteCourse)

		courses.POST("/addstudent/:courseId/:studentId", courseController.AddStudent)
		courses.DELETE("/removestudent/:courseId/:studentId", courseController.RemoveStudent)
	}

	// University routes, including the university -> course references
	universities := router.Group("/universities")
	{
		universities.POST("", universityController.CreateUniversity)
		universities.GET("", universityController.GetAllUniversities)
		universities.GET("/:name", universityController.GetUniversityByName)
		universities.GET("/name/:name", universityController.GetUniversitiesByName)
		universities.GET("/id/:id", universityController.GetUniversityByID)
		universities.GET("/id/:id/courses", universityController.GetUniversityCourses)
		universities.PUT("/updateUniversity/:id", universityController.UpdateUniversity)
		universities.DELETE("/deleteById/:id", universityController.DeleteUniversity)
		universities.DELETE("/:id", universityController.DeleteUniversity) // older clients

		universities.POST("/:universityId/courses/:courseId", universityController.AddCourse)
	}

	router.GET("/health", healthController.Health)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.SuccessResponse{Message: "pong"})
	})
}
