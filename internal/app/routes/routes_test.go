package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yigit/uniregistry/internal/app/controllers"
	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/app/models/dto"
	"github.com/yigit/uniregistry/internal/app/repositories"
	"github.com/yigit/uniregistry/internal/app/services"
	"github.com/yigit/uniregistry/internal/db"
	"github.com/yigit/uniregistry/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type downStore struct{}

func (downStore) Ping(ctx context.Context) error { return errors.New("no reachable servers") }
func (downStore) Driver() string                 { return db.DriverMongo }

func newRouter(health controllers.StorePinger) *gin.Engine {
	gateway := db.NewGateway(db.NewMemoryStore(), db.DriverMemory)
	if health == nil {
		health = gateway
	}
	svcs := services.NewServices(repositories.NewRepositories(gateway))

	router := gin.New()
	router.Use(middleware.RequestLogger())
	SetupRouter(router,
		controllers.NewStudentController(svcs.StudentService),
		controllers.NewCourseController(svcs.CourseService),
		controllers.NewUniversityController(svcs.UniversityService),
		controllers.NewHealthController(health),
	)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode %s: %v", w.Body.String(), err)
	}
}

func create(t *testing.T, router *gin.Engine, path string, body interface{}) string {
	t.Helper()
	w := do(t, router, http.MethodPost, path, body)
	if w.Code != http.StatusOK {
		t.Fatalf("POST %s: expected 200, got %d: %s", path, w.Code, w.Body.String())
	}
	var resp dto.CreatedResponse
	decode(t, w, &resp)
	return resp.ID
}

func TestStudentCourseScenario(t *testing.T) {
	router := newRouter(nil)

	studentID := create(t, router, "/students", map[string]interface{}{"name": "Ana", "age": 21})
	courseID := create(t, router, "/courses", map[string]interface{}{"name": "CS101", "faculty": "Eng", "students": []string{}})

	if w := do(t, router, http.MethodPost, "/courses/addstudent/"+courseID+"/"+studentID, nil); w.Code != http.StatusOK {
		t.Fatalf("add student: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var course models.Course
	w := do(t, router, http.MethodGet, "/courses/id/"+courseID, nil)
	decode(t, w, &course)
	if len(course.Students) != 1 || course.Students[0] != studentID {
		t.Errorf("expected students [%s], got %v", studentID, course.Students)
	}

	if w := do(t, router, http.MethodDelete, "/courses/removestudent/"+courseID+"/"+studentID, nil); w.Code != http.StatusOK {
		t.Fatalf("remove student: expected 200, got %d", w.Code)
	}

	var refs dto.CourseStudentsResponse
	w = do(t, router, http.MethodGet, "/courses/id/"+courseID+"/students", nil)
	decode(t, w, &refs)
	if refs.CourseID != courseID || refs.Students == nil || len(refs.Students) != 0 {
		t.Errorf("expected empty students, got %+v", refs)
	}
}

func TestUppercaseStudentReferenceCanBeRemoved(t *testing.T) {
	router := newRouter(nil)
	studentID := strings.ToUpper(primitive.NewObjectID().Hex())
	courseID := create(t, router, "/courses", map[string]interface{}{"name": "CS101", "students": []string{studentID}})

	if w := do(t, router, http.MethodDelete, "/courses/removestudent/"+courseID+"/"+studentID, nil); w.Code != http.StatusOK {
		t.Fatalf("remove student: expected 200, got %d", w.Code)
	}

	var course models.Course
	decode(t, do(t, router, http.MethodGet, "/courses/id/"+courseID, nil), &course)
	if len(course.Students) != 0 {
		t.Errorf("expected no students, got %v", course.Students)
	}
}

func TestUniversityRoutes(t *testing.T) {
	router := newRouter(nil)
	universityID := create(t, router, "/universities", map[string]interface{}{"name": "Universidad de Chile", "city": "Santiago", "country": "Chile"})
	courseID := primitive.NewObjectID().Hex()

	for i := 0; i < 2; i++ {
		if w := do(t, router, http.MethodPost, "/universities/"+universityID+"/courses/"+courseID, nil); w.Code != http.StatusOK {
			t.Fatalf("add course: expected 200, got %d", w.Code)
		}
	}

	var refs dto.UniversityCoursesResponse
	decode(t, do(t, router, http.MethodGet, "/universities/id/"+universityID+"/courses", nil), &refs)
	if len(refs.Courses) != 1 {
		t.Errorf("expected one course reference, got %v", refs.Courses)
	}

	var byName models.University
	decode(t, do(t, router, http.MethodGet, "/universities/Universidad%20de%20Chile", nil), &byName)
	if byName.City != "Santiago" || len(byName.Courses) != 1 {
		t.Errorf("expected full document by name, got %+v", byName)
	}

	if w := do(t, router, http.MethodDelete, "/universities/"+universityID, nil); w.Code != http.StatusOK {
		t.Errorf("legacy delete: expected 200, got %d", w.Code)
	}
	if w := do(t, router, http.MethodDelete, "/universities/deleteById/"+universityID, nil); w.Code != http.StatusNotFound {
		t.Errorf("second delete: expected 404, got %d", w.Code)
	}
}

func TestStatusCodes(t *testing.T) {
	router := newRouter(nil)
	missing := primitive.NewObjectID().Hex()
	studentID := create(t, router, "/students", map[string]interface{}{"name": "Ana", "age": 21})

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		want   int
	}{
		{"list on empty collection", http.MethodGet, "/courses", nil, http.StatusOK},
		{"get by malformed id", http.MethodGet, "/students/id/not-a-valid-id", nil, http.StatusBadRequest},
		{"get by missing id", http.MethodGet, "/students/id/" + missing, nil, http.StatusNotFound},
		{"get by name", http.MethodGet, "/students/Ana", nil, http.StatusOK},
		{"get by unknown name", http.MethodGet, "/students/Nobody", nil, http.StatusNotFound},
		{"list by name", http.MethodGet, "/students/name/Ana", nil, http.StatusOK},
		{"list by unknown name", http.MethodGet, "/students/name/Nonexistent", nil, http.StatusNotFound},
		{"create without name", http.MethodPost, "/students", map[string]interface{}{"age": 3}, http.StatusBadRequest},
		{"create with negative age", http.MethodPost, "/students", map[string]interface{}{"name": "x", "age": -1}, http.StatusBadRequest},
		{"create course with bad reference", http.MethodPost, "/courses", map[string]interface{}{"name": "x", "students": []string{"abc"}}, http.StatusBadRequest},
		{"create course with prefixed reference", http.MethodPost, "/courses", map[string]interface{}{"name": "x", "students": []string{"0x" + missing[2:]}}, http.StatusBadRequest},
		{"create university with prefixed reference", http.MethodPost, "/universities", map[string]interface{}{"name": "x", "courses": []string{"0X" + missing[2:]}}, http.StatusBadRequest},
		{"create with long name", http.MethodPost, "/students", map[string]interface{}{"name": strings.Repeat("a", 201), "age": 21}, http.StatusOK},
		{"replace", http.MethodPut, "/students/updateStudent/" + studentID, map[string]interface{}{"name": "Ana", "age": 22}, http.StatusOK},
		{"replace malformed id", http.MethodPut, "/students/updateStudent/abc", map[string]interface{}{"name": "Ana", "age": 22}, http.StatusBadRequest},
		{"replace missing", http.MethodPut, "/students/updateStudent/" + missing, map[string]interface{}{"name": "Ana", "age": 22}, http.StatusNotFound},
		{"delete malformed id", http.MethodDelete, "/students/deleteById/abc", nil, http.StatusBadRequest},
		{"add student to missing course", http.MethodPost, "/courses/addstudent/" + missing + "/" + studentID, nil, http.StatusNotFound},
		{"add malformed student", http.MethodPost, "/courses/addstudent/" + missing + "/abc", nil, http.StatusBadRequest},
		{"remove from missing course", http.MethodDelete, "/courses/removestudent/" + missing + "/" + studentID, nil, http.StatusNotFound},
		{"add course to missing university", http.MethodPost, "/universities/" + missing + "/courses/" + missing, nil, http.StatusNotFound},
		{"add malformed course to university", http.MethodPost, "/universities/" + missing + "/courses/abc", nil, http.StatusBadRequest},
		{"delete", http.MethodDelete, "/students/deleteById/" + studentID, nil, http.StatusOK},
		{"ping", http.MethodGet, "/ping", nil, http.StatusOK},
		{"health", http.MethodGet, "/health", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, tt.method, tt.path, tt.body)
			if w.Code != tt.want {
				t.Errorf("%s %s: expected %d, got %d: %s", tt.method, tt.path, tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestListResponses(t *testing.T) {
	router := newRouter(nil)

	var empty dto.StudentListResponse
	decode(t, do(t, router, http.MethodGet, "/students", nil), &empty)
	if empty.Students == nil || len(empty.Students) != 0 || empty.Message == "" {
		t.Errorf("expected empty list with message, got %+v", empty)
	}

	create(t, router, "/students", map[string]interface{}{"name": "Ana", "age": 21})
	create(t, router, "/students", map[string]interface{}{"name": "Ana", "age": 30})

	var byName []models.Student
	decode(t, do(t, router, http.MethodGet, "/students/name/Ana", nil), &byName)
	if len(byName) != 2 {
		t.Errorf("expected 2 students, got %d", len(byName))
	}
}

func TestHealthReportsUnreachableStore(t *testing.T) {
	router := newRouter(downStore{})

	w := do(t, router, http.MethodGet, "/health", nil)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", w.Code)
	}
	var resp dto.HealthResponse
	decode(t, w, &resp)
	if resp.Store != db.DriverMongo {
		t.Errorf("expected store %q, got %q", db.DriverMongo, resp.Store)
	}
}
