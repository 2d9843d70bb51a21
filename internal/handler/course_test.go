package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"learnsphere/internal/domain"
	"learnsphere/internal/dto"
	"learnsphere/internal/handler"
	"learnsphere/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockCourseService
type MockCourseService struct {
	CreateCourseFunc func(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetCourseFunc    func(ctx context.Context, id string) (*dto.CourseResponse, error)
	ListCoursesFunc  func(ctx context.Context, limit, offset int) (*dto.ListCoursesResponse, error)
}

func (m *MockCourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if m.CreateCourseFunc != nil {
		return m.CreateCourseFunc(ctx, req)
	}
	panic("MockCourseService.CreateCourseFunc not implemented")
}
func (m *MockCourseService) GetCourse(ctx context.Context, id string) (*dto.CourseResponse, error) {
	if m.GetCourseFunc != nil {
		return m.GetCourseFunc(ctx, id)
	}
	panic("MockCourseService.GetCourseFunc not implemented")
}
func (m *MockCourseService) ListCourses(ctx context.Context, limit, offset int) (*dto.ListCoursesResponse, error) {
	if m.ListCoursesFunc != nil {
		return m.ListCoursesFunc(ctx, limit, offset)
	}
	panic("MockCourseService.ListCoursesFunc not implemented")
}

func setupCourseApp(svc *MockCourseService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewCourseHandler(svc)
	courses := app.Group("/api/courses")
	courses.Post("/", h.CreateCourse)
	courses.Get("/", h.ListCourses)
	courses.Get("/:id", h.GetCourse)
	return app
}

func TestCreateCourse_Created(t *testing.T) {
	svc := &MockCourseService{
		CreateCourseFunc: func(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
			assert.Equal(t, "Go 101", req.Title)
			return &dto.CourseResponse{ID: "c1", Title: req.Title}, nil
		},
	}
	app := setupCourseApp(svc)

	req := httptest.NewRequest("POST", "/api/courses/", bytes.NewBufferString(`{"title":"Go 101","description":"d"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCreateCourse_ValidationErrorMapsTo400(t *testing.T) {
	svc := &MockCourseService{
		CreateCourseFunc: func(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
			return nil, domain.NewInvalidInputError("title is required")
		},
	}
	app := setupCourseApp(svc)

	req := httptest.NewRequest("POST", "/api/courses/", bytes.NewBufferString(`{"description":"d"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var errResp middleware.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &errResp))
	assert.Equal(t, string(domain.CodeInvalidInput), errResp.Code)
}

func TestGetCourse_NotFoundMapsTo404(t *testing.T) {
	svc := &MockCourseService{
		GetCourseFunc: func(ctx context.Context, id string) (*dto.CourseResponse, error) {
			return nil, domain.NewCourseNotFoundError(id)
		},
	}
	app := setupCourseApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListCourses_PassesPagination(t *testing.T) {
	svc := &MockCourseService{
		ListCoursesFunc: func(ctx context.Context, limit, offset int) (*dto.ListCoursesResponse, error) {
			assert.Equal(t, 5, limit)
			assert.Equal(t, 10, offset)
			return &dto.ListCoursesResponse{Courses: []dto.CourseResponse{}, Limit: limit, Offset: offset}, nil
		},
	}
	app := setupCourseApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/courses/?limit=5&offset=10", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
