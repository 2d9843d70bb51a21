package handler

import (
	"learnsphere/internal/dto"
	"learnsphere/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CourseHandler handles persisted course endpoints.
type CourseHandler struct {
	courses service.CourseService
}

// NewCourseHandler creates a new CourseHandler instance.
func NewCourseHandler(courses service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// CreateCourse handles POST /api/courses.
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse("Invalid request body"))
	}

	course, err := h.courses.CreateCourse(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewSuccessResponse(course))
}

// GetCourse handles GET /api/courses/:id.
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	course, err := h.courses.GetCourse(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(course))
}

// ListCourses handles GET /api/courses.
func (h *CourseHandler) ListCourses(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	courses, err := h.courses.ListCourses(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSuccessResponse(courses))
}
