package handler

import (
	"learnsphere/internal/domain"
	"learnsphere/internal/dto"
	"learnsphere/internal/logger"
	"learnsphere/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AIHandler handles the AI generation endpoints.
type AIHandler struct {
	generation service.GenerationService
}

// NewAIHandler creates a new AIHandler instance.
func NewAIHandler(generation service.GenerationService) *AIHandler {
	return &AIHandler{generation: generation}
}

// GenerateCourse handles POST /api/ai/generate-course. The generated course
// is enriched with video recommendations before being returned.
func (h *AIHandler) GenerateCourse(c *fiber.Ctx) error {
	var req dto.GenerateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse("Prompt is required."))
	}
	if req.Prompt == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse("Prompt is required."))
	}

	logger.Get().Info("Generating course", zap.String("prompt", req.Prompt))

	course := h.generation.GenerateCourseWithVideos(c.Context(), req.Prompt, service.CourseVideoOptions{
		Duration: "medium",
	})
	return c.JSON(dto.NewSuccessResponse(course))
}

// GenerateQuiz handles POST /api/ai/generate-quiz.
func (h *AIHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil || req.LessonContent == "" || req.LessonTitle == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse("lessonContent and lessonTitle are required."))
	}

	quiz := h.generation.GenerateQuiz(c.Context(), req.LessonContent, req.LessonTitle)
	return c.JSON(dto.NewSuccessResponse(quiz))
}

// GenerateFinalTest handles POST /api/ai/generate-final-test.
func (h *AIHandler) GenerateFinalTest(c *fiber.Ctx) error {
	var req dto.GenerateFinalTestRequest
	if err := c.BodyParser(&req); err != nil || len(req.CourseData) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse("courseData is required."))
	}

	test := h.generation.GenerateFinalTest(c.Context(), req.CourseData)
	return c.JSON(dto.NewSuccessResponse(test))
}

// EvaluateShortAnswer handles POST /api/ai/evaluate-short-answer.
func (h *AIHandler) EvaluateShortAnswer(c *fiber.Ctx) error {
	var req dto.EvaluateShortAnswerRequest
	if err := c.BodyParser(&req); err != nil || req.Question == "" || req.UserAnswer == "" || req.Keywords == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse("question, userAnswer, and keywords are required."))
	}

	result := h.generation.EvaluateShortAnswer(c.Context(), req.Question, req.UserAnswer, req.Keywords)
	return c.JSON(dto.NewSuccessResponse(result))
}

// GradeQuiz handles POST /api/ai/grade-quiz. Grading is deterministic and
// local; no LLM call is involved.
func (h *AIHandler) GradeQuiz(c *fiber.Ctx) error {
	var req dto.GradeQuizRequest
	if err := c.BodyParser(&req); err != nil || len(req.Questions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewErrorResponse("questions and answers are required."))
	}

	grade := domain.GradeQuiz(req.Questions, req.Answers, req.PassingScore)
	return c.JSON(dto.NewSuccessResponse(grade))
}
