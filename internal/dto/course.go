package dto

import (
	"time"

	"learnsphere/internal/domain"
)

// CreateCourseRequest persists a course, typically one that was just
// generated. Lesson content falls back to the description when absent.
type CreateCourseRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Difficulty  string                `json:"difficulty"`
	Lessons     []CreateLessonRequest `json:"lessons"`
}

// CreateLessonRequest is one lesson inside a course creation request.
type CreateLessonRequest struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Content           string   `json:"content"`
	Objectives        []string `json:"objectives"`
	SearchKeywords    []string `json:"searchKeywords"`
	EstimatedDuration int      `json:"estimatedDuration"`
}

// CourseResponse is a persisted course as returned by the API.
type CourseResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Difficulty  string           `json:"difficulty"`
	Lessons     []LessonResponse `json:"lessons,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// LessonResponse is a persisted lesson as returned by the API.
type LessonResponse struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Content           string   `json:"content"`
	Objectives        []string `json:"objectives"`
	SearchKeywords    []string `json:"searchKeywords"`
	OrderIndex        int      `json:"orderIndex"`
	EstimatedDuration int      `json:"estimatedDuration"`
	AIGenerated       bool     `json:"aiGenerated"`
}

// ListCoursesResponse pages through persisted courses.
type ListCoursesResponse struct {
	Courses []CourseResponse `json:"courses"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// ToCourseResponse converts a domain course into its API shape.
func ToCourseResponse(course *domain.Course) CourseResponse {
	resp := CourseResponse{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		Difficulty:  course.Difficulty,
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
	for _, lesson := range course.Lessons {
		resp.Lessons = append(resp.Lessons, LessonResponse{
			ID:                lesson.ID,
			Title:             lesson.Title,
			Description:       lesson.Description,
			Content:           lesson.Content,
			Objectives:        lesson.Objectives,
			SearchKeywords:    lesson.SearchKeywords,
			OrderIndex:        lesson.OrderIndex,
			EstimatedDuration: lesson.EstimatedDuration,
			AIGenerated:       lesson.AIGenerated,
		})
	}
	return resp
}

// GradeQuizRequest scores a submitted quiz attempt.
type GradeQuizRequest struct {
	Questions    []domain.Question `json:"questions"`
	Answers      []string          `json:"answers"`
	PassingScore int               `json:"passingScore"`
}
