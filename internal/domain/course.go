package domain

import (
	"strings"
	"time"
)

// GeneratedCourse is the transient output of the course generation pipeline.
// It is owned by the request that produced it; persistence happens separately
// through the course service.
type GeneratedCourse struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Difficulty  string            `json:"difficulty"`
	Lessons     []GeneratedLesson `json:"lessons"`
}

// GeneratedLesson is one lesson inside a generated course. SearchKeywords are
// model-supplied, or derived from the description when the model omits them.
type GeneratedLesson struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Objectives     []string `json:"objectives"`
	SearchKeywords []string `json:"searchKeywords"`
}

// FallbackCourse is returned when the LLM call or JSON extraction fails.
// The pipeline degrades instead of failing outward.
func FallbackCourse() *GeneratedCourse {
	return &GeneratedCourse{
		Title:       "Sample Course",
		Description: "This is a fallback course description.",
		Difficulty:  "beginner",
		Lessons:     []GeneratedLesson{},
	}
}

// NormalizeDifficulty clamps a free-form difficulty string to the supported
// enum, defaulting to beginner.
func NormalizeDifficulty(diff string) string {
	switch strings.ToLower(strings.TrimSpace(diff)) {
	case "intermediate":
		return "intermediate"
	case "advanced":
		return "advanced"
	default:
		return "beginner"
	}
}

// Course is a persisted course.
type Course struct {
	ID          string
	Title       string
	Description string
	Difficulty  string
	Lessons     []Lesson
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Lesson is a persisted lesson belonging to a course.
type Lesson struct {
	ID                string
	CourseID          string
	Title             string
	Description       string
	Content           string
	Objectives        []string
	SearchKeywords    []string
	OrderIndex        int
	EstimatedDuration int
	AIGenerated       bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewCourse creates a new Course instance
func NewCourse(title, description, difficulty string) *Course {
	now := time.Now()
	return &Course{
		Title:       title,
		Description: description,
		Difficulty:  NormalizeDifficulty(difficulty),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate validates the course
func (c *Course) Validate() error {
	if c.Title == "" {
		return NewInvalidInputError("title is required")
	}
	if c.Description == "" {
		return NewInvalidInputError("description is required")
	}
	return nil
}

// Validate validates the lesson
func (l *Lesson) Validate() error {
	if l.Title == "" {
		return NewInvalidInputError("lesson title is required")
	}
	if l.CourseID == "" {
		return NewInvalidInputError("lesson course ID is required")
	}
	return nil
}
