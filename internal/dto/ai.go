package dto

import (
	"encoding/json"

	"learnsphere/internal/domain"
)

// GenerateCourseRequest asks for an AI-generated course on a topic.
type GenerateCourseRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateQuizRequest asks for a lesson quiz.
type GenerateQuizRequest struct {
	LessonContent string `json:"lessonContent"`
	LessonTitle   string `json:"lessonTitle"`
}

// GenerateFinalTestRequest asks for a comprehensive course test. CourseData
// is passed through verbatim into the generation prompt, so any JSON shape
// the client sends is accepted.
type GenerateFinalTestRequest struct {
	CourseData json.RawMessage `json:"courseData"`
}

// EvaluateShortAnswerRequest asks for AI grading of a free-text answer.
type EvaluateShortAnswerRequest struct {
	Question   string   `json:"question"`
	UserAnswer string   `json:"userAnswer"`
	Keywords   []string `json:"keywords"`
}

// CourseWithVideosResponse is a generated course enriched with video
// recommendations. EnhancedLessons mirror Lessons with per-lesson videos
// attached.
type CourseWithVideosResponse struct {
	Title           string                   `json:"title"`
	Description     string                   `json:"description"`
	Difficulty      string                   `json:"difficulty"`
	Lessons         []domain.GeneratedLesson `json:"lessons"`
	VideoResources  *domain.CourseVideos     `json:"videoResources,omitempty"`
	EnhancedLessons []EnhancedLesson         `json:"enhancedLessons,omitempty"`
}

// EnhancedLesson is a generated lesson plus its recommended videos.
type EnhancedLesson struct {
	domain.GeneratedLesson
	RecommendedVideos []domain.VideoResult `json:"recommendedVideos"`
}
