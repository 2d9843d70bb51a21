package service

import (
	"context"
	"encoding/json"
	"fmt"

	"learnsphere/internal/domain"
	"learnsphere/internal/dto"
	"learnsphere/internal/llmtext"
	"learnsphere/internal/logger"

	"go.uber.org/zap"
)

const (
	courseMaxTokens     = 2048
	quizMaxTokens       = 2048
	finalTestMaxTokens  = 2048
	evaluationMaxTokens = 1024
)

// GenerationService runs every LLM-backed generation flow. Generation
// failures degrade to a well-formed default result instead of an error;
// errors are reserved for invalid input.
type GenerationService interface {
	GenerateCourse(ctx context.Context, prompt string) *domain.GeneratedCourse
	GenerateCourseWithVideos(ctx context.Context, prompt string, opts CourseVideoOptions) *dto.CourseWithVideosResponse
	GenerateQuiz(ctx context.Context, lessonContent, lessonTitle string) *domain.GeneratedQuiz
	GenerateFinalTest(ctx context.Context, courseData json.RawMessage) *domain.GeneratedQuiz
	EvaluateShortAnswer(ctx context.Context, question, userAnswer string, keywords []string) *domain.ShortAnswerEvaluation
}

type generationServiceImpl struct {
	llm       domain.LLMClient
	videos    VideoService
	evalCache EvaluationCacheService
}

// NewGenerationService creates a new GenerationService. videos may be nil if
// course-with-videos generation is not needed; evalCache may be nil to
// disable evaluation caching.
func NewGenerationService(llm domain.LLMClient, videos VideoService, evalCache EvaluationCacheService) GenerationService {
	return &generationServiceImpl{
		llm:       llm,
		videos:    videos,
		evalCache: evalCache,
	}
}

// GenerateCourse asks the LLM for a structured course on the given topic.
// Any failure along the way (upstream error, unparseable reply, missing
// lessons field) yields the fallback course.
func (s *generationServiceImpl) GenerateCourse(ctx context.Context, prompt string) *domain.GeneratedCourse {
	systemPrompt := fmt.Sprintf(
		"You are an expert course designer. Generate a JSON object for a course on: \"%s\". The course should have:\n"+
			"- title\n"+
			"- description\n"+
			"- difficulty (beginner/intermediate/advanced)\n"+
			"- lessons: array of as many lessons as needed to cover the topic in depth, each with:\n"+
			"  - title\n"+
			"  - description\n"+
			"  - objectives (array)\n"+
			"  - searchKeywords (array)\n"+
			"Return only valid JSON.", prompt)

	text, err := s.llm.Complete(ctx, systemPrompt, "", courseMaxTokens)
	if err != nil {
		logger.Get().Error("Course generation failed, returning fallback",
			zap.String("prompt", prompt), zap.Error(err))
		return domain.FallbackCourse()
	}

	raw := llmtext.ExtractJSON(text)
	if raw == nil {
		logger.Get().Warn("Course generation returned no parseable JSON, returning fallback",
			zap.Error(domain.NewMalformedResponseError(nil)),
			zap.String("prompt", prompt),
			zap.String("response", text))
		return domain.FallbackCourse()
	}

	// The lessons field must be present and non-null, even if empty. Anything
	// else means the model answered with some other shape entirely.
	var probe struct {
		Lessons json.RawMessage `json:"lessons"`
	}
	var course domain.GeneratedCourse
	if err := json.Unmarshal(raw, &probe); err != nil || probe.Lessons == nil || string(probe.Lessons) == "null" {
		logger.Get().Warn("Course generation JSON missing lessons, returning fallback",
			zap.Error(domain.NewMalformedResponseError(err)),
			zap.String("prompt", prompt),
			zap.String("response", text))
		return domain.FallbackCourse()
	}
	if err := json.Unmarshal(raw, &course); err != nil {
		logger.Get().Warn("Course generation JSON has unexpected shape, returning fallback",
			zap.Error(domain.NewMalformedResponseError(err)),
			zap.String("prompt", prompt),
			zap.String("response", text))
		return domain.FallbackCourse()
	}

	course.Title = llmtext.Sanitize(course.Title)
	course.Description = llmtext.Sanitize(course.Description)
	course.Difficulty = domain.NormalizeDifficulty(course.Difficulty)
	if course.Lessons == nil {
		course.Lessons = []domain.GeneratedLesson{}
	}
	for i := range course.Lessons {
		lesson := &course.Lessons[i]
		lesson.Title = llmtext.Sanitize(lesson.Title)
		lesson.Description = llmtext.Sanitize(lesson.Description)
		lesson.Objectives = llmtext.SanitizeAll(lesson.Objectives)
		if lesson.SearchKeywords == nil {
			lesson.SearchKeywords = llmtext.ExtractKeywords(lesson.Description)
		}
	}
	return &course
}

// GenerateCourseWithVideos generates a course, then enriches it with video
// recommendations per lesson plus course overview videos. A course without
// lessons is returned as-is.
func (s *generationServiceImpl) GenerateCourseWithVideos(ctx context.Context, prompt string, opts CourseVideoOptions) *dto.CourseWithVideosResponse {
	course := s.GenerateCourse(ctx, prompt)
	resp := &dto.CourseWithVideosResponse{
		Title:       course.Title,
		Description: course.Description,
		Difficulty:  course.Difficulty,
		Lessons:     course.Lessons,
	}
	if s.videos == nil || len(course.Lessons) == 0 {
		return resp
	}

	resources := s.videos.GetVideosForCourse(ctx, course, opts)
	resp.VideoResources = resources
	resp.EnhancedLessons = make([]dto.EnhancedLesson, len(course.Lessons))
	for i, lesson := range course.Lessons {
		enhanced := dto.EnhancedLesson{GeneratedLesson: lesson, RecommendedVideos: []domain.VideoResult{}}
		if i < len(resources.LessonVideos) && resources.LessonVideos[i].Videos != nil {
			enhanced.RecommendedVideos = resources.LessonVideos[i].Videos
		}
		resp.EnhancedLessons[i] = enhanced
	}
	return resp
}

// GenerateQuiz asks the LLM for 4-6 MCQ or True/False questions over the
// given lesson content. Failures degrade to an empty quiz.
func (s *generationServiceImpl) GenerateQuiz(ctx context.Context, lessonContent, lessonTitle string) *domain.GeneratedQuiz {
	systemPrompt := fmt.Sprintf(
		"You are an expert educator. Generate a JSON array of 4-6 quiz questions for the lesson titled \"%s\". Use the following lesson content:\n"+
			"\"\"\"\n%s\n\"\"\"\n"+
			"Each question should be one of: MCQ (multiple choice, 4 options) or True/False. For each question, include:\n"+
			"- type (\"MCQ\" or \"True/False\")\n"+
			"- question\n"+
			"- options (array, for MCQ: 4 options; for True/False: [\"True\", \"False\"])\n"+
			"- correct (the index of the correct option: 0-based for MCQ, 0 for \"True\", 1 for \"False\" in True/False)\n"+
			"Do NOT include any short answer or open-ended questions. Return only valid JSON.",
		lessonTitle, lessonContent)

	return s.generateQuestions(ctx, systemPrompt, quizMaxTokens, "quiz", lessonTitle)
}

// GenerateFinalTest asks the LLM for 10-15 mixed-type questions covering the
// whole course. The caller-supplied course JSON is embedded verbatim in the
// prompt. Failures degrade to an empty test.
func (s *generationServiceImpl) GenerateFinalTest(ctx context.Context, courseData json.RawMessage) *domain.GeneratedQuiz {
	systemPrompt := fmt.Sprintf(
		"You are an expert educator. Generate a JSON array of 10-15 comprehensive test questions for the following course:\n"+
			"%s\n"+
			"Mix question types (MCQ, True/False, Short Answer, Scenario-based). For each question, include:\n"+
			"- type\n"+
			"- question\n"+
			"- options (if MCQ)\n"+
			"- answer\n"+
			"Return only valid JSON.", string(courseData))

	return s.generateQuestions(ctx, systemPrompt, finalTestMaxTokens, "final test", "")
}

func (s *generationServiceImpl) generateQuestions(ctx context.Context, systemPrompt string, maxTokens int, kind, subject string) *domain.GeneratedQuiz {
	text, err := s.llm.Complete(ctx, systemPrompt, "", maxTokens)
	if err != nil {
		logger.Get().Error("Question generation failed, returning empty quiz",
			zap.String("kind", kind), zap.String("subject", subject), zap.Error(err))
		return domain.EmptyQuiz()
	}

	raw := llmtext.ExtractJSON(text)
	if raw == nil {
		logger.Get().Warn("Question generation returned no parseable JSON, returning empty quiz",
			zap.Error(domain.NewMalformedResponseError(nil)),
			zap.String("kind", kind), zap.String("subject", subject),
			zap.String("response", text))
		return domain.EmptyQuiz()
	}

	var questions []domain.QuizQuestion
	if err := json.Unmarshal(raw, &questions); err != nil {
		logger.Get().Warn("Question generation JSON is not an array, returning empty quiz",
			zap.Error(domain.NewMalformedResponseError(err)),
			zap.String("kind", kind), zap.String("subject", subject),
			zap.String("response", text))
		return domain.EmptyQuiz()
	}

	for i := range questions {
		questions[i].Question = llmtext.Sanitize(questions[i].Question)
		if questions[i].Options != nil {
			questions[i].Options = llmtext.SanitizeAll(questions[i].Options)
		}
		questions[i].Answer = llmtext.Sanitize(questions[i].Answer)
	}
	return &domain.GeneratedQuiz{Questions: questions}
}

// EvaluateShortAnswer grades a free-text answer against expected keywords.
// The result is cached by request content; failures degrade to the fallback
// evaluation (score 0 with a retry message).
func (s *generationServiceImpl) EvaluateShortAnswer(ctx context.Context, question, userAnswer string, keywords []string) *domain.ShortAnswerEvaluation {
	if s.evalCache != nil {
		cached, err := s.evalCache.GetEvaluation(ctx, question, userAnswer, keywords)
		if err != nil {
			logger.Get().Warn("Evaluation cache lookup failed", zap.Error(err))
		} else if cached != nil {
			return cached
		}
	}

	keywordJSON, err := json.Marshal(keywords)
	if err != nil {
		keywordJSON = []byte("[]")
	}
	systemPrompt := fmt.Sprintf(
		"You are an expert educator. Evaluate the following short answer. Question: \"%s\". User's answer: \"%s\". Expected keywords: %s.\n"+
			"Return a JSON object with:\n"+
			"- score (0-1)\n"+
			"- feedback (string)\n"+
			"- suggestions (array of strings for improvement)\n"+
			"Return only valid JSON.", question, userAnswer, keywordJSON)

	text, err := s.llm.Complete(ctx, systemPrompt, "", evaluationMaxTokens)
	if err != nil {
		logger.Get().Error("Short answer evaluation failed, returning fallback", zap.Error(err))
		return domain.FallbackEvaluation()
	}

	raw := llmtext.ExtractJSON(text)
	if raw == nil {
		logger.Get().Warn("Evaluation returned no parseable JSON, returning fallback",
			zap.Error(domain.NewMalformedResponseError(nil)),
			zap.String("response", text))
		return domain.FallbackEvaluation()
	}

	// Score must be a JSON number; its absence marks a malformed reply.
	var probe struct {
		Score *float64 `json:"score"`
	}
	var eval domain.ShortAnswerEvaluation
	if err := json.Unmarshal(raw, &probe); err != nil || probe.Score == nil {
		logger.Get().Warn("Evaluation JSON missing numeric score, returning fallback",
			zap.Error(domain.NewMalformedResponseError(err)),
			zap.String("response", text))
		return domain.FallbackEvaluation()
	}
	if err := json.Unmarshal(raw, &eval); err != nil {
		logger.Get().Warn("Evaluation JSON has unexpected shape, returning fallback",
			zap.Error(domain.NewMalformedResponseError(err)),
			zap.String("response", text))
		return domain.FallbackEvaluation()
	}

	eval.Feedback = llmtext.Sanitize(eval.Feedback)
	eval.Suggestions = llmtext.SanitizeAll(eval.Suggestions)

	if s.evalCache != nil {
		if err := s.evalCache.PutEvaluation(ctx, question, userAnswer, keywords, &eval); err != nil {
			logger.Get().Warn("Failed to cache evaluation", zap.Error(err))
		}
	}
	return &eval
}
