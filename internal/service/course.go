package service

import (
	"context"

	"learnsphere/internal/domain"
	"learnsphere/internal/dto"
	"learnsphere/internal/logger"

	"go.uber.org/zap"
)

const defaultLessonDuration = 10

// CourseService persists generated courses and reads them back.
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetCourse(ctx context.Context, id string) (*dto.CourseResponse, error)
	ListCourses(ctx context.Context, limit, offset int) (*dto.ListCoursesResponse, error)
}

type courseServiceImpl struct {
	repo domain.CourseRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(repo domain.CourseRepository) CourseService {
	return &courseServiceImpl{repo: repo}
}

// CreateCourse validates and saves a course with its lessons. Lessons are
// stored in request order; missing lesson content falls back to the
// description, then the title. Saved lessons are marked AI generated.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	course := domain.NewCourse(req.Title, req.Description, req.Difficulty)
	if err := course.Validate(); err != nil {
		return nil, err
	}

	for _, l := range req.Lessons {
		if l.Title == "" {
			return nil, domain.NewInvalidInputError("lesson title is required")
		}
		content := l.Content
		if content == "" {
			content = l.Description
		}
		if content == "" {
			content = l.Title
		}
		duration := l.EstimatedDuration
		if duration <= 0 {
			duration = defaultLessonDuration
		}
		course.Lessons = append(course.Lessons, domain.Lesson{
			Title:             l.Title,
			Description:       l.Description,
			Content:           content,
			Objectives:        l.Objectives,
			SearchKeywords:    l.SearchKeywords,
			EstimatedDuration: duration,
			AIGenerated:       true,
		})
	}

	if err := s.repo.SaveCourse(ctx, course); err != nil {
		return nil, domain.NewInternalError("Failed to save course", err)
	}

	logger.Get().Info("Course created",
		zap.String("courseID", course.ID),
		zap.Int("lessons", len(course.Lessons)))

	resp := dto.ToCourseResponse(course)
	return &resp, nil
}

// GetCourse returns one course with its lessons.
func (s *courseServiceImpl) GetCourse(ctx context.Context, id string) (*dto.CourseResponse, error) {
	course, err := s.repo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get course", err)
	}
	if course == nil {
		return nil, domain.NewCourseNotFoundError(id)
	}
	resp := dto.ToCourseResponse(course)
	return &resp, nil
}

// ListCourses pages through stored courses, newest first, without lessons.
func (s *courseServiceImpl) ListCourses(ctx context.Context, limit, offset int) (*dto.ListCoursesResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	courses, err := s.repo.ListCourses(ctx, limit, offset)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list courses", err)
	}

	resp := &dto.ListCoursesResponse{
		Courses: make([]dto.CourseResponse, 0, len(courses)),
		Limit:   limit,
		Offset:  offset,
	}
	for _, c := range courses {
		resp.Courses = append(resp.Courses, dto.ToCourseResponse(c))
	}
	return resp, nil
}
