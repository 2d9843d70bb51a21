package service

import (
	"context"
	"fmt"
	"strings"

	"learnsphere/internal/domain"
	"learnsphere/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CourseVideoOptions tune video lookup for a whole course. Duration filters
// lesson video length (short, medium, long); empty means medium.
type CourseVideoOptions struct {
	Duration string
}

// VideoService finds video recommendations for searches, lessons, and whole
// courses. Lookup failures degrade to empty results; only detail lookups by
// ID surface errors.
type VideoService interface {
	Search(ctx context.Context, query string, opts domain.SearchOptions) *domain.SearchResult
	GetVideosForLesson(ctx context.Context, lesson domain.GeneratedLesson, duration string) *domain.LessonVideos
	GetVideosForCourse(ctx context.Context, course *domain.GeneratedCourse, opts CourseVideoOptions) *domain.CourseVideos
	GetVideoDetails(ctx context.Context, videoID string) (*domain.VideoResult, error)
	GetChannelInfo(ctx context.Context, channelID string) (*domain.ChannelInfo, error)
}

type videoServiceImpl struct {
	searcher domain.VideoSearcher
}

// NewVideoService creates a new VideoService backed by the given searcher.
func NewVideoService(searcher domain.VideoSearcher) VideoService {
	return &videoServiceImpl{searcher: searcher}
}

// Search passes a query straight through to the video backend.
func (s *videoServiceImpl) Search(ctx context.Context, query string, opts domain.SearchOptions) *domain.SearchResult {
	return s.searcher.Search(ctx, query, opts)
}

// GetVideosForLesson finds the single best video for one lesson. The query is
// built from the lesson's first three search keywords, or from the title when
// the lesson has none.
func (s *videoServiceImpl) GetVideosForLesson(ctx context.Context, lesson domain.GeneratedLesson, duration string) *domain.LessonVideos {
	searchQuery := lessonSearchQuery(lesson)

	logger.Get().Debug("Searching videos for lesson",
		zap.String("lessonTitle", lesson.Title),
		zap.String("query", searchQuery))

	result := s.searcher.Search(ctx, searchQuery, domain.SearchOptions{
		MaxResults: 1,
		Duration:   duration,
		Order:      "relevance",
	})

	return &domain.LessonVideos{
		LessonTitle: lesson.Title,
		SearchQuery: searchQuery,
		Videos:      result.Videos,
		TotalFound:  result.TotalResults,
	}
}

// GetVideosForCourse fans out one search per lesson plus an overview search
// for the course as a whole. Per-lesson results keep lesson order regardless
// of completion order.
func (s *videoServiceImpl) GetVideosForCourse(ctx context.Context, course *domain.GeneratedCourse, opts CourseVideoOptions) *domain.CourseVideos {
	duration := opts.Duration
	if duration == "" {
		duration = "medium"
	}

	logger.Get().Info("Getting videos for course",
		zap.String("courseTitle", course.Title),
		zap.Int("lessons", len(course.Lessons)))

	lessonVideos := make([]domain.LessonVideos, len(course.Lessons))
	g, gctx := errgroup.WithContext(ctx)
	for i, lesson := range course.Lessons {
		i, lesson := i, lesson
		g.Go(func() error {
			lessonVideos[i] = *s.GetVideosForLesson(gctx, lesson, duration)
			return nil
		})
	}
	// Lesson searches absorb their own failures, so Wait cannot fail.
	_ = g.Wait()

	overview := s.searcher.Search(ctx, fmt.Sprintf("%s course overview", course.Title), domain.SearchOptions{
		MaxResults: 3,
		Duration:   "long",
		Order:      "relevance",
	})

	total := len(overview.Videos)
	for _, lv := range lessonVideos {
		total += len(lv.Videos)
	}

	return &domain.CourseVideos{
		CourseTitle:    course.Title,
		OverviewVideos: overview.Videos,
		LessonVideos:   lessonVideos,
		TotalVideos:    total,
	}
}

// GetVideoDetails looks up one video by ID.
func (s *videoServiceImpl) GetVideoDetails(ctx context.Context, videoID string) (*domain.VideoResult, error) {
	return s.searcher.GetVideoDetails(ctx, videoID)
}

// GetChannelInfo looks up one channel by ID.
func (s *videoServiceImpl) GetChannelInfo(ctx context.Context, channelID string) (*domain.ChannelInfo, error) {
	return s.searcher.GetChannelInfo(ctx, channelID)
}

func lessonSearchQuery(lesson domain.GeneratedLesson) string {
	keywords := lesson.SearchKeywords
	if len(keywords) > 3 {
		keywords = keywords[:3]
	}
	if len(keywords) > 0 {
		return strings.Join(keywords, " ")
	}
	return fmt.Sprintf("%s tutorial", lesson.Title)
}
