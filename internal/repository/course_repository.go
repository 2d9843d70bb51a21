package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"learnsphere/internal/domain"
	"learnsphere/internal/repository/models"
	"learnsphere/internal/util"

	"github.com/jmoiron/sqlx"
)

// CourseDatabaseAdapter implements domain.CourseRepository using sqlx.DB
type CourseDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCourseDatabaseAdapter creates a new instance of CourseDatabaseAdapter
func NewCourseDatabaseAdapter(db *sqlx.DB) domain.CourseRepository {
	return &CourseDatabaseAdapter{db: db}
}

// SaveCourse inserts the course and its lessons in one transaction. IDs and
// timestamps are assigned here.
func (a *CourseDatabaseAdapter) SaveCourse(ctx context.Context, course *domain.Course) error {
	if course == nil {
		return fmt.Errorf("cannot save nil course")
	}

	now := time.Now()
	course.ID = util.NewULID()
	course.CreatedAt = now
	course.UpdatedAt = now

	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `INSERT INTO courses (
		id, title, description, difficulty, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?)`,
		course.ID,
		course.Title,
		course.Description,
		course.Difficulty,
		course.CreatedAt,
		course.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert course: %w", err)
	}

	for i := range course.Lessons {
		lesson := &course.Lessons[i]
		lesson.ID = util.NewULID()
		lesson.CourseID = course.ID
		lesson.OrderIndex = i + 1
		lesson.CreatedAt = now
		lesson.UpdatedAt = now

		_, err = tx.ExecContext(ctx, `INSERT INTO lessons (
			id, course_id, title, description, content, objectives,
			search_keywords, order_index, estimated_duration, ai_generated,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			lesson.ID,
			lesson.CourseID,
			lesson.Title,
			lesson.Description,
			lesson.Content,
			models.StringSlice(lesson.Objectives),
			models.StringSlice(lesson.SearchKeywords),
			lesson.OrderIndex,
			lesson.EstimatedDuration,
			lesson.AIGenerated,
			lesson.CreatedAt,
			lesson.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert lesson %q: %w", lesson.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit course transaction: %w", err)
	}
	return nil
}

// GetCourseByID returns the course with its lessons ordered by position, or
// nil when no live row matches.
func (a *CourseDatabaseAdapter) GetCourseByID(ctx context.Context, id string) (*domain.Course, error) {
	var modelCourse models.Course
	err := a.db.GetContext(ctx, &modelCourse, `SELECT
		id, title, description, difficulty, created_at, updated_at, deleted_at
	FROM courses
	WHERE id = ? AND deleted_at IS NULL`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course by ID %s: %w", id, err)
	}

	var modelLessons []models.Lesson
	err = a.db.SelectContext(ctx, &modelLessons, `SELECT
		id, course_id, title, description, content, objectives,
		search_keywords, order_index, estimated_duration, ai_generated,
		created_at, updated_at, deleted_at
	FROM lessons
	WHERE course_id = ? AND deleted_at IS NULL
	ORDER BY order_index`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get lessons for course %s: %w", id, err)
	}

	return toDomainCourse(&modelCourse, modelLessons), nil
}

// ListCourses returns live courses ordered newest first, without lessons.
func (a *CourseDatabaseAdapter) ListCourses(ctx context.Context, limit, offset int) ([]*domain.Course, error) {
	if limit <= 0 {
		limit = 20
	}

	var modelCourses []models.Course
	err := a.db.SelectContext(ctx, &modelCourses, `SELECT
		id, title, description, difficulty, created_at, updated_at, deleted_at
	FROM courses
	WHERE deleted_at IS NULL
	ORDER BY created_at DESC
	LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	courses := make([]*domain.Course, 0, len(modelCourses))
	for i := range modelCourses {
		courses = append(courses, toDomainCourse(&modelCourses[i], nil))
	}
	return courses, nil
}

func toDomainCourse(mc *models.Course, lessons []models.Lesson) *domain.Course {
	course := &domain.Course{
		ID:          mc.ID,
		Title:       mc.Title,
		Description: mc.Description,
		Difficulty:  mc.Difficulty,
		CreatedAt:   mc.CreatedAt,
		UpdatedAt:   mc.UpdatedAt,
	}
	for _, ml := range lessons {
		course.Lessons = append(course.Lessons, domain.Lesson{
			ID:                ml.ID,
			CourseID:          ml.CourseID,
			Title:             ml.Title,
			Description:       ml.Description,
			Content:           ml.Content,
			Objectives:        ml.Objectives,
			SearchKeywords:    ml.SearchKeywords,
			OrderIndex:        ml.OrderIndex,
			EstimatedDuration: ml.EstimatedDuration,
			AIGenerated:       ml.AIGenerated,
			CreatedAt:         ml.CreatedAt,
			UpdatedAt:         ml.UpdatedAt,
		})
	}
	return course
}
