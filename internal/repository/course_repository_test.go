package repository

import (
	"context"
	"testing"
	"time"

	"learnsphere/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupCourseTestDB creates a new sqlx.DB instance and sqlmock for course
// repository testing.
func setupCourseTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	return sqlxDB, mock
}

func TestSaveCourse_InsertsCourseAndLessonsInOneTransaction(t *testing.T) {
	db, mock := setupCourseTestDB(t)
	defer db.Close()
	repo := NewCourseDatabaseAdapter(db)

	course := &domain.Course{
		Title:       "Go 101",
		Description: "Intro course",
		Difficulty:  "beginner",
		Lessons: []domain.Lesson{
			{Title: "Basics", Content: "c1", Objectives: []string{"o1"}, SearchKeywords: []string{"go"}},
			{Title: "Structs", Content: "c2"},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO courses`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO lessons`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO lessons`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.SaveCourse(context.Background(), course)
	require.NoError(t, err)

	// IDs and ordering are assigned during the save.
	assert.NotEmpty(t, course.ID)
	assert.NotEmpty(t, course.Lessons[0].ID)
	assert.Equal(t, course.ID, course.Lessons[0].CourseID)
	assert.Equal(t, 1, course.Lessons[0].OrderIndex)
	assert.Equal(t, 2, course.Lessons[1].OrderIndex)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveCourse_RollsBackOnLessonFailure(t *testing.T) {
	db, mock := setupCourseTestDB(t)
	defer db.Close()
	repo := NewCourseDatabaseAdapter(db)

	course := &domain.Course{
		Title:       "Go 101",
		Description: "Intro course",
		Difficulty:  "beginner",
		Lessons:     []domain.Lesson{{Title: "Basics"}},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO courses`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO lessons`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.SaveCourse(context.Background(), course)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCourseByID_ReturnsCourseWithOrderedLessons(t *testing.T) {
	db, mock := setupCourseTestDB(t)
	defer db.Close()
	repo := NewCourseDatabaseAdapter(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT(.|\s)*FROM courses`).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "difficulty", "created_at", "updated_at", "deleted_at"}).
			AddRow("c1", "Go 101", "Intro", "beginner", now, now, nil))

	mock.ExpectQuery(`SELECT(.|\s)*FROM lessons`).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "course_id", "title", "description", "content", "objectives",
			"search_keywords", "order_index", "estimated_duration", "ai_generated",
			"created_at", "updated_at", "deleted_at",
		}).
			AddRow("l1", "c1", "Basics", "d", "c", `["o1"]`, `["go"]`, 1, 10, true, now, now, nil).
			AddRow("l2", "c1", "Structs", "d", "c", `[]`, `[]`, 2, 15, true, now, now, nil))

	course, err := repo.GetCourseByID(context.Background(), "c1")
	require.NoError(t, err)
	require.NotNil(t, course)
	assert.Equal(t, "Go 101", course.Title)
	require.Len(t, course.Lessons, 2)
	assert.Equal(t, []string{"o1"}, course.Lessons[0].Objectives)
	assert.Equal(t, 2, course.Lessons[1].OrderIndex)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCourseByID_NotFoundReturnsNil(t *testing.T) {
	db, mock := setupCourseTestDB(t)
	defer db.Close()
	repo := NewCourseDatabaseAdapter(db)

	mock.ExpectQuery(`SELECT(.|\s)*FROM courses`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "difficulty", "created_at", "updated_at", "deleted_at"}))

	course, err := repo.GetCourseByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, course)
}

func TestListCourses_AppliesDefaultLimit(t *testing.T) {
	db, mock := setupCourseTestDB(t)
	defer db.Close()
	repo := NewCourseDatabaseAdapter(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT(.|\s)*FROM courses`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "description", "difficulty", "created_at", "updated_at", "deleted_at"}).
			AddRow("c2", "Newer", "d", "beginner", now, now, nil).
			AddRow("c1", "Older", "d", "advanced", now.Add(-time.Hour), now.Add(-time.Hour), nil))

	courses, err := repo.ListCourses(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Newer", courses[0].Title)
	assert.Empty(t, courses[0].Lessons)
	assert.NoError(t, mock.ExpectationsWereMet())
}
