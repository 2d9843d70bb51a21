package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDifficulty(t *testing.T) {
	assert.Equal(t, "beginner", NormalizeDifficulty(""))
	assert.Equal(t, "beginner", NormalizeDifficulty("expert"))
	assert.Equal(t, "intermediate", NormalizeDifficulty(" Intermediate "))
	assert.Equal(t, "advanced", NormalizeDifficulty("ADVANCED"))
}

func TestFallbackCourse(t *testing.T) {
	course := FallbackCourse()
	assert.Equal(t, "Sample Course", course.Title)
	assert.Equal(t, "beginner", course.Difficulty)
	assert.NotNil(t, course.Lessons)
	assert.Empty(t, course.Lessons)
}

func TestCourseValidate(t *testing.T) {
	course := NewCourse("", "desc", "beginner")
	err := course.Validate()
	assert.Error(t, err)

	course = NewCourse("Title", "", "beginner")
	assert.Error(t, course.Validate())

	course = NewCourse("Title", "desc", "nonsense")
	assert.NoError(t, course.Validate())
	assert.Equal(t, "beginner", course.Difficulty)
}
