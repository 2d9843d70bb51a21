package domain

import "context"

// CourseRepository persists courses and their lessons.
type CourseRepository interface {
	SaveCourse(ctx context.Context, course *Course) error
	GetCourseByID(ctx context.Context, id string) (*Course, error)
	ListCourses(ctx context.Context, limit, offset int) ([]*Course, error)
}
