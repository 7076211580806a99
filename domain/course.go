package domain

import "context"

type CourseFilter struct {
	Pagination
	InstructorID string
	SearchTerm   string
}

type CourseList struct {
	Courses []Course `json:"courses"`
	PageMeta
}

// CourseUpdate carries only the fields present in a PUT body. Nil means
// "leave as is".
type CourseUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	VideoCount  *int
	Duration    *int
}

func (u CourseUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Price == nil && u.VideoCount == nil && u.Duration == nil
}

type CourseRepository interface {
	CreateCourse(ctx context.Context, course *Course) error
	GetCourseByID(ctx context.Context, id string) (*Course, error)
	GetAllCourses(ctx context.Context, filter CourseFilter) ([]Course, int64, error)
	GetPopularCourses(ctx context.Context, limit int) ([]Course, error)
	ExistsByTitle(ctx context.Context, title, instructorID, excludeID string) (bool, error)
	UpdateCourse(ctx context.Context, id string, update CourseUpdate) (*Course, error)
	IncrementViewCount(ctx context.Context, id string) error
	DeleteCourse(ctx context.Context, id string) error
}

type CourseUseCase interface {
	CreateCourse(ctx context.Context, course *Course) (*Course, error)
	GetCourseByID(ctx context.Context, id string) (*Course, error)
	GetAllCourses(ctx context.Context, filter CourseFilter) (*CourseList, error)
	GetPopularCourses(ctx context.Context, limit int) ([]Course, error)
	UpdateCourse(ctx context.Context, id string, update CourseUpdate) (*Course, error)
	DeleteCourse(ctx context.Context, id string) error
}
